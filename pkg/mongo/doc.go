// Package mongo manages the MongoDB connection for the service.
//
// Configuration is environment-driven (see Config), connection establishment
// retries through transient failures, and Healthcheck exposes a ping suitable
// for readiness probes. The principal store in pkg/mongostore builds on the
// *mongo.Database returned from here.
package mongo
