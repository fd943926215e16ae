// Package redis manages the Redis connection backing the OTP cache.
//
// Connect retries until the server answers a ping or the attempts run out,
// and Healthcheck exposes the same ping for readiness probes. Configuration
// comes from the environment through Config.
package redis
