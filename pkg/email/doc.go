// Package email is the notification gateway for transactional mail.
//
// The core only depends on the EmailSender interface; concrete senders are
// Postmark for production and a filesystem DevSender for local development.
// Letter constructors in letters.go build the bodies for the credential
// lifecycle notifications (verification code, reset link, confirmations) so
// flows never assemble HTML inline.
//
// Delivery is success-or-error from the caller's perspective; whether a
// failure aborts the operation or is merely logged is decided per flow by
// the orchestrator.
package email
