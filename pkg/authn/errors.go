package authn

import "errors"

var (
	// ErrEmailTaken is returned when a registration email already exists in
	// either principal collection.
	ErrEmailTaken = errors.New("email already exists")

	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrInvalidCredentials covers unknown email, wrong password, and the
	// admin-flag check with one message so responses never reveal which
	// part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidCode     = errors.New("invalid verification code")
	ErrAlreadyVerified = errors.New("email already verified")

	ErrInvalidCurrentPassword = errors.New("invalid current password")

	// ErrInvalidResetToken covers malformed, expired, wrong-kind, and
	// wrong-subject reset tokens at redemption.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrDeliveryFailed marks a notification that could not be sent. Flows
	// that commit state before sending join it onto their result instead of
	// rolling back.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	ErrInvalidSession = errors.New("invalid session")

	ErrUnknownKind = errors.New("unknown principal kind")
)
