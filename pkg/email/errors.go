package email

import "errors"

var (
	ErrInvalidParams     = errors.New("email: invalid send params")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrFailedToSendEmail = errors.New("email: failed to send")
)
