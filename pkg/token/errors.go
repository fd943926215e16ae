package token

import "errors"

var (
	ErrMalformedToken    = errors.New("token: malformed token")
	ErrSignatureMismatch = errors.New("token: signature mismatch")
)
