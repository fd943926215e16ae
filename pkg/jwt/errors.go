package jwt

import "errors"

var (
	ErrMissingSigningKey  = errors.New("jwt: missing signing key")
	ErrMissingClaims      = errors.New("jwt: missing claims")
	ErrMalformedToken     = errors.New("jwt: malformed token")
	ErrSignatureMismatch  = errors.New("jwt: signature mismatch")
	ErrUnexpectedAlg      = errors.New("jwt: unexpected signing algorithm")
	ErrTokenExpired       = errors.New("jwt: token expired")
	ErrTokenNotYetValid   = errors.New("jwt: token not yet valid")
)
