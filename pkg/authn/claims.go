package authn

import (
	"time"

	"github.com/google/uuid"

	"github.com/wishbay/wishbay/pkg/jwt"
)

const subjectPasswordReset = "password_reset"

// SessionClaims is the payload of a session access token. Kind tells the
// request middleware which collection the subject lives in.
type SessionClaims struct {
	Subject   uuid.UUID `json:"sub"`
	Kind      Kind      `json:"kind"`
	ExpiresAt int64     `json:"exp,omitempty"`
	IssuedAt  int64     `json:"iat,omitempty"`
}

// Valid reports whether the session is still within its lifetime. Unlike
// issuance, which runs on the service clock, validation always compares
// against the wall clock; a verifier has no service instance to borrow a
// clock from.
func (c SessionClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return jwt.ErrTokenExpired
	}
	return nil
}

// ResetTokenPayload rides inside a password reset link. The Purpose field
// keeps reset tokens from being replayed as anything else.
type ResetTokenPayload struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	Purpose  string    `json:"purpose"`
	ExpireAt time.Time `json:"expire_at"`
}
