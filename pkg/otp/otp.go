package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// CodeLength is the number of digits in a verification code. Six digits give
// a million possibilities, enough to resist online guessing within the TTL.
const CodeLength = 6

// DefaultTTL is how long an issued code stays redeemable.
const DefaultTTL = 10 * time.Minute

// Cache stores at most one live verification code per email address.
type Cache interface {
	// Issue generates a fresh code and stores it under email with the cache
	// TTL, overwriting any prior entry. The returned code is the stored one.
	Issue(ctx context.Context, email string) (string, error)

	// Verify reports whether code exactly matches an unexpired entry for
	// email. The entry is consumed on success and left untouched on failure.
	Verify(ctx context.Context, email, code string) (bool, error)
}

// GenerateCode returns a uniformly random fixed-length numeric code.
// Leading zeros are preserved.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for range CodeLength {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("otp: generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
