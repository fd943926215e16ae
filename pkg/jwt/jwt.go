package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	headerType = "JWT"
	headerAlg  = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// StandardClaims holds the registered claims from RFC 7519 that this service
// validates. Zero-valued temporal claims are treated as unset.
type StandardClaims struct {
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()
	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrTokenExpired
	}
	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}

// Service signs and verifies tokens with a single HMAC-SHA256 key.
type Service struct {
	signingKey []byte
}

// New creates a token service. The key should be at least 32 bytes; shorter
// keys weaken HMAC-SHA256 below its design strength.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a token service from a string key, the usual form
// when the key arrives through configuration.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs the given claims and returns a compact JWT string.
// Claims may be any JSON-serializable value.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlg})
	if err != nil {
		return "", fmt.Errorf("jwt: marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("jwt: marshal claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(claimsJSON)

	return payload + "." + s.sign(payload), nil
}

// Parse verifies the token signature and algorithm, decodes the claims into
// the provided pointer, and, when the claims type implements
// interface{ Valid() error }, validates its temporal claims.
func (s *Service) Parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrMalformedToken
	}

	payload := parts[0] + "." + parts[1]
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(s.sign(payload))) != 1 {
		return ErrSignatureMismatch
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrMalformedToken
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return ErrMalformedToken
	}
	// Algorithm pinning: any value other than HS256 means the token was not
	// produced by this service.
	if h.Algorithm != headerAlg {
		return ErrUnexpectedAlg
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrMalformedToken
	}
	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("jwt: unmarshal claims: %w", err)
	}

	if v, ok := claims.(interface{ Valid() error }); ok {
		if err := v.Valid(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
