package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
)

const signatureLen = 8

// Generate JSON-encodes the payload and appends a truncated HMAC-SHA256
// signature keyed with secret.
func Generate[T any](payload T, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(data) +
		"." + base64.RawURLEncoding.EncodeToString(sign(data, secret)), nil
}

// Parse verifies the signature and decodes the payload into T. The zero
// value of T is returned alongside any error.
func Parse[T any](tok string, secret string) (T, error) {
	var payload T

	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return payload, ErrMalformedToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrMalformedToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, ErrMalformedToken
	}

	if subtle.ConstantTimeCompare(sig, sign(data, secret)) != 1 {
		return payload, ErrSignatureMismatch
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrMalformedToken
	}
	return payload, nil
}

func sign(data []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return mac.Sum(nil)[:signatureLen]
}
