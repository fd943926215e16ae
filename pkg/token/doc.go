// Package token provides compact signed tokens that embed a JSON payload.
//
// The format is base64url(payload).base64url(signature) where the signature
// is an 8-byte truncated HMAC-SHA256 over the raw payload. Truncation keeps
// password-reset links short enough for email clients while the ~2^32
// forgery resistance is plenty for tokens that expire within the hour.
//
// Expiry is the caller's concern: embed a unix timestamp in the payload and
// check it after parsing. Do not use this package for long-lived or
// high-value credentials; those belong in pkg/jwt.
package token
