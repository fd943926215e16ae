// Package jwt signs and verifies HMAC-SHA256 JSON Web Tokens.
//
// The service is used for session credentials: the orchestrator mints a token
// carrying the principal id and hands it to the transport layer for cookie
// delivery. A single process-wide signing key is used; rotating the key
// invalidates every outstanding token, which is acceptable because sessions
// are re-issued on login.
//
// Expiry is optional. A token without an exp claim stays valid until key
// rotation; a token with one is rejected with ErrTokenExpired once past it.
package jwt
