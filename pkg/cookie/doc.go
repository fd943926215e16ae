// Package cookie manages HTTP cookie delivery with safe defaults.
//
// The manager applies HttpOnly, SameSite=Lax and a root path to every cookie
// unless overridden per call. Values are stored as-is: the session token this
// service delivers is already an HMAC-signed credential, so no additional
// cookie-level signing is layered on top.
package cookie
