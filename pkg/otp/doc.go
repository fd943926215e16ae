// Package otp issues and verifies short-lived numeric verification codes.
//
// A Cache holds at most one live code per email address. Issue generates a
// fresh code and stores it in a single operation, overwriting any prior
// entry, so the code returned for the email body always matches the one in
// the cache even under concurrent reissues. Verify is exact string match on
// an unexpired entry and consumes it only on success, which lets a user
// mistype the code and try again.
//
// RedisCache backs production (TTL handled server-side); MemoryCache backs
// tests and single-process development.
package otp
