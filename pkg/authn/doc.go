// Package authn implements the credential and session lifecycle for the
// marketplace's two principal kinds, users and vendors.
//
// Both kinds share one authentication surface: the same registration,
// verification, login, and password flows, the same HS256 session token, the
// same reset-token format. They remain separate data domains; only users
// carry the admin flag, and an email address may exist in at most one of the
// two collections.
//
// The Service composes a PrincipalStore, an otp.Cache, an email sender, and
// the token services from pkg/jwt and pkg/token. Every flow is a single
// request/response operation taking a context; no state is shared between
// requests outside the OTP cache.
//
// Two behaviors are inherited from the product contract and kept on purpose:
// unverified principals may still log in, and verification codes and reset
// links are returned to the caller in addition to being emailed.
package authn
