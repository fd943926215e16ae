package authn

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wishbay/wishbay/pkg/sanitizer"
)

// Login authenticates a principal of either kind by email and password and
// returns a session token. Absent email and wrong password produce the same
// ErrInvalidCredentials, so callers cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (Principal, string, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindAnyByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword(principal.creds().PasswordHash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSession(principal, 0)
	if err != nil {
		return nil, "", err
	}
	return principal, token, nil
}

// AdminLogin authenticates a user and additionally requires the admin flag.
// A valid non-admin login fails with the same error as a bad password.
func (s *Service) AdminLogin(ctx context.Context, emailAddr, password string) (*User, string, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindByEmail(ctx, KindUser, addr)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	user := principal.(*User)

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsAdmin {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSession(user, 0)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignInWithGoogle logs in the principal owning the given email, creating an
// unverified user with a random password when none exists. The email is
// trusted as already proven by the identity provider, so no password or
// verification check runs. Sessions on this path expire after 24 hours.
func (s *Service) SignInWithGoogle(ctx context.Context, emailAddr string) (Principal, string, error) {
	addr := sanitizer.NormalizeEmail(emailAddr)

	principal, err := s.store.FindAnyByEmail(ctx, addr)
	switch {
	case err == nil:
		// Existing principal of either kind logs straight in.
	case errors.Is(err, ErrPrincipalNotFound):
		principal, err = s.createGoogleUser(ctx, addr)
		if err != nil {
			return nil, "", err
		}
	default:
		return nil, "", err
	}

	token, err := s.issueSession(principal, googleSessionTTL)
	if err != nil {
		return nil, "", err
	}
	return principal, token, nil
}

func (s *Service) createGoogleUser(ctx context.Context, addr string) (*User, error) {
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	suffix, err := randomDigits(4)
	if err != nil {
		return nil, err
	}

	user := &User{
		Credentials: Credentials{
			ID:           uuid.New(),
			Email:        addr,
			PasswordHash: hash,
		},
		FirstName:    firstNameFromEmail(addr),
		LastName:     "User" + suffix,
		ProfileImage: DefaultProfileImage,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// issueSession signs a session token for the principal. A zero ttl produces
// a token without an expiry claim.
func (s *Service) issueSession(p Principal, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Subject:  p.PrincipalID(),
		Kind:     p.PrincipalKind(),
		IssuedAt: s.now().Unix(),
	}
	if ttl > 0 {
		claims.ExpiresAt = s.now().Add(ttl).Unix()
	}

	token, err := s.sessions.Generate(claims)
	if err != nil {
		return "", fmt.Errorf("authn: sign session token: %w", err)
	}
	return token, nil
}

// firstNameFromEmail capitalizes the local part of the address, stopping at
// the first separator so "jane.doe@x.com" becomes "Jane".
func firstNameFromEmail(addr string) string {
	local, _, _ := strings.Cut(addr, "@")
	if i := strings.IndexAny(local, ".+_-"); i > 0 {
		local = local[:i]
	}
	if local == "" {
		return "User"
	}

	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// randomPassword builds a throwaway credential for principals created through
// the identity-provider path. It is never revealed; such accounts change it
// through the reset flow if they ever need password login.
func randomPassword() (string, error) {
	const length = 32

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("authn: generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func randomDigits(n int) (string, error) {
	const digits = "0123456789"

	buf := make([]byte, n)
	for i := range buf {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("authn: generate suffix: %w", err)
		}
		buf[i] = digits[v.Int64()]
	}
	return string(buf), nil
}
