package authn_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/authn"
)

func TestService_Login(t *testing.T) {
	t.Parallel()

	t.Run("user logs in without verification", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		user, _ := f.registerUser(t, "login@example.com")

		principal, token, err := f.svc.Login(context.Background(), "Login@Example.com", "Sup3rSecret!")
		require.NoError(t, err)
		assert.Equal(t, user.ID, principal.PrincipalID())
		assert.False(t, principal.IsEmailVerified())

		var claims authn.SessionClaims
		require.NoError(t, f.tokens.Parse(token, &claims))
		assert.Equal(t, user.ID, claims.Subject)
		assert.Equal(t, authn.KindUser, claims.Kind)
		assert.Zero(t, claims.ExpiresAt)

		// Tokens without a lifetime omit the claim entirely rather than
		// carrying exp 0.
		payload, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[1])
		require.NoError(t, err)
		assert.NotContains(t, string(payload), `"exp"`)
	})

	t.Run("vendor logs in through the same entry point", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		vendor, _ := f.registerVendor(t, "vlogin@example.com")

		principal, token, err := f.svc.Login(context.Background(), "vlogin@example.com", "Sup3rSecret!")
		require.NoError(t, err)
		assert.Equal(t, vendor.ID, principal.PrincipalID())

		var claims authn.SessionClaims
		require.NoError(t, f.tokens.Parse(token, &claims))
		assert.Equal(t, authn.KindVendor, claims.Kind)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.registerUser(t, "probe@example.com")

		_, _, errUnknown := f.svc.Login(context.Background(), "ghost@example.com", "Sup3rSecret!")
		_, _, errWrong := f.svc.Login(context.Background(), "probe@example.com", "WrongPassw0rd")

		assert.ErrorIs(t, errUnknown, authn.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, authn.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestService_AdminLogin(t *testing.T) {
	t.Parallel()

	t.Run("admin user logs in", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		admin, _ := f.registerUser(t, "admin@example.com")
		require.NoError(t, f.store.PromoteAdmin(context.Background(), admin.ID))

		user, token, err := f.svc.AdminLogin(context.Background(), "admin@example.com", "Sup3rSecret!")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		assert.NotEmpty(t, token)
	})

	t.Run("non-admin fails like a bad password", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.registerUser(t, "plain@example.com")

		_, _, err := f.svc.AdminLogin(context.Background(), "plain@example.com", "Sup3rSecret!")
		assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
	})

	t.Run("vendor email is invisible to admin login", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.registerVendor(t, "vadmin@example.com")

		_, _, err := f.svc.AdminLogin(context.Background(), "vadmin@example.com", "Sup3rSecret!")
		assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
	})
}

func TestService_SignInWithGoogle(t *testing.T) {
	t.Parallel()

	t.Run("existing principal logs in without a password", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		user, _ := f.registerUser(t, "existing@example.com")

		principal, token, err := f.svc.SignInWithGoogle(context.Background(), "existing@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, principal.PrincipalID())

		var claims authn.SessionClaims
		require.NoError(t, f.tokens.Parse(token, &claims))
		assert.Equal(t, f.clock.Now().Add(24*time.Hour).Unix(), claims.ExpiresAt)
	})

	t.Run("new email creates unverified user", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		principal, token, err := f.svc.SignInWithGoogle(context.Background(), "Jane.Doe@Gmail.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		user, ok := principal.(*authn.User)
		require.True(t, ok)
		assert.Equal(t, "jane.doe@gmail.com", user.Email)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Regexp(t, `^User\d{4}$`, user.LastName)
		assert.False(t, user.EmailVerified)
		assert.NotEmpty(t, user.PasswordHash)

		stored, err := f.store.FindByEmail(context.Background(), authn.KindUser, "jane.doe@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.PrincipalID())
	})

	t.Run("existing vendor wins over user creation", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		vendor, _ := f.registerVendor(t, "shop@example.com")

		principal, _, err := f.svc.SignInWithGoogle(context.Background(), "shop@example.com")
		require.NoError(t, err)
		assert.Equal(t, vendor.ID, principal.PrincipalID())
		assert.Equal(t, authn.KindVendor, principal.PrincipalKind())
	})
}
