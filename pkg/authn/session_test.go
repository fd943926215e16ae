package authn_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/authn"
	"github.com/wishbay/wishbay/pkg/cookie"
	"github.com/wishbay/wishbay/pkg/jwt"
)

func sessionToken(t *testing.T, svc *jwt.Service, claims authn.SessionClaims) string {
	t.Helper()
	token, err := svc.Generate(claims)
	require.NoError(t, err)
	return token
}

func TestSessionCookie(t *testing.T) {
	t.Parallel()

	tokens, err := jwt.NewFromString("test-session-signing-key-32bytes!")
	require.NoError(t, err)
	manager := cookie.New()

	t.Run("set and read back", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		token := sessionToken(t, tokens, authn.SessionClaims{Subject: id, Kind: authn.KindUser})

		rec := httptest.NewRecorder()
		authn.SetSessionCookie(rec, manager, token, 0)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, authn.AccessTokenCookie, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Zero(t, cookies[0].MaxAge)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])

		claims, err := authn.SessionFromRequest(req, manager, tokens)
		require.NoError(t, err)
		assert.Equal(t, id, claims.Subject)
		assert.Equal(t, authn.KindUser, claims.Kind)
	})

	t.Run("bounded cookie carries max age", func(t *testing.T) {
		t.Parallel()

		token := sessionToken(t, tokens, authn.SessionClaims{Subject: uuid.New(), Kind: authn.KindVendor})

		rec := httptest.NewRecorder()
		authn.SetSessionCookie(rec, manager, token, 24*time.Hour)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookies[0].MaxAge)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		authn.ClearSessionCookie(rec, manager)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, authn.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := authn.SessionFromRequest(req, manager, tokens)
		assert.ErrorIs(t, err, authn.ErrInvalidSession)
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()

		token := sessionToken(t, tokens, authn.SessionClaims{Subject: uuid.New(), Kind: authn.KindUser})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authn.AccessTokenCookie, Value: token + "x"})

		_, err := authn.SessionFromRequest(req, manager, tokens)
		assert.ErrorIs(t, err, authn.ErrInvalidSession)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		token := sessionToken(t, tokens, authn.SessionClaims{
			Subject:   uuid.New(),
			Kind:      authn.KindUser,
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authn.AccessTokenCookie, Value: token})

		_, err := authn.SessionFromRequest(req, manager, tokens)
		assert.ErrorIs(t, err, authn.ErrInvalidSession)
	})

	t.Run("unknown kind claim", func(t *testing.T) {
		t.Parallel()

		token := sessionToken(t, tokens, authn.SessionClaims{Subject: uuid.New(), Kind: "robot"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authn.AccessTokenCookie, Value: token})

		_, err := authn.SessionFromRequest(req, manager, tokens)
		assert.ErrorIs(t, err, authn.ErrInvalidSession)
	})
}
