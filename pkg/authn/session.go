package authn

import (
	"net/http"
	"time"

	"github.com/wishbay/wishbay/pkg/cookie"
	"github.com/wishbay/wishbay/pkg/jwt"
)

// AccessTokenCookie is the name browsers hold the session token under.
const AccessTokenCookie = "accessToken"

// SetSessionCookie writes the session token. A zero maxAge yields a
// session-scoped cookie matching tokens issued without an expiry.
func SetSessionCookie(w http.ResponseWriter, m *cookie.Manager, token string, maxAge time.Duration) {
	if maxAge > 0 {
		m.Set(w, AccessTokenCookie, token, cookie.WithMaxAge(int(maxAge.Seconds())))
		return
	}
	m.Set(w, AccessTokenCookie, token)
}

// ClearSessionCookie expires the session cookie; this is the whole of logout,
// since tokens are stateless.
func ClearSessionCookie(w http.ResponseWriter, m *cookie.Manager) {
	m.Delete(w, AccessTokenCookie)
}

// SessionFromRequest extracts and verifies the session claims carried by the
// request cookie. Missing cookie and any token defect both return
// ErrInvalidSession.
func SessionFromRequest(r *http.Request, m *cookie.Manager, sessions *jwt.Service) (SessionClaims, error) {
	var claims SessionClaims

	raw, err := m.Get(r, AccessTokenCookie)
	if err != nil {
		return claims, ErrInvalidSession
	}
	if err := sessions.Parse(raw, &claims); err != nil {
		return SessionClaims{}, ErrInvalidSession
	}
	if _, err := ParseKind(string(claims.Kind)); err != nil {
		return SessionClaims{}, ErrInvalidSession
	}
	return claims, nil
}
