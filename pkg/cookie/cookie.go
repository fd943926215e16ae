package cookie

import (
	"errors"
	"net/http"
)

// Manager writes and reads cookies with a set of process-wide defaults.
type Manager struct {
	defaults Options
}

// New creates a manager. Defaults: root path, HttpOnly, SameSite=Lax,
// session-scoped lifetime (MaxAge 0).
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie, merging per-call options over the manager defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	o := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

// Get returns the named cookie's value or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie on the client. Path and domain must match
// the ones used at set time or the browser keeps the original cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
