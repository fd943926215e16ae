package cookie

import "net/http"

// Config holds cookie defaults loaded from the environment. SameSite uses
// net/http numeric values; 2 is SameSiteLaxMode.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"`
}

// NewFromConfig builds a manager from environment configuration.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithPath(cfg.Path),
		WithDomain(cfg.Domain),
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	return New(append(configOpts, opts...)...)
}
