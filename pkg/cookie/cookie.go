package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads plain cookies with shared defaults.
type Manager struct {
	defaults Config
}

// New returns a Manager starting from DefaultConfig.
func New(opts ...Option) *Manager {
	return NewFromConfig(DefaultConfig(), opts...)
}

// NewFromConfig uses cfg as the defaults. An empty path becomes "/" and an
// unset SameSite becomes Lax.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	if cfg.SameSite == 0 {
		cfg.SameSite = http.SameSiteLaxMode
	}
	return &Manager{defaults: cfg.with(opts)}
}

// Defaults returns a copy of the default attributes.
func (m *Manager) Defaults() Config {
	return m.defaults
}

// Cookie builds the cookie Set would write.
func (m *Manager) Cookie(name, value string, opts ...Option) *http.Cookie {
	cfg := m.defaults.with(opts)
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: cfg.HttpOnly,
		SameSite: cfg.SameSite,
	}
	// Expires is kept for clients that ignore Max-Age.
	if cfg.MaxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(cfg.MaxAge) * time.Second).UTC()
	}
	return c
}

// Set writes a cookie after checking name and value are well formed.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrInvalidName
	}
	c := m.Cookie(name, value, opts...)
	if err := c.Valid(); err != nil {
		return errors.Join(ErrInvalidFormat, err)
	}
	http.SetCookie(w, c)
	return nil
}

// Get returns the value of the named cookie or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	switch {
	case errors.Is(err, http.ErrNoCookie):
		return "", ErrCookieNotFound
	case err != nil:
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie on the default path and domain.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.Cookie(name, "", WithMaxAge(-1))
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}
