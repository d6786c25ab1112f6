// Package session keeps two cookies: the shopper's anonymous cart
// session id and the admin login.
package session

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "famoussince_session"
	cartKey     = "cart_id"
	adminKey    = "admin"
)

// Manager wraps the cookie store.
type Manager struct {
	store sessions.Store
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// CartID returns the shopper's cart session id, minting one on first
// contact.
func (m *Manager) CartID(c echo.Context) (string, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if id, ok := session.Values[cartKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[cartKey] = id
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}

// LoginAdmin checks the configured credentials and marks the session.
func (m *Manager) LoginAdmin(c echo.Context, username, password, wantUser, wantPass string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	if !userOK || !passOK {
		return false, nil
	}

	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	session.Values[adminKey] = true
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return false, fmt.Errorf("failed to save session: %w", err)
	}
	return true, nil
}

// IsAdmin reports whether the request carries an admin login.
func (m *Manager) IsAdmin(c echo.Context) bool {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return false
	}
	admin, ok := session.Values[adminKey].(bool)
	return ok && admin
}

// LogoutAdmin clears the admin mark but keeps the cart id.
func (m *Manager) LogoutAdmin(c echo.Context) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	delete(session.Values, adminKey)
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// RequireAdmin guards the admin API surface.
func (m *Manager) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.IsAdmin(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin login required")
			}
			return next(c)
		}
	}
}
