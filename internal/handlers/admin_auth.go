package handlers

import (
	"net/http"

	"github.com/famoussince/storefront/internal/session"
	"github.com/labstack/echo/v4"
)

// AdminAuthHandler signs the site owner in and out against the
// configured credentials.
type AdminAuthHandler struct {
	sessions *session.Manager
	username string
	password string
}

func NewAdminAuthHandler(sessions *session.Manager, username, password string) *AdminAuthHandler {
	return &AdminAuthHandler{sessions: sessions, username: username, password: password}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminAuthHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ok, err := h.sessions.LoginAdmin(c, req.Username, req.Password, h.username, h.password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": true})
}

func (h *AdminAuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.LogoutAdmin(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to end session")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminAuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"admin": h.sessions.IsAdmin(c)})
}
