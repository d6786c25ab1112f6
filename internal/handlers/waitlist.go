package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

type WaitlistHandler struct {
	queries *db.Queries
}

func NewWaitlistHandler(queries *db.Queries) *WaitlistHandler {
	return &WaitlistHandler{queries: queries}
}

type joinWaitlistRequest struct {
	Email string `json:"email"`
}

// Join records an email while the site is gated. Repeat signups are
// accepted quietly.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req joinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}

	ctx := c.Request().Context()
	if _, err := h.queries.GetWaitlistEntryByEmail(ctx, email); err == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "already joined"})
	} else if !errors.Is(err, sql.ErrNoRows) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check waitlist")
	}

	if _, err := h.queries.CreateWaitlistEntry(ctx, db.CreateWaitlistEntryParams{
		ID:    ulid.Make().String(),
		Email: email,
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to join waitlist")
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "joined"})
}

func (h *WaitlistHandler) List(c echo.Context) error {
	entries, err := h.queries.ListWaitlist(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list waitlist")
	}
	if entries == nil {
		entries = []db.Waitlist{}
	}
	return c.JSON(http.StatusOK, entries)
}
