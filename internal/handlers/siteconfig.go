package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/gate"
	"github.com/labstack/echo/v4"
)

// SiteConfigHandler exposes the deployment gate to the admin UI.
type SiteConfigHandler struct {
	gate *gate.Gate
}

func NewSiteConfigHandler(g *gate.Gate) *SiteConfigHandler {
	return &SiteConfigHandler{gate: g}
}

func (h *SiteConfigHandler) Get(c echo.Context) error {
	deployed, err := h.gate.Deployed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read site config")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deploy_site": deployed})
}

// CheckStatus reports readiness without changing anything, so the admin
// UI can show which requirement is missing.
func (h *SiteConfigHandler) CheckStatus(c echo.Context) error {
	readiness, err := h.gate.CheckReadiness(c.Request().Context())
	reason := ""
	if err != nil {
		reason = gateReason(err)
		if reason == "" {
			slog.Error("readiness check failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check readiness")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ready":     readiness.Ready(),
		"readiness": readiness,
		"reason":    reason,
	})
}

type updateSiteConfigRequest struct {
	DeploySite bool `json:"deploy_site"`
}

// Update flips the gate. Turning the site on re-runs the authority
// checks; turning it off always succeeds.
func (h *SiteConfigHandler) Update(c echo.Context) error {
	var req updateSiteConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	if !req.DeploySite {
		if err := h.gate.Disable(ctx); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update site config")
		}
		return c.JSON(http.StatusOK, map[string]bool{"deploy_site": false})
	}

	if err := h.gate.Enable(ctx); err != nil {
		if reason := gateReason(err); reason != "" {
			return echo.NewHTTPError(http.StatusPreconditionFailed, reason)
		}
		slog.Error("failed to enable site", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update site config")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deploy_site": true})
}

func gateReason(err error) string {
	switch {
	case errors.Is(err, gate.ErrNoSubscription):
		return "hosting subscription is not active"
	case errors.Is(err, gate.ErrSubscriptionExpired):
		return "hosting subscription period has ended"
	case errors.Is(err, gate.ErrNoConnectAccount):
		return "no connected payment account"
	case errors.Is(err, gate.ErrAccountNotReady):
		return "payment account onboarding is incomplete"
	}
	return ""
}
