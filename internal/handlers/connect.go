package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// ConnectHandler manages the site owner's payment account onboarding.
type ConnectHandler struct {
	stripe  *stripe.Client
	queries *db.Queries
	baseURL string
}

func NewConnectHandler(stripeClient *stripe.Client, queries *db.Queries, baseURL string) *ConnectHandler {
	return &ConnectHandler{stripe: stripeClient, queries: queries, baseURL: baseURL}
}

type createAccountRequest struct {
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

func (h *ConnectHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	account, err := h.stripe.CreateExpressAccount(req.Email)
	if err != nil {
		slog.Error("failed to create connect account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
	}

	_, err = h.queries.CreateConnectAccount(c.Request().Context(), db.CreateConnectAccountParams{
		ID:            ulid.Make().String(),
		AccountID:     account.ID,
		BusinessName:  sql.NullString{String: req.BusinessName, Valid: req.BusinessName != ""},
		BusinessEmail: sql.NullString{String: req.Email, Valid: true},
	})
	if err != nil {
		slog.Error("failed to store connect account", "error", err, "account_id", account.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store account")
	}

	return c.JSON(http.StatusOK, map[string]string{"account_id": account.ID})
}

// CreateLink returns a fresh onboarding URL for the stored account.
func (h *ConnectHandler) CreateLink(c echo.Context) error {
	acct, err := h.queries.GetConnectAccount(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "No connected account")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load account")
	}

	link, err := h.stripe.CreateOnboardingLink(acct.AccountID,
		h.baseURL+"/admin/connect/refresh",
		h.baseURL+"/admin/connect/return")
	if err != nil {
		slog.Error("failed to create onboarding link", "error", err, "account_id", acct.AccountID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create onboarding link")
	}

	return c.JSON(http.StatusOK, map[string]string{"url": link.URL})
}

// Status re-queries the payment API and refreshes the local mirror.
func (h *ConnectHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	acct, err := h.queries.GetConnectAccount(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "No connected account")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load account")
	}

	status, err := h.stripe.GetAccountStatus(acct.AccountID)
	if err != nil {
		slog.Error("failed to fetch account status", "error", err, "account_id", acct.AccountID)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to fetch account status")
	}

	if err := h.queries.UpdateConnectAccountStatus(ctx, db.UpdateConnectAccountStatusParams{
		OnboardingComplete: boolToInt(status.Ready()),
		ChargesEnabled:     boolToInt(status.ChargesEnabled),
		PayoutsEnabled:     boolToInt(status.PayoutsEnabled),
		DetailsSubmitted:   boolToInt(status.DetailsSubmitted),
		AccountID:          acct.AccountID,
	}); err != nil {
		slog.Warn("failed to cache account status", "error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"account_id": acct.AccountID,
		"status":     status,
		"ready":      status.Ready(),
	})
}

// Clear drops the local mirror without touching the remote account.
func (h *ConnectHandler) Clear(c echo.Context) error {
	acct, err := h.queries.GetConnectAccount(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.NoContent(http.StatusNoContent)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load account")
	}
	if err := h.queries.DeleteConnectAccount(c.Request().Context(), acct.AccountID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear account")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the remote account and then the local mirror.
func (h *ConnectHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	acct, err := h.queries.GetConnectAccount(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "No connected account")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load account")
	}

	if err := h.stripe.DeleteAccount(acct.AccountID); err != nil {
		slog.Error("failed to delete remote account", "error", err, "account_id", acct.AccountID)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to delete remote account")
	}
	if err := h.queries.DeleteConnectAccount(ctx, acct.AccountID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear account")
	}
	return c.NoContent(http.StatusNoContent)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
