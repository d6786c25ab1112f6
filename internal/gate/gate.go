// Package gate hides the storefront behind a placeholder until the site
// owner's hosting subscription and payment account are both ready.
package gate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// DeployKey is the site_config row controlling full-site visibility.
const DeployKey = "deploy_site"

var (
	ErrNoSubscription      = errors.New("gate: no active hosting subscription")
	ErrSubscriptionExpired = errors.New("gate: hosting subscription period has ended")
	ErrAccountNotReady     = errors.New("gate: payment account is not fully onboarded")
	ErrNoConnectAccount    = errors.New("gate: no connected payment account")
)

// Paths that stay reachable while the site is gated.
var exemptPrefixes = []string{
	"/coming-soon",
	"/api/waitlist",
	"/admin",
	"/api/admin",
	"/api/webhooks",
	"/public",
	"/health",
}

type accountAPI interface {
	GetAccountStatus(accountID string) (stripe.AccountStatus, error)
}

// Gate answers "is the site live" per request and decides whether the
// owner may flip it live.
type Gate struct {
	queries  *db.Queries
	accounts accountAPI
}

func New(queries *db.Queries, accounts accountAPI) *Gate {
	return &Gate{queries: queries, accounts: accounts}
}

// Deployed reads the flag fresh from the database on every call, so an
// admin toggle takes effect on the next request.
func (g *Gate) Deployed(ctx context.Context) (bool, error) {
	row, err := g.queries.GetSiteConfig(ctx, DeployKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", DeployKey, err)
	}
	return row.Value != 0, nil
}

// Middleware redirects anonymous traffic to the placeholder page while
// the site is not deployed. Admin, webhook, asset and waitlist routes
// stay open so the owner can finish setup.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range exemptPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			deployed, err := g.Deployed(c.Request().Context())
			if err != nil {
				return err
			}
			if !deployed {
				return c.Redirect(http.StatusFound, "/coming-soon")
			}
			return next(c)
		}
	}
}

// Readiness reports the two conditions required before the site may go
// live.
type Readiness struct {
	SubscriptionActive bool                 `json:"subscription_active"`
	AccountStatus      stripe.AccountStatus `json:"account_status"`
}

func (r Readiness) Ready() bool {
	return r.SubscriptionActive && r.AccountStatus.Ready()
}

// CheckReadiness verifies the hosting subscription row and re-queries the
// connected account live. The two checks are independent remote reads and
// run concurrently.
func (g *Gate) CheckReadiness(ctx context.Context) (Readiness, error) {
	var r Readiness

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		sub, err := g.queries.GetLatestSiteSubscription(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoSubscription
			}
			return fmt.Errorf("failed to read subscription: %w", err)
		}
		if sub.Status != "active" {
			return ErrNoSubscription
		}
		if sub.CurrentPeriodEnd.Valid && sub.CurrentPeriodEnd.Time.Before(time.Now()) {
			return ErrSubscriptionExpired
		}
		r.SubscriptionActive = true
		return nil
	})

	eg.Go(func() error {
		acct, err := g.queries.GetConnectAccount(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoConnectAccount
			}
			return fmt.Errorf("failed to read connect account: %w", err)
		}
		status, err := g.accounts.GetAccountStatus(acct.AccountID)
		if err != nil {
			return err
		}
		r.AccountStatus = status
		if !status.Ready() {
			return ErrAccountNotReady
		}
		return nil
	})

	err := eg.Wait()
	return r, err
}

// Enable flips the site live only after readiness passes.
func (g *Gate) Enable(ctx context.Context) error {
	if _, err := g.CheckReadiness(ctx); err != nil {
		return err
	}
	return g.set(ctx, 1)
}

// Disable always succeeds; pulling a site down needs no checks.
func (g *Gate) Disable(ctx context.Context) error {
	return g.set(ctx, 0)
}

func (g *Gate) set(ctx context.Context, value int64) error {
	if err := g.queries.UpsertSiteConfig(ctx, db.UpsertSiteConfigParams{
		Key:   DeployKey,
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", DeployKey, err)
	}
	return nil
}
