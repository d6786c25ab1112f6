package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/famoussince/storefront/internal/gate"
	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateAccounts struct {
	status stripe.AccountStatus
	err    error
}

func (s stubGateAccounts) GetAccountStatus(accountID string) (stripe.AccountStatus, error) {
	return s.status, s.err
}

func newSiteConfigHandler(t *testing.T, accounts stubGateAccounts) (*SiteConfigHandler, *db.Queries) {
	t.Helper()
	_, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)
	return NewSiteConfigHandler(gate.New(queries, accounts)), queries
}

func seedReadySite(t *testing.T, queries *db.Queries) {
	t.Helper()
	ctx := context.Background()

	_, err := queries.UpsertSiteSubscription(ctx, db.UpsertSiteSubscriptionParams{
		ID:                   ulid.Make().String(),
		StripeSubscriptionID: "sub_live",
		PriceID:              "price_hosting",
		Status:               "active",
		CurrentPeriodEnd:     sql.NullTime{Time: time.Now().Add(30 * 24 * time.Hour), Valid: true},
	})
	require.NoError(t, err)

	_, err = queries.CreateConnectAccount(ctx, db.CreateConnectAccountParams{
		ID:        ulid.Make().String(),
		AccountID: "acct_live",
	})
	require.NoError(t, err)
}

func readyAccounts() stubGateAccounts {
	return stubGateAccounts{status: stripe.AccountStatus{
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
		DetailsSubmitted: true,
	}}
}

func TestSiteConfigHandler_Get_DefaultsOff(t *testing.T) {
	handler, _ := newSiteConfigHandler(t, readyAccounts())

	c, rec := NewTestContext(http.MethodGet, "/api/admin/site-config", nil)
	require.NoError(t, handler.Get(c))

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp["deploy_site"])
}

func TestSiteConfigHandler_Update_EnableWithoutSubscription(t *testing.T) {
	handler, _ := newSiteConfigHandler(t, readyAccounts())

	c, _ := NewTestContext(http.MethodPut, "/api/admin/site-config", updateSiteConfigRequest{DeploySite: true})
	err := handler.Update(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusPreconditionFailed)
}

func TestSiteConfigHandler_Update_EnableWhenReady(t *testing.T) {
	handler, queries := newSiteConfigHandler(t, readyAccounts())
	seedReadySite(t, queries)

	c, rec := NewTestContext(http.MethodPut, "/api/admin/site-config", updateSiteConfigRequest{DeploySite: true})
	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = NewTestContext(http.MethodGet, "/api/admin/site-config", nil)
	require.NoError(t, handler.Get(c))
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["deploy_site"])
}

func TestSiteConfigHandler_Update_DisableAlwaysSucceeds(t *testing.T) {
	handler, queries := newSiteConfigHandler(t, stubGateAccounts{status: stripe.AccountStatus{}})
	seedReadySite(t, queries)

	c, rec := NewTestContext(http.MethodPut, "/api/admin/site-config", updateSiteConfigRequest{DeploySite: false})
	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSiteConfigHandler_CheckStatus_ReportsIncompleteOnboarding(t *testing.T) {
	handler, queries := newSiteConfigHandler(t, stubGateAccounts{status: stripe.AccountStatus{
		ChargesEnabled: true,
	}})
	seedReadySite(t, queries)

	c, rec := NewTestContext(http.MethodGet, "/api/admin/site-config/status", nil)
	require.NoError(t, handler.CheckStatus(c))

	var resp struct {
		Ready  bool   `json:"ready"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Ready)
	assert.Equal(t, "payment account onboarding is incomplete", resp.Reason)
}
