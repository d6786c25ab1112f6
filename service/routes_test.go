package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/famoussince/storefront/internal/gate"
	"github.com/famoussince/storefront/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deploySite(t *testing.T, svc *Service) {
	t.Helper()
	err := svc.storage.Queries.UpsertSiteConfig(context.Background(), db.UpsertSiteConfigParams{
		Key:   gate.DeployKey,
		Value: 1,
	})
	require.NoError(t, err)
}

// TestGatedRoutes verifies storefront traffic bounces to the placeholder
// until the site is deployed, while setup routes stay reachable.
func TestGatedRoutes(t *testing.T) {
	e, svc := setupTestEcho(t)

	gated := []string{
		"/api/homepage",
		"/api/products",
		"/api/cart",
		"/api/checkout",
	}
	for _, path := range gated {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code, "%s should redirect while gated", path)
		assert.Equal(t, "/coming-soon", rec.Header().Get("Location"))
	}

	exempt := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/coming-soon", http.StatusOK},
		{"POST", "/api/waitlist", http.StatusBadRequest},        // reachable, rejects empty body
		{"POST", "/api/webhooks/stripe", http.StatusBadRequest}, // reachable, rejects empty body
		{"GET", "/api/admin/me", http.StatusOK},
	}
	for _, tt := range exempt {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}

	deploySite(t, svc)
	for _, path := range gated {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.NotEqual(t, http.StatusFound, rec.Code, "%s should pass once deployed", path)
	}
}

// TestAdminRoutesRequireLogin checks the guarded admin surface rejects
// anonymous requests.
func TestAdminRoutesRequireLogin(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/products"},
		{"GET", "/api/admin/product-types"},
		{"GET", "/api/admin/exceptions"},
		{"GET", "/api/admin/homepage"},
		{"GET", "/api/admin/orders"},
		{"GET", "/api/admin/waitlist"},
		{"GET", "/api/admin/site-config"},
		{"GET", "/api/admin/connect/status"},
		{"POST", "/api/admin/upload"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestAdminLoginFlow(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := (&http.Response{Header: rec.Header()}).Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
