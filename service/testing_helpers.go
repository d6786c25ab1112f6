package service

import (
	"testing"

	"github.com/famoussince/storefront/storage"
	"github.com/labstack/echo/v4"
)

// setupTestService creates a service instance with an in-memory database
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Session.Secret = "test-secret"
	config.Admin.Username = "admin"
	config.Admin.Password = "password"
	config.Upload.MaxSize = 1 << 20
	config.Upload.Dir = t.TempDir()
	config.Assets.ImageDir = t.TempDir()

	svc, err := New(store, config)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(500)
		}
	}

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}
