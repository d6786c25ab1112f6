package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/famoussince/storefront/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminOrderHandler(t *testing.T) (*AdminOrderHandler, *db.Queries) {
	t.Helper()
	_, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)
	return NewAdminOrderHandler(queries, "https://famoussince.example.com"), queries
}

func seedOrderWithItems(t *testing.T, queries *db.Queries) db.Order {
	t.Helper()
	order := seedPendingOrder(t, queries, "pi_"+ulid.Make().String())

	_, err := queries.CreateOrderItem(context.Background(), db.CreateOrderItemParams{
		ID:          ulid.Make().String(),
		OrderID:     order.ID,
		ProductName: "Famous Since 1992",
		Size:        sql.NullString{String: "M", Valid: true},
		Color:       sql.NullString{String: "Black", Valid: true},
		Quantity:    2,
		PriceCents:  2800,
		TotalCents:  5600,
	})
	require.NoError(t, err)
	return order
}

func TestAdminOrderHandler_Get(t *testing.T) {
	handler, queries := newAdminOrderHandler(t)
	order := seedOrderWithItems(t, queries)

	c, rec := NewTestContext(http.MethodGet, "/api/admin/orders/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID)
	assert.Contains(t, rec.Body.String(), "Famous Since 1992")
}

func TestAdminOrderHandler_UpdateStatus(t *testing.T) {
	handler, queries := newAdminOrderHandler(t)
	order := seedOrderWithItems(t, queries)

	c, rec := NewTestContext(http.MethodPut, "/api/admin/orders/:id/status", updateOrderStatusRequest{Status: "printing"})
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	updated, err := queries.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "printing", updated.Status)
}

func TestAdminOrderHandler_UpdateStatus_Unknown(t *testing.T) {
	handler, queries := newAdminOrderHandler(t)
	order := seedOrderWithItems(t, queries)

	c, _ := NewTestContext(http.MethodPut, "/api/admin/orders/:id/status", updateOrderStatusRequest{Status: "lost"})
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	err := handler.UpdateStatus(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAdminOrderHandler_PackingSlip(t *testing.T) {
	handler, queries := newAdminOrderHandler(t)
	order := seedOrderWithItems(t, queries)

	c, rec := NewTestContext(http.MethodGet, "/api/admin/orders/:id/packing-slip", nil)
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	require.NoError(t, handler.PackingSlip(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), order.ID)
	// PDF magic bytes.
	assert.True(t, len(rec.Body.Bytes()) > 4)
	assert.Equal(t, "%PDF", string(rec.Body.Bytes()[:4]))
}

func TestAdminOrderHandler_PackingSlip_UnknownOrder(t *testing.T) {
	handler, _ := newAdminOrderHandler(t)

	c, _ := NewTestContext(http.MethodGet, "/api/admin/orders/:id/packing-slip", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	err := handler.PackingSlip(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
