package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/famoussince/storefront/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminProductHandler(t *testing.T) (*AdminProductHandler, *db.Queries, db.ProductType) {
	t.Helper()
	database, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	pt, err := CreateTestProductType(queries)
	require.NoError(t, err)
	return NewAdminProductHandler(database, queries), queries, pt
}

func TestAdminProductHandler_Create(t *testing.T) {
	handler, queries, pt := newAdminProductHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/api/admin/products", productInput{
		Name:           "Famous Since 1984",
		Description:    "Famous Since 1984",
		BasePriceCents: 2800,
		ProductTypeID:  pt.ID,
		Variants: []variantInput{
			{Size: "S", Color: "Black", PriceCents: 2800, StockQuantity: 10},
			{Size: "M", Color: "Black", PriceCents: 2800, StockQuantity: 10},
		},
	})
	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp productResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	variants, err := queries.ListVariantsByProduct(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Len(t, variants, 2)
}

func TestAdminProductHandler_Create_RequiresNameAndType(t *testing.T) {
	handler, _, _ := newAdminProductHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/admin/products", productInput{Name: "No Type"})
	err := handler.Create(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAdminProductHandler_Update_ReconcilesVariants(t *testing.T) {
	handler, queries, pt := newAdminProductHandler(t)

	product, err := CreateTestProduct(queries, pt.ID, "Famous Since 2001", 2800)
	require.NoError(t, err)

	ctx := context.Background()
	before, err := queries.ListVariantsByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, before, 3)

	beforeIDs := map[string]string{}
	for _, v := range before {
		beforeIDs[v.Size+"|"+v.Color] = v.ID
	}

	// Keep S at a new price, keep M untouched, drop L, add XL.
	c, rec := NewTestContext(http.MethodPut, "/api/admin/products/:id", productInput{
		Name:           "Famous Since 2001",
		Description:    "Famous Since 2001",
		BasePriceCents: 2800,
		ProductTypeID:  pt.ID,
		Variants: []variantInput{
			{Size: "S", Color: "Black", PriceCents: 3000, StockQuantity: 25},
			{Size: "M", Color: "Black", PriceCents: 2800, StockQuantity: 25},
			{Size: "XL", Color: "Black", PriceCents: 2800, StockQuantity: 5},
		},
	})
	c.SetParamNames("id")
	c.SetParamValues(product.ID)
	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	after, err := queries.ListVariantsByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, after, 3)

	byKey := map[string]db.ProductVariant{}
	for _, v := range after {
		byKey[v.Size+"|"+v.Color] = v
	}

	// Surviving rows kept their ids instead of being reinserted.
	assert.Equal(t, beforeIDs["S|Black"], byKey["S|Black"].ID)
	assert.Equal(t, int64(3000), byKey["S|Black"].PriceCents)
	assert.Equal(t, beforeIDs["M|Black"], byKey["M|Black"].ID)

	_, dropped := byKey["L|Black"]
	assert.False(t, dropped)
	assert.Equal(t, int64(5), byKey["XL|Black"].StockQuantity)
}

func TestAdminProductHandler_Update_UnknownProduct(t *testing.T) {
	handler, _, pt := newAdminProductHandler(t)

	c, _ := NewTestContext(http.MethodPut, "/api/admin/products/:id", productInput{
		Name:          "Ghost",
		ProductTypeID: pt.ID,
	})
	c.SetParamNames("id")
	c.SetParamValues("missing")
	err := handler.Update(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestAdminProductHandler_Delete(t *testing.T) {
	handler, queries, pt := newAdminProductHandler(t)

	product, err := CreateTestProduct(queries, pt.ID, "Short Run", 2800)
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodDelete, "/api/admin/products/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(product.ID)
	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err = queries.GetProduct(context.Background(), product.ID)
	require.Error(t, err)
}
