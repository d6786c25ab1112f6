package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts_FilterByType(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()
	handler := NewProductHandler(queries)

	tees, err := CreateTestProductType(queries)
	require.NoError(t, err)
	_, err = CreateTestProduct(queries, tees.ID, "Famous Since 1992", 2800)
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodGet, "/api/products?type="+tees.ID, nil)
	require.NoError(t, handler.ListProducts(c))

	var resp []productResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Famous Since 1992", resp[0].Name)

	c, rec = NewTestContext(http.MethodGet, "/api/products?type=other", nil)
	require.NoError(t, handler.ListProducts(c))
	resp = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestProductHandler_GetProduct_IncludesVariants(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()
	handler := NewProductHandler(queries)

	tees, err := CreateTestProductType(queries)
	require.NoError(t, err)
	product, err := CreateTestProduct(queries, tees.ID, "Famous Since 2001", 2800)
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodGet, "/api/products/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(product.ID)
	require.NoError(t, handler.GetProduct(c))

	var resp productResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Variants, 3)
	for _, v := range resp.Variants {
		assert.Equal(t, int64(2800), v.PriceCents)
		assert.True(t, v.InStock)
	}
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	_, queries, cleanup := NewTestDB()
	defer cleanup()
	handler := NewProductHandler(queries)

	c, _ := NewTestContext(http.MethodGet, "/api/products/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	err := handler.GetProduct(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
