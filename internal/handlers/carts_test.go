package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHandler(t *testing.T) (*CartHandler, string) {
	t.Helper()
	_, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	handler := NewCartHandler(cart.NewStore(queries), fixedSessions{id: "sess-test"}, NewCatalog(queries))

	pt, err := CreateTestProductType(queries)
	require.NoError(t, err)
	product, err := CreateTestProduct(queries, pt.ID, "Famous Since 1992", 2800)
	require.NoError(t, err)

	return handler, product.ID
}

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, want, httpErr.Code)
}

func TestCartHandler_GetCart_Empty(t *testing.T) {
	handler, _ := newCartHandler(t)

	c, rec := NewTestContext(http.MethodGet, "/api/cart", nil)
	require.NoError(t, handler.GetCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.SubtotalCents)
}

func TestCartHandler_AddItem(t *testing.T) {
	handler, productID := newCartHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
		ProductID: productID,
		Size:      "M",
		Quantity:  2,
	})
	require.NoError(t, handler.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec.Body.Bytes())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Black", resp.Items[0].Color)
	assert.Equal(t, int64(2), resp.Items[0].Quantity)
	assert.Equal(t, int64(5600), resp.SubtotalCents)
}

func TestCartHandler_AddItem_MergesRepeatAdds(t *testing.T) {
	handler, productID := newCartHandler(t)

	for i := 0; i < 2; i++ {
		c, _ := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
			ProductID: productID,
			Size:      "L",
			Color:     "Black",
			Quantity:  1,
		})
		require.NoError(t, handler.AddItem(c))
	}

	c, rec := NewTestContext(http.MethodGet, "/api/cart", nil)
	require.NoError(t, handler.GetCart(c))

	resp := decodeCart(t, rec.Body.Bytes())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].Quantity)
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	handler, _ := newCartHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
		ProductID: "no-such-product",
		Size:      "M",
		Quantity:  1,
	})
	err := handler.AddItem(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartHandler_AddItem_UnknownSize(t *testing.T) {
	handler, productID := newCartHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
		ProductID: productID,
		Size:      "XXXL",
		Quantity:  1,
	})
	err := handler.AddItem(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartHandler_UpdateItem_ZeroRemoves(t *testing.T) {
	handler, productID := newCartHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
		ProductID: productID,
		Size:      "S",
		Quantity:  3,
	})
	require.NoError(t, handler.AddItem(c))
	added := decodeCart(t, rec.Body.Bytes())
	require.Len(t, added.Items, 1)

	c, rec = NewTestContext(http.MethodPut, "/api/cart/items/:id", updateQuantityRequest{Quantity: 0})
	c.SetParamNames("id")
	c.SetParamValues(added.Items[0].ID)
	require.NoError(t, handler.UpdateItem(c))

	resp := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, resp.Items)
}

func TestCartHandler_RemoveItem_Unknown(t *testing.T) {
	handler, _ := newCartHandler(t)

	c, _ := NewTestContext(http.MethodDelete, "/api/cart/items/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope|M|Black")
	err := handler.RemoveItem(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartHandler_ClearCart(t *testing.T) {
	handler, productID := newCartHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/cart/items", addToCartRequest{
		ProductID: productID,
		Size:      "M",
		Quantity:  1,
	})
	require.NoError(t, handler.AddItem(c))

	c, rec := NewTestContext(http.MethodDelete, "/api/cart", nil)
	require.NoError(t, handler.ClearCart(c))

	resp := decodeCart(t, rec.Body.Bytes())
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Count)
}
