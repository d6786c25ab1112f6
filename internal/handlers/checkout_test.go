package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkoutSession = "sess-checkout"

func newCheckoutHandler(t *testing.T) (*CheckoutHandler, *cart.Store) {
	t.Helper()
	_, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	carts := cart.NewStore(queries)
	flows := checkout.NewFlowStore(queries)
	handler := NewCheckoutHandler(carts, flows, fixedSessions{id: checkoutSession}, nil, nil, queries)
	return handler, carts
}

func seedCheckoutCart(t *testing.T, carts *cart.Store, items ...cart.Item) {
	t.Helper()
	ct := &cart.Cart{Items: items}
	require.NoError(t, carts.Save(context.Background(), checkoutSession, ct))
}

func testContact() checkout.Contact {
	return checkout.Contact{
		Email:     "fan@example.com",
		FirstName: "Jamie",
		LastName:  "Ortiz",
	}
}

func testAddress() checkout.Address {
	return checkout.Address{
		Line1:      "100 Main St",
		City:       "Eau Claire",
		State:      "WI",
		PostalCode: "54701",
		Country:    "US",
	}
}

func decodeState(t *testing.T, body []byte) checkout.State {
	t.Helper()
	var state checkout.State
	require.NoError(t, json.Unmarshal(body, &state))
	return state
}

func TestCheckoutHandler_SubmitContact(t *testing.T) {
	handler, _ := newCheckoutHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/api/checkout/contact", testContact())
	require.NoError(t, handler.SubmitContact(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec.Body.Bytes())
	assert.Equal(t, checkout.StepShipping, state.Step)
	assert.Equal(t, "fan@example.com", state.Contact.Email)
}

func TestCheckoutHandler_SubmitContact_MissingFields(t *testing.T) {
	handler, _ := newCheckoutHandler(t)

	c, rec := NewTestContext(http.MethodPost, "/api/checkout/contact", checkout.Contact{Email: "fan@example.com"})
	require.NoError(t, handler.SubmitContact(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["missing_fields"], "first_name")
	assert.Contains(t, resp["missing_fields"], "last_name")
}

func TestCheckoutHandler_SubmitShipping_BeforeContact(t *testing.T) {
	handler, _ := newCheckoutHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/checkout/shipping", shippingStepRequest{
		Address: testAddress(),
		Method:  checkout.ShippingStandard,
	})
	err := handler.SubmitShipping(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCheckoutHandler_WizardProgression(t *testing.T) {
	handler, _ := newCheckoutHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/checkout/contact", testContact())
	require.NoError(t, handler.SubmitContact(c))

	c, rec := NewTestContext(http.MethodPost, "/api/checkout/shipping", shippingStepRequest{
		Address:      testAddress(),
		Method:       checkout.ShippingExpress,
		DiscountCode: "SAVE10",
	})
	require.NoError(t, handler.SubmitShipping(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec.Body.Bytes())
	assert.Equal(t, checkout.StepPayment, state.Step)
	assert.Equal(t, checkout.ShippingExpress, state.ShippingMethod)
	assert.Equal(t, "SAVE10", state.DiscountCode)

	// Answers survive a reload of the wizard.
	c, rec = NewTestContext(http.MethodGet, "/api/checkout", nil)
	require.NoError(t, handler.GetState(c))
	reloaded := decodeState(t, rec.Body.Bytes())
	assert.Equal(t, "Jamie", reloaded.Contact.FirstName)
	assert.Equal(t, "54701", reloaded.Address.PostalCode)
}

func TestCheckoutHandler_GetTotals(t *testing.T) {
	handler, carts := newCheckoutHandler(t)
	seedCheckoutCart(t, carts,
		cart.Item{ID: "p1|M|Black", ProductID: "p1", Name: "Tee", PriceCents: 2800, Quantity: 2},
	)

	c, rec := NewTestContext(http.MethodGet, "/api/checkout/totals", nil)
	require.NoError(t, handler.GetTotals(c))

	var totals checkout.Totals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, int64(5600), totals.SubtotalCents)
	assert.Equal(t, int64(504), totals.TaxCents)
	assert.Equal(t, int64(1000), totals.ShippingCents)
	assert.Equal(t, int64(7104), totals.TotalCents)
	assert.Equal(t, checkout.ShippingStandard, totals.ShippingMethod)
}

func TestCheckoutHandler_GetTotals_QueryCodeOverride(t *testing.T) {
	handler, carts := newCheckoutHandler(t)
	seedCheckoutCart(t, carts,
		cart.Item{ID: "p1|M|Black", ProductID: "p1", Name: "Tee", PriceCents: 2800, Quantity: 2},
	)

	c, rec := NewTestContext(http.MethodGet, "/api/checkout/totals?discount_code=SAVE10", nil)
	require.NoError(t, handler.GetTotals(c))

	var totals checkout.Totals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, int64(560), totals.DiscountCents)
	assert.Equal(t, int64(6544), totals.TotalCents)
	assert.False(t, totals.InvalidCoupon)
}

func TestCheckoutHandler_Submit_RequiresCompletedWizard(t *testing.T) {
	handler, carts := newCheckoutHandler(t)
	seedCheckoutCart(t, carts,
		cart.Item{ID: "p1|M|Black", ProductID: "p1", Name: "Tee", PriceCents: 2800, Quantity: 1},
	)

	c, _ := NewTestContext(http.MethodPost, "/api/checkout/submit", submitRequest{BillingSameAsShipping: true})
	err := handler.Submit(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCheckoutHandler_Submit_EmptyCart(t *testing.T) {
	handler, _ := newCheckoutHandler(t)

	c, _ := NewTestContext(http.MethodPost, "/api/checkout/contact", testContact())
	require.NoError(t, handler.SubmitContact(c))
	c, _ = NewTestContext(http.MethodPost, "/api/checkout/shipping", shippingStepRequest{
		Address: testAddress(),
		Method:  checkout.ShippingStandard,
	})
	require.NoError(t, handler.SubmitShipping(c))

	c, _ = NewTestContext(http.MethodPost, "/api/checkout/submit", submitRequest{BillingSameAsShipping: true})
	err := handler.Submit(c)
	require.Error(t, err)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}
