package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/checkout"
	"github.com/famoussince/storefront/internal/shipping"
	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

type CheckoutHandler struct {
	carts    *cart.Store
	flows    *checkout.FlowStore
	sessions Sessions
	verifier *shipping.Verifier
	stripe   *stripe.Client
	queries  *db.Queries
}

func NewCheckoutHandler(carts *cart.Store, flows *checkout.FlowStore, sessions Sessions, verifier *shipping.Verifier, stripeClient *stripe.Client, queries *db.Queries) *CheckoutHandler {
	return &CheckoutHandler{
		carts:    carts,
		flows:    flows,
		sessions: sessions,
		verifier: verifier,
		stripe:   stripeClient,
		queries:  queries,
	}
}

func (h *CheckoutHandler) session(c echo.Context) (string, error) {
	sessionID, err := h.sessions.CartID(c)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve session")
	}
	return sessionID, nil
}

func (h *CheckoutHandler) GetState(c echo.Context) error {
	sessionID, err := h.session(c)
	if err != nil {
		return err
	}
	state, err := h.flows.Load(c.Request().Context(), sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}
	return c.JSON(http.StatusOK, state)
}

func validationResponse(c echo.Context, err error) error {
	var vErr *checkout.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":          "missing required fields",
			"missing_fields": vErr.Fields,
		})
	}
	if errors.Is(err, checkout.ErrStepLocked) {
		return echo.NewHTTPError(http.StatusConflict, "Complete earlier steps first")
	}
	return err
}

// SubmitContact is step one of the wizard.
func (h *CheckoutHandler) SubmitContact(c echo.Context) error {
	var contact checkout.Contact
	if err := c.Bind(&contact); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sessionID, herr := h.session(c)
	if herr != nil {
		return herr
	}
	ctx := c.Request().Context()
	state, err := h.flows.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}

	if err := state.SubmitContact(contact); err != nil {
		return validationResponse(c, err)
	}
	if err := h.flows.Save(ctx, sessionID, state); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save checkout")
	}
	return c.JSON(http.StatusOK, state)
}

type shippingStepRequest struct {
	Address      checkout.Address `json:"address"`
	Method       string           `json:"method"`
	DiscountCode string           `json:"discount_code"`
}

// SubmitShipping is step two. The address is verified against the
// carrier when a verifier is configured; verification failure is advisory
// and never blocks checkout.
func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	var req shippingStepRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sessionID, herr := h.session(c)
	if herr != nil {
		return herr
	}
	ctx := c.Request().Context()
	state, err := h.flows.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}

	if h.verifier != nil {
		if normalized, err := h.verifier.Verify(req.Address); err == nil {
			req.Address = normalized
		} else {
			slog.Warn("address verification failed", "error", err)
		}
	}

	if err := state.SubmitShipping(req.Address, req.Method); err != nil {
		return validationResponse(c, err)
	}
	state.DiscountCode = req.DiscountCode

	if err := h.flows.Save(ctx, sessionID, state); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save checkout")
	}
	return c.JSON(http.StatusOK, state)
}

// GetTotals prices the cart against the current wizard selections.
func (h *CheckoutHandler) GetTotals(c echo.Context) error {
	sessionID, herr := h.session(c)
	if herr != nil {
		return herr
	}
	ctx := c.Request().Context()

	ct, err := h.carts.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}
	state, err := h.flows.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}

	method := state.ShippingMethod
	if method == "" {
		method = checkout.ShippingStandard
	}
	code := c.QueryParam("discount_code")
	if code == "" {
		code = state.DiscountCode
	}
	return c.JSON(http.StatusOK, checkout.Calculate(ct, method, code))
}

type submitRequest struct {
	BillingAddress        checkout.Address `json:"billing_address"`
	BillingSameAsShipping bool             `json:"billing_same_as_shipping"`
}

type submitResponse struct {
	OrderID      string `json:"order_id"`
	ClientSecret string `json:"client_secret"`
}

// Submit is step three: the order row is written with pending payment and
// a payment intent is opened for the client to confirm. Confirmation
// failures leave the shopper on this step; the webhook settles the final
// payment status.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sessionID, herr := h.session(c)
	if herr != nil {
		return herr
	}
	ctx := c.Request().Context()

	state, err := h.flows.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}
	if !state.ReadyForPayment() {
		return echo.NewHTTPError(http.StatusConflict, "Complete earlier steps first")
	}

	ct, err := h.carts.Load(ctx, sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}
	if len(ct.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}

	billing := req.BillingAddress
	if req.BillingSameAsShipping {
		billing = state.Address
	}

	totals := checkout.Calculate(ct, state.ShippingMethod, state.DiscountCode)

	destination, err := h.destinationAccount(c, ct)
	if err != nil {
		return err
	}

	intent, err := h.stripe.CreatePaymentIntent(totals.TotalCents, "usd", "", destination)
	if err != nil {
		slog.Error("failed to create payment intent", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create payment intent")
	}

	orderID := ulid.Make().String()
	order, err := h.queries.CreateOrder(ctx, db.CreateOrderParams{
		ID:                    orderID,
		CustomerEmail:         state.Contact.Email,
		CustomerName:          state.Contact.FirstName + " " + state.Contact.LastName,
		CustomerPhone:         sql.NullString{String: state.Contact.Phone, Valid: state.Contact.Phone != ""},
		ShippingAddressLine1:  state.Address.Line1,
		ShippingAddressLine2:  sql.NullString{String: state.Address.Line2, Valid: state.Address.Line2 != ""},
		ShippingCity:          state.Address.City,
		ShippingState:         state.Address.State,
		ShippingPostalCode:    state.Address.PostalCode,
		ShippingCountry:       state.Address.Country,
		BillingAddressLine1:   billing.Line1,
		BillingAddressLine2:   sql.NullString{String: billing.Line2, Valid: billing.Line2 != ""},
		BillingCity:           billing.City,
		BillingState:          billing.State,
		BillingPostalCode:     billing.PostalCode,
		BillingCountry:        billing.Country,
		ShippingMethod:        totals.ShippingMethod,
		SubtotalCents:         totals.SubtotalCents,
		TaxCents:              totals.TaxCents,
		ShippingCents:         totals.ShippingCents,
		DiscountCents:         totals.DiscountCents,
		TotalCents:            totals.TotalCents,
		DiscountCode:          sql.NullString{String: totals.DiscountCode, Valid: totals.DiscountCode != ""},
		StripePaymentIntentID: sql.NullString{String: intent.ID, Valid: true},
		Status:                "pending",
		PaymentStatus:         "pending",
		CartSessionID:         sql.NullString{String: sessionID, Valid: true},
	})
	if err != nil {
		slog.Error("failed to create order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	for _, item := range ct.Items {
		_, err := h.queries.CreateOrderItem(ctx, db.CreateOrderItemParams{
			ID:          ulid.Make().String(),
			OrderID:     order.ID,
			ProductID:   sql.NullString{String: item.ProductID, Valid: item.ProductID != ""},
			VariantID:   sql.NullString{String: item.VariantID, Valid: item.VariantID != ""},
			ProductName: item.Name,
			Size:        sql.NullString{String: item.Size, Valid: item.Size != ""},
			Color:       sql.NullString{String: item.Color, Valid: item.Color != ""},
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
			TotalCents:  item.PriceCents * item.Quantity,
		})
		if err != nil {
			slog.Error("failed to create order item", "error", err, "order_id", order.ID)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order")
		}
	}

	// The cart survives until payment succeeds; the order carries the
	// session id so the webhook can clear it when the intent settles.
	// Checkout state is done though.
	if err := h.flows.Clear(ctx, sessionID); err != nil {
		slog.Warn("failed to clear checkout state", "error", err)
	}

	return c.JSON(http.StatusOK, submitResponse{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
	})
}

// destinationAccount routes funds for the order. Each product resolves a
// payment account via its product type; mixed-account carts are refused.
func (h *CheckoutHandler) destinationAccount(c echo.Context, ct *cart.Cart) (string, error) {
	ctx := c.Request().Context()

	destination := ""
	for _, item := range ct.Items {
		product, err := h.queries.GetProduct(ctx, item.ProductID)
		if err != nil {
			continue
		}
		productType, err := h.queries.GetProductType(ctx, product.ProductTypeID)
		if err != nil || !productType.StripeAccountID.Valid {
			continue
		}
		account := productType.StripeAccountID.String
		if destination == "" {
			destination = account
		} else if destination != account {
			return "", echo.NewHTTPError(http.StatusBadRequest, "Cart mixes products from different sellers")
		}
	}
	return destination, nil
}
