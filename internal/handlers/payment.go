package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/stripe"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

type PaymentHandler struct {
	stripe        *stripe.Client
	queries       *db.Queries
	carts         *cart.Store
	webhookSecret string
}

func NewPaymentHandler(stripeClient *stripe.Client, queries *db.Queries, carts *cart.Store, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{
		stripe:        stripeClient,
		queries:       queries,
		carts:         carts,
		webhookSecret: webhookSecret,
	}
}

type createPaymentIntentRequest struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	CustomerID string `json:"customer_id,omitempty"`
}

type createPaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be positive")
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	intent, err := h.stripe.CreatePaymentIntent(req.Amount, req.Currency, req.CustomerID, "")
	if err != nil {
		slog.Error("failed to create payment intent", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create payment intent")
	}

	return c.JSON(http.StatusOK, createPaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

type createSubscriptionRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateSubscription starts the hosting subscription: a customer plus an
// incomplete subscription whose first invoice the client confirms.
func (h *PaymentHandler) CreateSubscription(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	customer, err := h.stripe.CreateCustomer(req.Email, req.Name)
	if err != nil {
		slog.Error("failed to create customer", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create customer")
	}

	sub, err := h.stripe.CreateHostingSubscription(customer.ID)
	if err != nil {
		slog.Error("failed to create subscription", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create subscription")
	}

	clientSecret := ""
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		clientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return c.JSON(http.StatusOK, map[string]string{
		"subscription_id": sub.ID,
		"customer_id":     customer.ID,
		"client_secret":   clientSecret,
	})
}

// HandleWebhook consumes payment processor events. Subscription lifecycle
// events are mirrored locally only when they concern the hosting price;
// payment intent events settle order payment status.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body too large")
	}

	var event stripego.Event
	if h.webhookSecret != "" {
		event, err = webhook.ConstructEvent(payload, c.Request().Header.Get("Stripe-Signature"), h.webhookSecret)
		if err != nil {
			slog.Error("webhook signature verification failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid signature")
		}
	} else {
		// Development mode: accept unsigned events.
		if err := json.Unmarshal(payload, &event); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
	}

	ctx := c.Request().Context()

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripego.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
		if !h.isHostingSubscription(&sub) {
			slog.Debug("ignoring subscription event for other price", "subscription_id", sub.ID)
			break
		}
		status := string(sub.Status)
		if event.Type == "customer.subscription.deleted" {
			status = "canceled"
		}
		if err := h.mirrorSubscription(ctx, &sub, status); err != nil {
			slog.Error("failed to mirror subscription", "error", err, "subscription_id", sub.ID)
		}

	case "invoice.payment_succeeded", "invoice.payment_failed":
		var invoice stripego.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
		subID := h.invoiceHostingSubscription(&invoice)
		if subID == "" {
			break
		}
		status := "active"
		if event.Type == "invoice.payment_failed" {
			status = "past_due"
		}
		if err := h.updateSubscriptionStatus(ctx, &invoice, subID, status); err != nil {
			slog.Error("failed to update subscription status", "error", err, "subscription_id", subID)
		}

	case "payment_intent.succeeded":
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
		if err := h.settleOrder(ctx, intent.ID, "paid"); err != nil {
			slog.Error("failed to mark order paid", "error", err, "payment_intent_id", intent.ID)
		}

	case "payment_intent.payment_failed":
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
		if err := h.settleOrder(ctx, intent.ID, "failed"); err != nil {
			slog.Error("failed to mark order failed", "error", err, "payment_intent_id", intent.ID)
		}

	default:
		slog.Debug("unhandled webhook event type", "type", event.Type)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PaymentHandler) isHostingSubscription(sub *stripego.Subscription) bool {
	if sub.Items == nil {
		return false
	}
	for _, item := range sub.Items.Data {
		if item.Price != nil && item.Price.ID == h.stripe.HostingPriceID() {
			return true
		}
	}
	return false
}

func (h *PaymentHandler) invoiceHostingSubscription(invoice *stripego.Invoice) string {
	if invoice.Lines == nil {
		return ""
	}
	for _, line := range invoice.Lines.Data {
		if line.Price != nil && line.Price.ID == h.stripe.HostingPriceID() {
			if invoice.Subscription != nil {
				return invoice.Subscription.ID
			}
		}
	}
	return ""
}

func (h *PaymentHandler) mirrorSubscription(ctx context.Context, sub *stripego.Subscription, status string) error {
	customerID := ""
	if sub.Customer != nil {
		customerID = sub.Customer.ID
	}
	_, err := h.queries.UpsertSiteSubscription(ctx, db.UpsertSiteSubscriptionParams{
		ID:                   ulid.Make().String(),
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     sql.NullString{String: customerID, Valid: customerID != ""},
		PriceID:              h.stripe.HostingPriceID(),
		Status:               status,
		CurrentPeriodEnd:     sql.NullTime{Time: time.Unix(sub.CurrentPeriodEnd, 0), Valid: sub.CurrentPeriodEnd > 0},
	})
	return err
}

func (h *PaymentHandler) updateSubscriptionStatus(ctx context.Context, invoice *stripego.Invoice, subID, status string) error {
	customerID := ""
	if invoice.Customer != nil {
		customerID = invoice.Customer.ID
	}
	_, err := h.queries.UpsertSiteSubscription(ctx, db.UpsertSiteSubscriptionParams{
		ID:                   ulid.Make().String(),
		StripeSubscriptionID: subID,
		StripeCustomerID:     sql.NullString{String: customerID, Valid: customerID != ""},
		PriceID:              h.stripe.HostingPriceID(),
		Status:               status,
		CurrentPeriodEnd:     sql.NullTime{Time: time.Unix(invoice.PeriodEnd, 0), Valid: invoice.PeriodEnd > 0},
	})
	return err
}

func (h *PaymentHandler) settleOrder(ctx context.Context, intentID, paymentStatus string) error {
	intent := sql.NullString{String: intentID, Valid: true}
	if err := h.queries.UpdateOrderPaymentStatusByIntent(ctx, db.UpdateOrderPaymentStatusByIntentParams{
		PaymentStatus:         paymentStatus,
		StripePaymentIntentID: intent,
	}); err != nil {
		return err
	}
	if paymentStatus != "paid" {
		return nil
	}

	// The shopper's cart is done once payment lands.
	order, err := h.queries.GetOrderByPaymentIntent(ctx, intent)
	if err != nil || !order.CartSessionID.Valid {
		return nil
	}
	if err := h.carts.Delete(ctx, order.CartSessionID.String); err != nil {
		slog.Warn("failed to clear cart after payment", "error", err, "order_id", order.ID)
	}
	return nil
}
