package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/labstack/echo/v4"
)

// Sessions resolves the shopper's cart session id from the request.
type Sessions interface {
	CartID(c echo.Context) (string, error)
}

type CartHandler struct {
	store    *cart.Store
	sessions Sessions
	catalog  *Catalog
}

func NewCartHandler(store *cart.Store, sessions Sessions, catalog *Catalog) *CartHandler {
	return &CartHandler{store: store, sessions: sessions, catalog: catalog}
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int64  `json:"quantity"`
}

type cartResponse struct {
	Items         []cart.Item `json:"items"`
	SubtotalCents int64       `json:"subtotal_cents"`
	Count         int64       `json:"count"`
}

func (h *CartHandler) respond(c echo.Context, ct *cart.Cart) error {
	items := ct.Items
	if items == nil {
		items = []cart.Item{}
	}
	return c.JSON(http.StatusOK, cartResponse{
		Items:         items,
		SubtotalCents: ct.SubtotalCents(),
		Count:         ct.Count(),
	})
}

func (h *CartHandler) load(c echo.Context) (string, *cart.Cart, error) {
	sessionID, err := h.sessions.CartID(c)
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve session")
	}
	ct, err := h.store.Load(c.Request().Context(), sessionID)
	if err != nil {
		slog.Error("failed to load cart", "error", err, "session_id", sessionID)
		return "", nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cart")
	}
	return sessionID, ct, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	_, ct, err := h.load(c)
	if err != nil {
		return err
	}
	return h.respond(c, ct)
}

// AddItem resolves the product and variant, then merges the line into the
// cart. Repeat adds of the same product, size and color sum quantities.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ProductID == "" || req.Size == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id and size are required")
	}
	if req.Color == "" {
		req.Color = "Black"
	}

	item, err := h.catalog.CartItem(c.Request().Context(), req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Product or variant not found")
		}
		slog.Error("failed to resolve cart item", "error", err, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add to cart")
	}

	sessionID, ct, herr := h.load(c)
	if herr != nil {
		return herr
	}
	ct.Add(item)

	if err := h.store.Save(c.Request().Context(), sessionID, ct); err != nil {
		slog.Error("failed to save cart", "error", err, "session_id", sessionID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cart")
	}
	return h.respond(c, ct)
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// UpdateItem sets a line's quantity; zero or below removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sessionID, ct, herr := h.load(c)
	if herr != nil {
		return herr
	}
	if !ct.UpdateQuantity(c.Param("id"), req.Quantity) {
		return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
	}

	if err := h.store.Save(c.Request().Context(), sessionID, ct); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cart")
	}
	return h.respond(c, ct)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, ct, herr := h.load(c)
	if herr != nil {
		return herr
	}
	if !ct.Remove(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
	}

	if err := h.store.Save(c.Request().Context(), sessionID, ct); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cart")
	}
	return h.respond(c, ct)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, ct, herr := h.load(c)
	if herr != nil {
		return herr
	}
	ct.Clear()

	if err := h.store.Save(c.Request().Context(), sessionID, ct); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cart")
	}
	return h.respond(c, ct)
}
