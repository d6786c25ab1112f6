package handlers

import (
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/homepage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
)

// HomepageHandler resolves the four featured tiles for the storefront.
type HomepageHandler struct {
	store    *homepage.Store
	selector *homepage.Selector
	queries  *db.Queries
}

func NewHomepageHandler(store *homepage.Store, selector *homepage.Selector, queries *db.Queries) *HomepageHandler {
	return &HomepageHandler{store: store, selector: selector, queries: queries}
}

type homepageSlot struct {
	Position int              `json:"position"`
	Pinned   bool             `json:"pinned"`
	Product  *productResponse `json:"product"`
}

// Get fills the board: pinned slots resolve directly, the rest draw
// randomly from the catalog.
func (h *HomepageHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	pins, err := h.store.Pins(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load homepage")
	}

	products, err := h.queries.ListProducts(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}
	byID := make(map[string]db.Product, len(products))
	available := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		available = append(available, p.ID)
	}

	filled := h.selector.Fill(pins, available)

	slots := make([]homepageSlot, homepage.SlotCount)
	for i, id := range filled {
		slots[i] = homepageSlot{Position: i, Pinned: pins[i] != ""}
		if product, ok := byID[id]; ok {
			resp := toProductResponse(product)
			slots[i].Product = &resp
		} else if id != "" {
			slog.Warn("homepage slot references missing product", "product_id", id, "position", i)
		}
	}
	return c.JSON(http.StatusOK, slots)
}
