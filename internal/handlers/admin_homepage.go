package handlers

import (
	"net/http"

	"github.com/famoussince/storefront/internal/homepage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
)

// AdminHomepageHandler edits the four slot pins.
type AdminHomepageHandler struct {
	store   *homepage.Store
	queries *db.Queries
}

func NewAdminHomepageHandler(store *homepage.Store, queries *db.Queries) *AdminHomepageHandler {
	return &AdminHomepageHandler{store: store, queries: queries}
}

type slotAssignment struct {
	Position  int    `json:"position"`
	ProductID string `json:"product_id"`
}

func (h *AdminHomepageHandler) Get(c echo.Context) error {
	pins, err := h.store.Pins(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load homepage slots")
	}

	out := make([]slotAssignment, homepage.SlotCount)
	for i, pin := range pins {
		out[i] = slotAssignment{Position: i, ProductID: pin}
	}
	return c.JSON(http.StatusOK, out)
}

type saveSlotsRequest struct {
	Slots []slotAssignment `json:"slots"`
}

// Save pins the submitted slots; empty product ids mark a slot random.
// Pinned products must exist.
func (h *AdminHomepageHandler) Save(c echo.Context) error {
	var req saveSlotsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	var pins [homepage.SlotCount]string
	for _, slot := range req.Slots {
		if slot.Position < 0 || slot.Position >= homepage.SlotCount {
			return echo.NewHTTPError(http.StatusBadRequest, "position out of range")
		}
		if slot.ProductID != "" {
			if _, err := h.queries.GetProduct(ctx, slot.ProductID); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "pinned product does not exist")
			}
		}
		pins[slot.Position] = slot.ProductID
	}

	if err := h.store.Save(ctx, pins); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save homepage slots")
	}
	return h.Get(c)
}
