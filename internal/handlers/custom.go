package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/internal/custom"
	"github.com/famoussince/storefront/internal/mockup"
	"github.com/famoussince/storefront/internal/textfit"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
)

type CustomHandler struct {
	pipeline *custom.Pipeline
	renderer *mockup.Renderer
	measurer *textfit.FontMeasurer
	queries  *db.Queries
	imageDir string
}

func NewCustomHandler(pipeline *custom.Pipeline, renderer *mockup.Renderer, measurer *textfit.FontMeasurer, queries *db.Queries, imageDir string) *CustomHandler {
	return &CustomHandler{
		pipeline: pipeline,
		renderer: renderer,
		measurer: measurer,
		queries:  queries,
		imageDir: imageDir,
	}
}

// template loads the default model image for the default product type.
func (h *CustomHandler) template(c echo.Context) (*mockup.Template, error) {
	ctx := c.Request().Context()

	productType, err := h.queries.GetDefaultProductType(ctx)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "No default product type configured")
	}
	model, err := h.queries.GetDefaultModelImage(ctx, productType.ID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "No model image configured")
	}

	tmpl, err := mockup.LoadTemplate(h.imageDir+"/"+model.ImagePath, int(model.VerticalOffset))
	if err != nil {
		slog.Error("failed to load model image", "error", err, "path", model.ImagePath)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load model image")
	}
	return tmpl, nil
}

type previewRequest struct {
	Phrase   string  `json:"phrase"`
	XPercent float64 `json:"x_percent"`
	Y        int     `json:"y"`
	MaxWidth float64 `json:"max_width"`
}

// Preview renders the shopper's phrase onto the model shirt and streams
// the PNG back.
func (h *CustomHandler) Preview(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	phrase := custom.Sanitize(req.Phrase)
	if phrase == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Phrase is empty")
	}
	if req.XPercent <= 0 {
		req.XPercent = 0.5
	}
	if req.Y <= 0 {
		req.Y = 200
	}
	if req.MaxWidth <= 0 {
		req.MaxWidth = 260
	}

	tmpl, err := h.template(c)
	if err != nil {
		return err
	}

	png, err := h.renderer.Render(tmpl,
		mockup.Overlay{Text: "FAMOUS SINCE", XPercent: 0.5, Y: req.Y - 80, MaxWidth: req.MaxWidth},
		mockup.Overlay{Text: phrase, XPercent: req.XPercent, Y: req.Y, MaxWidth: req.MaxWidth},
	)
	if err != nil {
		slog.Error("failed to render preview", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render preview")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

type fitRequest struct {
	Text     string  `json:"text"`
	MaxWidth float64 `json:"max_width"`
}

// Fit exposes the text sizing math so the browser preview can mirror the
// server's layout.
func (h *CustomHandler) Fit(c echo.Context) error {
	var req fitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.MaxWidth <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "max_width must be positive")
	}

	result := textfit.Fit(h.measurer, req.Text, req.MaxWidth)
	return c.JSON(http.StatusOK, result)
}

type createDesignRequest struct {
	Phrase     string `json:"phrase"`
	PriceCents int64  `json:"price_cents"`
}

// CreateDesign runs the full pipeline and returns the product to add to
// the cart, reusing an identical earlier design when one exists.
func (h *CustomHandler) CreateDesign(c echo.Context) error {
	var req createDesignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	tmpl, herr := h.template(c)
	if herr != nil {
		return herr
	}

	price := req.PriceCents
	if price <= 0 {
		productType, err := h.queries.GetDefaultProductType(c.Request().Context())
		if err == nil {
			price = productType.BasePriceCents
		}
	}

	result, err := h.pipeline.CreateOrGet(c.Request().Context(), req.Phrase, tmpl, price)
	switch {
	case errors.Is(err, custom.ErrEmptyPhrase):
		return echo.NewHTTPError(http.StatusBadRequest, "Phrase is empty")
	case errors.Is(err, custom.ErrForbiddenWord):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Phrase contains a forbidden word")
	case errors.Is(err, custom.ErrDesignExists):
		return echo.NewHTTPError(http.StatusConflict, "A product with this description already exists")
	case err != nil:
		slog.Error("failed to create custom design", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create design")
	}

	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}
	return c.JSON(status, map[string]any{
		"product":  toProductResponse(result.Product),
		"existing": result.Existing,
	})
}
