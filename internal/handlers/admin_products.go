package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// AdminProductHandler is the product CRUD surface, including the size
// by color variant matrix.
type AdminProductHandler struct {
	database *sql.DB
	queries  *db.Queries
}

func NewAdminProductHandler(database *sql.DB, queries *db.Queries) *AdminProductHandler {
	return &AdminProductHandler{database: database, queries: queries}
}

type variantInput struct {
	Size          string `json:"size"`
	Color         string `json:"color"`
	PriceCents    int64  `json:"price_cents"`
	StockQuantity int64  `json:"stock_quantity"`
}

type productInput struct {
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	BasePriceCents    int64          `json:"base_price_cents"`
	FrontImageURL     string         `json:"front_image_url"`
	BackImageURL      string         `json:"back_image_url"`
	ApplicationMethod string         `json:"application_method"`
	ProductTypeID     string         `json:"product_type_id"`
	Variants          []variantInput `json:"variants"`
}

func (h *AdminProductHandler) List(c echo.Context) error {
	products, err := h.queries.ListProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) Create(c echo.Context) error {
	var req productInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.ProductTypeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and product_type_id are required")
	}

	ctx := c.Request().Context()
	tx, err := h.database.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}
	defer tx.Rollback()

	qtx := h.queries.WithTx(tx)
	product, err := qtx.CreateProduct(ctx, db.CreateProductParams{
		ID:                ulid.Make().String(),
		Name:              req.Name,
		Description:       req.Description,
		BasePriceCents:    req.BasePriceCents,
		FrontImageUrl:     sql.NullString{String: req.FrontImageURL, Valid: req.FrontImageURL != ""},
		BackImageUrl:      sql.NullString{String: req.BackImageURL, Valid: req.BackImageURL != ""},
		ApplicationMethod: sql.NullString{String: req.ApplicationMethod, Valid: req.ApplicationMethod != ""},
		ProductTypeID:     req.ProductTypeID,
	})
	if err != nil {
		slog.Error("failed to create product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}

	for _, v := range req.Variants {
		if _, err := qtx.CreateVariant(ctx, db.CreateVariantParams{
			ID:            ulid.Make().String(),
			ProductID:     product.ID,
			Size:          v.Size,
			Color:         v.Color,
			PriceCents:    v.PriceCents,
			StockQuantity: v.StockQuantity,
		}); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create variant")
		}
	}

	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update writes product fields and reconciles the variant matrix against
// the submitted set: update matching size/color pairs, insert new ones,
// delete the rest. No delete-all-reinsert.
func (h *AdminProductHandler) Update(c echo.Context) error {
	var req productInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	productID := c.Param("id")
	if _, err := h.queries.GetProduct(ctx, productID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	tx, err := h.database.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}
	defer tx.Rollback()

	qtx := h.queries.WithTx(tx)
	product, err := qtx.UpdateProduct(ctx, db.UpdateProductParams{
		Name:              req.Name,
		Description:       req.Description,
		BasePriceCents:    req.BasePriceCents,
		FrontImageUrl:     sql.NullString{String: req.FrontImageURL, Valid: req.FrontImageURL != ""},
		BackImageUrl:      sql.NullString{String: req.BackImageURL, Valid: req.BackImageURL != ""},
		ApplicationMethod: sql.NullString{String: req.ApplicationMethod, Valid: req.ApplicationMethod != ""},
		ProductTypeID:     req.ProductTypeID,
		ID:                productID,
	})
	if err != nil {
		slog.Error("failed to update product", "error", err, "product_id", productID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}

	if err := reconcileVariants(ctx, qtx, productID, req.Variants); err != nil {
		slog.Error("failed to reconcile variants", "error", err, "product_id", productID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update variants")
	}

	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func reconcileVariants(ctx context.Context, qtx *db.Queries, productID string, desired []variantInput) error {
	existing, err := qtx.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return err
	}

	type key struct{ size, color string }
	current := make(map[key]db.ProductVariant, len(existing))
	for _, v := range existing {
		current[key{v.Size, v.Color}] = v
	}

	wanted := make(map[key]bool, len(desired))
	for _, v := range desired {
		k := key{v.Size, v.Color}
		wanted[k] = true
		if have, ok := current[k]; ok {
			if have.PriceCents == v.PriceCents && have.StockQuantity == v.StockQuantity {
				continue
			}
			if _, err := qtx.UpdateVariant(ctx, db.UpdateVariantParams{
				PriceCents:    v.PriceCents,
				StockQuantity: v.StockQuantity,
				FrontImageUrl: have.FrontImageUrl,
				BackImageUrl:  have.BackImageUrl,
				ID:            have.ID,
			}); err != nil {
				return err
			}
			continue
		}
		if _, err := qtx.CreateVariant(ctx, db.CreateVariantParams{
			ID:            ulid.Make().String(),
			ProductID:     productID,
			Size:          v.Size,
			Color:         v.Color,
			PriceCents:    v.PriceCents,
			StockQuantity: v.StockQuantity,
		}); err != nil {
			return err
		}
	}

	for k, v := range current {
		if !wanted[k] {
			if err := qtx.DeleteVariant(ctx, v.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *AdminProductHandler) Delete(c echo.Context) error {
	if err := h.queries.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}
