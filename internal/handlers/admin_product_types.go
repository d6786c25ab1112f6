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

type AdminProductTypeHandler struct {
	database *sql.DB
	queries  *db.Queries
}

func NewAdminProductTypeHandler(database *sql.DB, queries *db.Queries) *AdminProductTypeHandler {
	return &AdminProductTypeHandler{database: database, queries: queries}
}

type modelImageInput struct {
	ImagePath      string `json:"image_path"`
	VerticalOffset int64  `json:"vertical_offset"`
	IsDefaultModel bool   `json:"is_default_model"`
}

type productTypeInput struct {
	Name            string            `json:"name"`
	BasePriceCents  int64             `json:"base_price_cents"`
	IsActive        bool              `json:"is_active"`
	IsDefault       bool              `json:"is_default"`
	IsBrandedItem   bool              `json:"is_branded_item"`
	StripeAccountID string            `json:"stripe_account_id"`
	Sizes           []string          `json:"sizes"`
	Images          []modelImageInput `json:"images"`
}

type productTypeResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	BasePriceCents  int64             `json:"base_price_cents"`
	IsActive        bool              `json:"is_active"`
	IsDefault       bool              `json:"is_default"`
	IsBrandedItem   bool              `json:"is_branded_item"`
	StripeAccountID string            `json:"stripe_account_id,omitempty"`
	Sizes           []string          `json:"sizes,omitempty"`
	Images          []modelImageInput `json:"images,omitempty"`
}

func (h *AdminProductTypeHandler) toResponse(ctx context.Context, pt db.ProductType) productTypeResponse {
	resp := productTypeResponse{
		ID:              pt.ID,
		Name:            pt.Name,
		BasePriceCents:  pt.BasePriceCents,
		IsActive:        pt.IsActive != 0,
		IsDefault:       pt.IsDefault != 0,
		IsBrandedItem:   pt.IsBrandedItem != 0,
		StripeAccountID: pt.StripeAccountID.String,
	}
	if sizes, err := h.queries.ListProductSizes(ctx, pt.ID); err == nil {
		for _, s := range sizes {
			resp.Sizes = append(resp.Sizes, s.Size)
		}
	}
	if images, err := h.queries.ListProductTypeImages(ctx, pt.ID); err == nil {
		for _, img := range images {
			resp.Images = append(resp.Images, modelImageInput{
				ImagePath:      img.ImagePath,
				VerticalOffset: img.VerticalOffset,
				IsDefaultModel: img.IsDefaultModel != 0,
			})
		}
	}
	return resp
}

func (h *AdminProductTypeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	types, err := h.queries.ListProductTypes(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list product types")
	}
	out := make([]productTypeResponse, 0, len(types))
	for _, pt := range types {
		out = append(out, h.toResponse(ctx, pt))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductTypeHandler) Create(c echo.Context) error {
	var req productTypeInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ctx := c.Request().Context()
	tx, err := h.database.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product type")
	}
	defer tx.Rollback()

	qtx := h.queries.WithTx(tx)
	pt, err := qtx.CreateProductType(ctx, db.CreateProductTypeParams{
		ID:              ulid.Make().String(),
		Name:            req.Name,
		BasePriceCents:  req.BasePriceCents,
		IsActive:        boolToInt(req.IsActive),
		IsDefault:       boolToInt(req.IsDefault),
		IsBrandedItem:   boolToInt(req.IsBrandedItem),
		StripeAccountID: sql.NullString{String: req.StripeAccountID, Valid: req.StripeAccountID != ""},
	})
	if err != nil {
		slog.Error("failed to create product type", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product type")
	}

	if err := reconcileSizes(ctx, qtx, pt.ID, req.Sizes); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save sizes")
	}
	if err := reconcileImages(ctx, qtx, pt.ID, req.Images); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save images")
	}

	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product type")
	}
	return c.JSON(http.StatusCreated, h.toResponse(ctx, pt))
}

func (h *AdminProductTypeHandler) Update(c echo.Context) error {
	var req productTypeInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.queries.GetProductType(ctx, id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product type not found")
	}

	tx, err := h.database.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product type")
	}
	defer tx.Rollback()

	qtx := h.queries.WithTx(tx)
	pt, err := qtx.UpdateProductType(ctx, db.UpdateProductTypeParams{
		Name:            req.Name,
		BasePriceCents:  req.BasePriceCents,
		IsActive:        boolToInt(req.IsActive),
		IsDefault:       boolToInt(req.IsDefault),
		IsBrandedItem:   boolToInt(req.IsBrandedItem),
		StripeAccountID: sql.NullString{String: req.StripeAccountID, Valid: req.StripeAccountID != ""},
		ID:              id,
	})
	if err != nil {
		slog.Error("failed to update product type", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product type")
	}

	if err := reconcileSizes(ctx, qtx, id, req.Sizes); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save sizes")
	}
	if err := reconcileImages(ctx, qtx, id, req.Images); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save images")
	}

	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product type")
	}
	return c.JSON(http.StatusOK, h.toResponse(ctx, pt))
}

// reconcileSizes diffs the desired size list against the stored one,
// keeping rows that match, inserting missing ones in the given order and
// deleting the rest.
func reconcileSizes(ctx context.Context, qtx *db.Queries, typeID string, desired []string) error {
	existing, err := qtx.ListProductSizes(ctx, typeID)
	if err != nil {
		return err
	}
	current := make(map[string]db.ProductSize, len(existing))
	for _, s := range existing {
		current[s.Size] = s
	}

	wanted := make(map[string]bool, len(desired))
	for order, size := range desired {
		wanted[size] = true
		if _, ok := current[size]; ok {
			continue
		}
		if _, err := qtx.CreateProductSize(ctx, db.CreateProductSizeParams{
			ID:            ulid.Make().String(),
			ProductTypeID: typeID,
			Size:          size,
			SizeOrder:     int64(order),
		}); err != nil {
			return err
		}
	}
	for size, row := range current {
		if !wanted[size] {
			if err := qtx.DeleteProductSize(ctx, row.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func reconcileImages(ctx context.Context, qtx *db.Queries, typeID string, desired []modelImageInput) error {
	existing, err := qtx.ListProductTypeImages(ctx, typeID)
	if err != nil {
		return err
	}
	current := make(map[string]db.ProductTypeImage, len(existing))
	for _, img := range existing {
		current[img.ImagePath] = img
	}

	wanted := make(map[string]bool, len(desired))
	for _, img := range desired {
		wanted[img.ImagePath] = true
		if have, ok := current[img.ImagePath]; ok {
			if have.VerticalOffset == img.VerticalOffset && (have.IsDefaultModel != 0) == img.IsDefaultModel {
				continue
			}
			if err := qtx.DeleteProductTypeImage(ctx, have.ID); err != nil {
				return err
			}
		}
		if _, err := qtx.CreateProductTypeImage(ctx, db.CreateProductTypeImageParams{
			ID:             ulid.Make().String(),
			ProductTypeID:  typeID,
			ImagePath:      img.ImagePath,
			VerticalOffset: img.VerticalOffset,
			IsDefaultModel: boolToInt(img.IsDefaultModel),
		}); err != nil {
			return err
		}
	}
	for path, row := range current {
		if !wanted[path] {
			if err := qtx.DeleteProductTypeImage(ctx, row.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *AdminProductTypeHandler) Delete(c echo.Context) error {
	if err := h.queries.DeleteProductType(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product type")
	}
	return c.NoContent(http.StatusNoContent)
}
