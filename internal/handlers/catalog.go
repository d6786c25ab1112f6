package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
)

// Catalog resolves products and variants for the storefront and builds
// cart lines with server-authoritative prices and flags.
type Catalog struct {
	queries *db.Queries
}

func NewCatalog(queries *db.Queries) *Catalog {
	return &Catalog{queries: queries}
}

// CartItem builds a cart line from the catalog. Price comes from the
// variant when it carries one, falling back to the product. Branded house
// items ship free and are not taxed.
func (cat *Catalog) CartItem(ctx context.Context, productID, size, color string, qty int64) (cart.Item, error) {
	product, err := cat.queries.GetProduct(ctx, productID)
	if err != nil {
		return cart.Item{}, err
	}
	productType, err := cat.queries.GetProductType(ctx, product.ProductTypeID)
	if err != nil {
		return cart.Item{}, fmt.Errorf("failed to load product type: %w", err)
	}

	variants, err := cat.queries.ListVariantsByProduct(ctx, product.ID)
	if err != nil {
		return cart.Item{}, fmt.Errorf("failed to list variants: %w", err)
	}

	var variantID string
	price := product.BasePriceCents
	image := product.FrontImageUrl.String
	found := false
	for _, v := range variants {
		if v.Size == size && v.Color == color {
			variantID = v.ID
			if v.PriceCents > 0 {
				price = v.PriceCents
			}
			if v.FrontImageUrl.Valid {
				image = v.FrontImageUrl.String
			}
			found = true
			break
		}
	}
	if !found {
		return cart.Item{}, fmt.Errorf("no variant %s/%s for product %s: %w", size, color, productID, sql.ErrNoRows)
	}

	return cart.Item{
		ID:           cart.LineID(product.ID, size, color),
		ProductID:    product.ID,
		VariantID:    variantID,
		Name:         product.Name,
		PriceCents:   price,
		Quantity:     qty,
		ImageURL:     image,
		Size:         size,
		Color:        color,
		FreeShipping: productType.IsBrandedItem != 0,
		TaxExempt:    productType.IsBrandedItem != 0,
	}, nil
}

type productResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	PriceCents    int64             `json:"price_cents"`
	ImageURL      string            `json:"image_url,omitempty"`
	ProductTypeID string            `json:"product_type_id"`
	IsCustom      bool              `json:"is_custom"`
	Variants      []variantResponse `json:"variants,omitempty"`
}

type variantResponse struct {
	ID         string `json:"id"`
	Size       string `json:"size"`
	Color      string `json:"color"`
	PriceCents int64  `json:"price_cents"`
	InStock    bool   `json:"in_stock"`
}

func toProductResponse(p db.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PriceCents:    p.BasePriceCents,
		ImageURL:      p.FrontImageUrl.String,
		ProductTypeID: p.ProductTypeID,
		IsCustom:      p.IsCustom != 0,
	}
}

type ProductHandler struct {
	queries *db.Queries
}

func NewProductHandler(queries *db.Queries) *ProductHandler {
	return &ProductHandler{queries: queries}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []db.Product
		err      error
	)
	if typeID := c.QueryParam("type"); typeID != "" {
		products, err = h.queries.ListProductsByType(ctx, typeID)
	} else {
		products, err = h.queries.ListProducts(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.queries.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	resp := toProductResponse(product)
	variants, err := h.queries.ListVariantsByProduct(ctx, product.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list variants")
	}
	for _, v := range variants {
		price := v.PriceCents
		if price == 0 {
			price = product.BasePriceCents
		}
		resp.Variants = append(resp.Variants, variantResponse{
			ID:         v.ID,
			Size:       v.Size,
			Color:      v.Color,
			PriceCents: price,
			InStock:    v.StockQuantity > 0,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
