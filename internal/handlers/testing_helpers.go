package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/famoussince/storefront/storage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// NewTestDB creates a test database with migrations applied
func NewTestDB() (*sql.DB, *db.Queries, func()) {
	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return database, queries, cleanup
}

// fixedSessions resolves every request to the same cart session id.
type fixedSessions struct {
	id string
}

func (s fixedSessions) CartID(echo.Context) (string, error) {
	return s.id, nil
}

// CreateTestProductType creates an active default t-shirt type with S/M/L sizes
func CreateTestProductType(queries *db.Queries) (db.ProductType, error) {
	ctx := context.Background()

	pt, err := queries.CreateProductType(ctx, db.CreateProductTypeParams{
		ID:             ulid.Make().String(),
		Name:           "Classic Tee",
		BasePriceCents: 2800,
		IsActive:       1,
		IsDefault:      1,
	})
	if err != nil {
		return pt, err
	}

	for i, size := range []string{"S", "M", "L"} {
		_, err := queries.CreateProductSize(ctx, db.CreateProductSizeParams{
			ID:            ulid.Make().String(),
			ProductTypeID: pt.ID,
			Size:          size,
			SizeOrder:     int64(i),
		})
		if err != nil {
			return pt, err
		}
	}

	return pt, nil
}

// CreateTestProduct creates a product of the given type with one variant per size
func CreateTestProduct(queries *db.Queries, productTypeID, name string, priceCents int64) (db.Product, error) {
	ctx := context.Background()

	product, err := queries.CreateProduct(ctx, db.CreateProductParams{
		ID:             ulid.Make().String(),
		Name:           name,
		Description:    name,
		BasePriceCents: priceCents,
		ProductTypeID:  productTypeID,
	})
	if err != nil {
		return product, err
	}

	for _, size := range []string{"S", "M", "L"} {
		_, err := queries.CreateVariant(ctx, db.CreateVariantParams{
			ID:            ulid.Make().String(),
			ProductID:     product.ID,
			Size:          size,
			Color:         "Black",
			PriceCents:    priceCents,
			StockQuantity: 25,
		})
		if err != nil {
			return product, err
		}
	}

	return product, nil
}
