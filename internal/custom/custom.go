// Package custom turns a shopper's "famous since" phrase into a sellable
// product: sanitize, screen against the forbidden word list, render a
// mockup, upload it, and create the product with a variant per size.
package custom

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/famoussince/storefront/internal/mockup"
	"github.com/famoussince/storefront/internal/upload"
	"github.com/famoussince/storefront/storage/db"
	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyPhrase   = errors.New("custom: phrase is empty after sanitizing")
	ErrForbiddenWord = errors.New("custom: phrase contains a forbidden word")
	ErrDesignExists  = errors.New("custom: a product with this description already exists")
)

// Variants created for a new design share one color and starting stock.
const (
	defaultColor = "Black"
	defaultStock = 100
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Sanitize trims the phrase and strips everything except word characters
// and spaces, collapsing interior runs of whitespace.
func Sanitize(phrase string) string {
	cleaned := nonWord.ReplaceAllString(phrase, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Screen rejects a phrase when any of its uppercased tokens matches the
// forbidden word list.
func Screen(phrase string, forbidden []string) error {
	blocked := make(map[string]bool, len(forbidden))
	for _, w := range forbidden {
		blocked[strings.ToUpper(strings.TrimSpace(w))] = true
	}
	for _, token := range strings.Fields(strings.ToUpper(phrase)) {
		if blocked[token] {
			return ErrForbiddenWord
		}
	}
	return nil
}

// Pipeline builds products for custom designs.
type Pipeline struct {
	database *sql.DB
	queries  *db.Queries
	renderer *mockup.Renderer
	uploader upload.Uploader
}

func NewPipeline(database *sql.DB, queries *db.Queries, renderer *mockup.Renderer, uploader upload.Uploader) *Pipeline {
	return &Pipeline{
		database: database,
		queries:  queries,
		renderer: renderer,
		uploader: uploader,
	}
}

// Result describes the product the shopper will buy, whether it already
// existed or was just created.
type Result struct {
	Product  db.Product
	Existing bool
}

// CreateOrGet resolves a sanitized phrase to a product. An existing
// design is reused outright. A new one is rendered against the default
// model image, uploaded, and inserted together with one variant per size
// of the product type, in a single transaction. Two shoppers racing the
// same phrase both pass the existence check at most once; the loser of
// the insert race gets ErrDesignExists from the unique constraint.
func (p *Pipeline) CreateOrGet(ctx context.Context, phrase string, template *mockup.Template, priceCents int64) (*Result, error) {
	description := Sanitize(phrase)
	if description == "" {
		return nil, ErrEmptyPhrase
	}

	exceptions, err := p.queries.ListExceptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exceptions: %w", err)
	}
	words := make([]string, 0, len(exceptions))
	for _, e := range exceptions {
		words = append(words, e.Word)
	}
	if err := Screen(description, words); err != nil {
		return nil, err
	}

	existing, err := p.queries.GetCustomProductByDescription(ctx, description)
	if err == nil {
		return &Result{Product: existing, Existing: true}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check for existing design: %w", err)
	}

	productType, err := p.queries.GetDefaultProductType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default product type: %w", err)
	}
	sizes, err := p.queries.ListProductSizes(ctx, productType.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}

	png, err := p.renderer.Render(template,
		mockup.Overlay{Text: "FAMOUS SINCE", XPercent: 0.5, Y: 120, MaxWidth: 260},
		mockup.Overlay{Text: description, XPercent: 0.5, Y: 200, MaxWidth: 260},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render mockup: %w", err)
	}

	imageURL, err := p.uploader.Upload(ctx, "custom-designs", ulid.Make().String(), bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("failed to upload mockup: %w", err)
	}

	tx, err := p.database.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := p.queries.WithTx(tx)
	product, err := qtx.CreateProduct(ctx, db.CreateProductParams{
		ID:             ulid.Make().String(),
		Name:           "FAMOUS SINCE " + description,
		Description:    description,
		BasePriceCents: priceCents,
		FrontImageUrl:  sql.NullString{String: imageURL, Valid: true},
		ProductTypeID:  productType.ID,
		IsCustom:       1,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDesignExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	for _, size := range sizes {
		_, err := qtx.CreateVariant(ctx, db.CreateVariantParams{
			ID:            ulid.Make().String(),
			ProductID:     product.ID,
			Size:          size.Size,
			Color:         defaultColor,
			PriceCents:    priceCents,
			StockQuantity: defaultStock,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create variant %s: %w", size.Size, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDesignExists
		}
		return nil, fmt.Errorf("failed to commit design: %w", err)
	}

	return &Result{Product: product}, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
