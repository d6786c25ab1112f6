package custom

import (
	"context"
	"database/sql"
	"fmt"
	"image"
	"io"
	"testing"

	"github.com/famoussince/storefront/internal/mockup"
	"github.com/famoussince/storefront/internal/textfit"
	"github.com/famoussince/storefront/storage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  1987  ", "1987"},
		{"O'Brien!", "OBrien"},
		{"hello, world", "hello world"},
		{"tabs\tand   runs", "tabs and runs"},
		{"***", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestScreen(t *testing.T) {
	forbidden := []string{"BADWORD", "worse"}

	assert.NoError(t, Screen("totally fine phrase", forbidden))
	assert.ErrorIs(t, Screen("a badword here", forbidden), ErrForbiddenWord)
	assert.ErrorIs(t, Screen("WORSE", forbidden), ErrForbiddenWord)
	// Substrings do not match whole tokens.
	assert.NoError(t, Screen("badwording", forbidden))
}

type fakeUploader struct {
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, folder, name string, r io.Reader) (string, error) {
	f.calls++
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://img.example.com/%s/%s.png", folder, name), nil
}

func newTestPipeline(t *testing.T) (*Pipeline, *db.Queries, *fakeUploader, func()) {
	t.Helper()

	database, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)

	ctx := context.Background()
	productType, err := queries.CreateProductType(ctx, db.CreateProductTypeParams{
		ID:             "pt-1",
		Name:           "Classic Tee",
		BasePriceCents: 2800,
		IsActive:       1,
		IsDefault:      1,
	})
	require.NoError(t, err)
	for i, size := range []string{"S", "M", "L"} {
		_, err := queries.CreateProductSize(ctx, db.CreateProductSizeParams{
			ID:            fmt.Sprintf("size-%d", i),
			ProductTypeID: productType.ID,
			Size:          size,
			SizeOrder:     int64(i),
		})
		require.NoError(t, err)
	}

	measurer, err := textfit.NewFontMeasurerFromFile("")
	require.NoError(t, err)

	uploads := &fakeUploader{}
	pipeline := NewPipeline(database, queries, mockup.NewRenderer(measurer), uploads)
	return pipeline, queries, uploads, cleanup
}

func testTemplate() *mockup.Template {
	return mockup.NewTemplate(image.NewRGBA(image.Rect(0, 0, 300, 360)), 0)
}

func TestCreateOrGetCreatesProductAndVariants(t *testing.T) {
	pipeline, queries, uploads, cleanup := newTestPipeline(t)
	defer cleanup()
	ctx := context.Background()

	result, err := pipeline.CreateOrGet(ctx, "  The Jensens!  ", testTemplate(), 2800)
	require.NoError(t, err)
	assert.False(t, result.Existing)
	assert.Equal(t, "The Jensens", result.Product.Description)
	assert.Equal(t, int64(1), result.Product.IsCustom)
	assert.Equal(t, 1, uploads.calls)

	variants, err := queries.ListVariantsByProduct(ctx, result.Product.ID)
	require.NoError(t, err)
	require.Len(t, variants, 3)
	for _, v := range variants {
		assert.Equal(t, "Black", v.Color)
		assert.Equal(t, int64(100), v.StockQuantity)
	}
}

func TestCreateOrGetReusesExistingDesign(t *testing.T) {
	pipeline, queries, uploads, cleanup := newTestPipeline(t)
	defer cleanup()
	ctx := context.Background()

	first, err := pipeline.CreateOrGet(ctx, "The Jensens", testTemplate(), 2800)
	require.NoError(t, err)

	second, err := pipeline.CreateOrGet(ctx, "the jensens!!", testTemplate(), 2800)
	require.NoError(t, err)
	// Case differs so the sanitized description differs; exact match only.
	assert.False(t, second.Existing)

	third, err := pipeline.CreateOrGet(ctx, "The Jensens", testTemplate(), 2800)
	require.NoError(t, err)
	assert.True(t, third.Existing)
	assert.Equal(t, first.Product.ID, third.Product.ID)
	// No re-render or re-upload for a reused design.
	assert.Equal(t, 2, uploads.calls)

	count, err := queries.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCreateOrGetRejectsEmptyPhrase(t *testing.T) {
	pipeline, _, _, cleanup := newTestPipeline(t)
	defer cleanup()

	_, err := pipeline.CreateOrGet(context.Background(), "!!!", testTemplate(), 2800)
	assert.ErrorIs(t, err, ErrEmptyPhrase)
}

func TestCreateOrGetRejectsForbiddenWords(t *testing.T) {
	pipeline, queries, uploads, cleanup := newTestPipeline(t)
	defer cleanup()
	ctx := context.Background()

	_, err := queries.CreateException(ctx, db.CreateExceptionParams{ID: "ex-1", Word: "Jensens"})
	require.NoError(t, err)

	_, err = pipeline.CreateOrGet(ctx, "The Jensens", testTemplate(), 2800)
	assert.ErrorIs(t, err, ErrForbiddenWord)
	assert.Zero(t, uploads.calls)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w",
		fmt.Errorf("UNIQUE constraint failed: products.description"))))
	assert.False(t, isUniqueViolation(sql.ErrConnDone))
	assert.False(t, isUniqueViolation(nil))
}
