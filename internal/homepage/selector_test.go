package homepage

import (
	"context"
	"math/rand"
	"testing"

	"github.com/famoussince/storefront/storage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(1)))
}

func TestFillHonorsAllPins(t *testing.T) {
	pins := [SlotCount]string{"a", "b", "c", "d"}
	got := newSelector().Fill(pins, []string{"e", "f", "g"})

	assert.Equal(t, pins, got)
}

func TestFillWithNoProducts(t *testing.T) {
	got := newSelector().Fill([SlotCount]string{}, nil)

	assert.Equal(t, [SlotCount]string{}, got)
}

func TestFillPrefersProductsNotOnBoard(t *testing.T) {
	pins := [SlotCount]string{"a", "", "b", ""}
	available := []string{"a", "b", "c", "d"}

	for i := 0; i < 50; i++ {
		got := newSelectorSeed(int64(i)).Fill(pins, available)
		assert.Equal(t, "a", got[0])
		assert.Equal(t, "b", got[2])
		for _, slot := range []int{1, 3} {
			assert.Contains(t, []string{"c", "d"}, got[slot], "slot %d", slot)
		}
		assert.NotEqual(t, got[1], got[3])
	}
}

func TestFillAvoidsRepeatsWithinWindow(t *testing.T) {
	available := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 50; i++ {
		got := newSelectorSeed(int64(i)).Fill([SlotCount]string{}, available)
		for slot := 1; slot < SlotCount; slot++ {
			assert.NotEqual(t, got[slot-1], got[slot], "seed %d", i)
			if slot >= 2 {
				assert.NotEqual(t, got[slot-2], got[slot], "seed %d", i)
			}
		}
	}
}

func TestFillRepeatsOnlyWhenCatalogTooSmall(t *testing.T) {
	got := newSelector().Fill([SlotCount]string{}, []string{"only"})

	// One product cannot satisfy the repeat window, but every slot is
	// still rendered rather than left blank.
	assert.Equal(t, [SlotCount]string{"only", "only", "only", "only"}, got)
}

func newSelectorSeed(seed int64) *Selector {
	return NewSelector(rand.New(rand.NewSource(seed)))
}

func TestStoreSaveAndReload(t *testing.T) {
	database, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	store := NewStore(database, queries)
	ctx := context.Background()

	// Pins reference real product rows, so seed the catalog first.
	productType, err := queries.CreateProductType(ctx, db.CreateProductTypeParams{
		ID:             "pt-tee",
		Name:           "Classic Tee",
		BasePriceCents: 2800,
		IsActive:       1,
		IsDefault:      1,
	})
	require.NoError(t, err)
	for _, id := range []string{"p1", "p3"} {
		_, err = queries.CreateProduct(ctx, db.CreateProductParams{
			ID:             id,
			Name:           "FAMOUS SINCE " + id,
			Description:    id,
			BasePriceCents: 2800,
			ProductTypeID:  productType.ID,
			IsCustom:       1,
		})
		require.NoError(t, err)
	}

	pins, err := store.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, [SlotCount]string{}, pins)

	want := [SlotCount]string{"p1", "", "p3", ""}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Unpinning a slot clears it.
	want[0] = ""
	require.NoError(t, store.Save(ctx, want))
	got, err = store.Pins(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
