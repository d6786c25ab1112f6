package checkout

import (
	"context"
	"testing"

	"github.com/famoussince/storefront/storage"
	"github.com/famoussince/storefront/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() Contact {
	return Contact{Email: "ana@example.com", FirstName: "Ana", LastName: "Reyes"}
}

func validAddress() Address {
	return Address{
		Line1:      "100 Main St",
		City:       "Duluth",
		State:      "MN",
		PostalCode: "55802",
		Country:    "US",
	}
}

func TestWizardAdvancesInOrder(t *testing.T) {
	s := NewState()
	assert.Equal(t, StepContact, s.Step)
	assert.False(t, s.ReadyForPayment())

	require.NoError(t, s.SubmitContact(validContact()))
	assert.Equal(t, StepShipping, s.Step)

	require.NoError(t, s.SubmitShipping(validAddress(), ShippingStandard))
	assert.Equal(t, StepPayment, s.Step)
	assert.True(t, s.ReadyForPayment())
}

func TestWizardRefusesSkippingAhead(t *testing.T) {
	s := NewState()

	err := s.SubmitShipping(validAddress(), ShippingStandard)
	assert.ErrorIs(t, err, ErrStepLocked)

	assert.ErrorIs(t, s.GoTo(StepPayment), ErrStepLocked)
}

func TestWizardBackNavigationKeepsAnswers(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SubmitContact(validContact()))
	require.NoError(t, s.SubmitShipping(validAddress(), ShippingExpress))

	require.NoError(t, s.GoTo(StepContact))
	assert.Equal(t, "ana@example.com", s.Contact.Email)
	assert.Equal(t, ShippingExpress, s.ShippingMethod)

	// Resubmitting contact does not regress the furthest step reached.
	require.NoError(t, s.SubmitContact(validContact()))
	assert.True(t, s.ReadyForPayment())
}

func TestContactValidation(t *testing.T) {
	s := NewState()

	err := s.SubmitContact(Contact{Email: "not-an-email", FirstName: "Ana"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "last_name")
	assert.Equal(t, StepContact, s.Step)
}

func TestShippingValidation(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SubmitContact(validContact()))

	err := s.SubmitShipping(Address{Line1: "100 Main St"}, ShippingStandard)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "city")

	err = s.SubmitShipping(validAddress(), "overnight")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"shipping_method"}, vErr.Fields)
}

func TestGoToRejectsUnknownStep(t *testing.T) {
	s := NewState()
	assert.ErrorIs(t, s.GoTo(0), ErrInvalidStep)
	assert.ErrorIs(t, s.GoTo(4), ErrInvalidStep)
}

func TestFlowStoreRoundTrip(t *testing.T) {
	database, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()
	_ = database

	ctx := context.Background()
	_, err = queries.CreateCartSession(ctx, db.CreateCartSessionParams{
		ID:    "sess-1",
		Items: "[]",
	})
	require.NoError(t, err)

	store := NewFlowStore(queries)

	fresh, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepContact, fresh.Step)

	require.NoError(t, fresh.SubmitContact(validContact()))
	require.NoError(t, store.Save(ctx, "sess-1", fresh))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepShipping, loaded.Step)
	assert.Equal(t, "Ana", loaded.Contact.FirstName)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	cleared, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepContact, cleared.Step)
}

func TestFlowStoreMissingSession(t *testing.T) {
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	store := NewFlowStore(queries)
	s, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, StepContact, s.Step)
}
