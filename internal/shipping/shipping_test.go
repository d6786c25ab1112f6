package shipping

import (
	"testing"

	"github.com/famoussince/storefront/internal/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierWithoutKeyUsesMockMode(t *testing.T) {
	v := NewVerifier("")
	assert.True(t, v.IsUsingMockData())

	addr := checkout.Address{
		Line1:      "100 Main St",
		City:       "Duluth",
		State:      "MN",
		PostalCode: "55802",
		Country:    "US",
	}
	got, err := v.Verify(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestVerifierWithKeyHasClient(t *testing.T) {
	v := NewVerifier("EZAK_test_key")
	assert.False(t, v.IsUsingMockData())
}
