// Package shipping verifies checkout destinations against EasyPost.
// Without an API key the verifier runs in mock mode and accepts any
// address, which keeps local development working offline.
package shipping

import (
	"fmt"

	"github.com/EasyPost/easypost-go/v5"
	"github.com/famoussince/storefront/internal/checkout"
)

type Verifier struct {
	client *easypost.Client
}

func NewVerifier(apiKey string) *Verifier {
	if apiKey == "" {
		return &Verifier{client: nil}
	}
	return &Verifier{client: easypost.New(apiKey)}
}

func (v *Verifier) IsUsingMockData() bool {
	return v.client == nil
}

// Verify runs delivery verification on an address. The normalized form
// from the carrier is returned when available.
func (v *Verifier) Verify(addr checkout.Address) (checkout.Address, error) {
	if v.IsUsingMockData() {
		return addr, nil
	}

	created, err := v.client.CreateAddress(
		&easypost.Address{
			Street1: addr.Line1,
			Street2: addr.Line2,
			City:    addr.City,
			State:   addr.State,
			Zip:     addr.PostalCode,
			Country: addr.Country,
		},
		&easypost.CreateAddressOptions{Verify: true},
	)
	if err != nil {
		return addr, fmt.Errorf("failed to verify address: %w", err)
	}

	if created.Verifications != nil && created.Verifications.Delivery != nil &&
		!created.Verifications.Delivery.Success {
		return addr, fmt.Errorf("address failed delivery verification")
	}

	return checkout.Address{
		Line1:      created.Street1,
		Line2:      created.Street2,
		City:       created.City,
		State:      created.State,
		PostalCode: created.Zip,
		Country:    created.Country,
	}, nil
}
