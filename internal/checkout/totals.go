package checkout

import (
	"strings"

	"github.com/famoussince/storefront/internal/cart"
)

// Shipping methods offered at checkout.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Flat rates and tax, all in cents. Tax is a flat 9% of the subtotal;
// discounts come off the final total.
const (
	standardRateCents = 1000
	expressRateCents  = 2500
	taxRatePercent    = 9
)

// Discount codes honored at checkout. SAVE10 takes 10% off the subtotal;
// FREESHIP zeroes the shipping line.
const (
	CodeSave10   = "SAVE10"
	CodeFreeShip = "FREESHIP"
)

// Totals is the full order math for a cart plus shipping and discount
// selections. All amounts are cents.
type Totals struct {
	SubtotalCents  int64  `json:"subtotal_cents"`
	DiscountCents  int64  `json:"discount_cents"`
	ShippingCents  int64  `json:"shipping_cents"`
	TaxCents       int64  `json:"tax_cents"`
	TotalCents     int64  `json:"total_cents"`
	DiscountCode   string `json:"discount_code,omitempty"`
	ShippingMethod string `json:"shipping_method"`
	FreeShipping   bool   `json:"free_shipping"`
	InvalidCoupon  bool   `json:"invalid_coupon,omitempty"`
}

// Calculate computes order totals. An unknown discount code is not an
// error; it is ignored and flagged so the caller can tell the shopper.
func Calculate(c *cart.Cart, shippingMethod, discountCode string) Totals {
	t := Totals{
		SubtotalCents:  c.SubtotalCents(),
		ShippingMethod: shippingMethod,
	}

	t.ShippingCents = standardRateCents
	if shippingMethod == ShippingExpress {
		t.ShippingCents = expressRateCents
	}

	code := strings.ToUpper(strings.TrimSpace(discountCode))
	switch code {
	case "":
	case CodeSave10:
		t.DiscountCode = code
		t.DiscountCents = t.SubtotalCents * 10 / 100
	case CodeFreeShip:
		t.DiscountCode = code
		t.FreeShipping = true
	default:
		t.InvalidCoupon = true
	}

	if c.HasFreeShipping() || t.FreeShipping {
		t.FreeShipping = true
		t.ShippingCents = 0
	}

	if !c.HasTaxExempt() {
		t.TaxCents = t.SubtotalCents * taxRatePercent / 100
	}

	t.TotalCents = t.SubtotalCents + t.TaxCents + t.ShippingCents - t.DiscountCents
	return t
}
