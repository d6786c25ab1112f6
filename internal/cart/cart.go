package cart

import (
	"encoding/json"
	"fmt"
)

// Item is one cart line. ID is the composite product/size/color key for
// catalog items, or a synthetic key for one-off custom designs.
type Item struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	VariantID    string `json:"variant_id,omitempty"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	Quantity     int64  `json:"quantity"`
	ImageURL     string `json:"image_url,omitempty"`
	Size         string `json:"size,omitempty"`
	Color        string `json:"color,omitempty"`
	FreeShipping bool   `json:"free_shipping,omitempty"`
	TaxExempt    bool   `json:"tax_exempt,omitempty"`
}

// LineID builds the composite key that identical add-to-cart calls merge on.
func LineID(productID, size, color string) string {
	return fmt.Sprintf("%s|%s|%s", productID, size, color)
}

// Cart is the explicit cart state for one shopper session.
type Cart struct {
	Items []Item `json:"items"`
}

// Add merges quantity into an existing line with the same ID, or appends a
// new line. Quantities below 1 are treated as 1.
func (c *Cart) Add(item Item) {
	if item.ID == "" {
		item.ID = LineID(item.ProductID, item.Size, item.Color)
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line with the given ID, reporting whether it existed.
func (c *Cart) Remove(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity on a line; anything below 1 removes the
// line entirely.
func (c *Cart) UpdateQuantity(id string, qty int64) bool {
	if qty < 1 {
		return c.Remove(id)
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// SubtotalCents sums price × quantity over all lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * item.Quantity
	}
	return total
}

// Count returns the total number of units in the cart.
func (c *Cart) Count() int64 {
	var n int64
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// HasFreeShipping reports whether any line carries the free-shipping
// exception flag.
func (c *Cart) HasFreeShipping() bool {
	for _, item := range c.Items {
		if item.FreeShipping {
			return true
		}
	}
	return false
}

// HasTaxExempt reports whether any line waives the flat tax.
func (c *Cart) HasTaxExempt() bool {
	for _, item := range c.Items {
		if item.TaxExempt {
			return true
		}
	}
	return false
}

// Marshal serializes the cart's lines for persistence.
func (c *Cart) Marshal() (string, error) {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cart: %w", err)
	}
	return string(data), nil
}

// Unmarshal replaces the cart's lines from serialized form. An empty blob
// hydrates to an empty cart.
func (c *Cart) Unmarshal(data string) error {
	if data == "" {
		c.Items = nil
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	c.Items = items
	return nil
}
