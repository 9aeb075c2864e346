// Package pricing derives checkout totals from cart lines. Totals are a
// pure function of the lines and the configured rates; nothing here is
// cached, so a result can never drift from the cart it was computed from.
package pricing

import "storefront/internal/models"

// Config holds the storefront pricing rates.
type Config struct {
	FreeShippingThreshold float64
	ShippingFee           float64
	TaxRate               float64
}

// DefaultConfig matches the storefront's advertised rates: free shipping
// above 50.00, otherwise a 9.99 flat fee, with 8% tax.
func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: 50.00,
		ShippingFee:           9.99,
		TaxRate:               0.08,
	}
}

// Totals is the price breakdown shown on the cart and checkout pages.
// Values are unrounded; display formatting is the caller's concern.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals calculates the breakdown for the given cart lines.
// Shipping is free only when the subtotal strictly exceeds the threshold.
func ComputeTotals(lines []models.CartLine, cfg Config) Totals {
	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	shipping := cfg.ShippingFee
	if subtotal > cfg.FreeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * cfg.TaxRate

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
