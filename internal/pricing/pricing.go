// Package pricing computes the server-side price of a service.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// Quote prices a service for a property. Per-square services multiply by the
// area; fixed-price services (windows and the like) are billed per unit, with
// rooms as the unit count. ok is false when the service has no price.
func Quote(s *models.Service, square int, rooms *int) (price decimal.Decimal, ok bool) {
	if s.PricePerSquare != nil && !s.PricePerSquare.IsZero() {
		if square <= 0 {
			return decimal.Zero, false
		}
		return s.PricePerSquare.Mul(decimal.NewFromInt(int64(square))), true
	}

	if s.BasePrice != nil {
		units := int64(1)
		if rooms != nil && *rooms > 0 {
			units = int64(*rooms)
		}
		return s.BasePrice.Mul(decimal.NewFromInt(units)), true
	}

	return decimal.Zero, false
}

// Matches reports whether a client-submitted total equals the quote.
func Matches(quote, submitted decimal.Decimal) bool {
	return quote.Round(2).Equal(submitted.Round(2))
}
