package testutil

import (
	"github.com/google/uuid"

	"github.com/fireflyapp/firefly-server/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// GBP ETF on the LSE with defaults
//	h := testutil.NewHolding("VUAG").Build()
//
//	// Customized holding
//	h := testutil.NewHolding("AAPL").
//	    OnVenue(model.VenueNASDAQ).
//	    InCurrency("USD").
//	    WithUnits(10).
//	    Build()
type HoldingBuilder struct {
	holding model.Holding
}

// NewHolding creates a HoldingBuilder with sensible defaults: a GBP ETF
// listed on the LSE with 10 units.
func NewHolding(symbol string) *HoldingBuilder {
	return &HoldingBuilder{
		holding: model.Holding{
			ID:          uuid.NewString(),
			Name:        symbol,
			Symbol:      symbol,
			Exchange:    model.VenueLSE,
			Category:    "ETF",
			UnitPrice:   100,
			Units:       10,
			AverageCost: 90,
			Currency:    model.HomeCurrency,
		},
	}
}

// NewCashHolding creates a cash position worth amount GBP.
func NewCashHolding(amount float64) *HoldingBuilder {
	return &HoldingBuilder{
		holding: model.Holding{
			ID:          uuid.NewString(),
			Name:        "Cash",
			Symbol:      "CASH",
			Category:    model.CategoryCash,
			Units:       1,
			AverageCost: amount,
			Currency:    model.HomeCurrency,
		},
	}
}

// OnVenue sets the listing venue.
func (b *HoldingBuilder) OnVenue(venue model.Venue) *HoldingBuilder {
	b.holding.Exchange = venue
	return b
}

// InCurrency sets the currency code.
func (b *HoldingBuilder) InCurrency(currency string) *HoldingBuilder {
	b.holding.Currency = currency
	return b
}

// WithUnits sets the unit count.
func (b *HoldingBuilder) WithUnits(units float64) *HoldingBuilder {
	b.holding.Units = units
	return b
}

// WithUnitPrice sets the last known unit price.
func (b *HoldingBuilder) WithUnitPrice(price float64) *HoldingBuilder {
	b.holding.UnitPrice = price
	return b
}

// WithAverageCost sets the per-unit cost basis.
func (b *HoldingBuilder) WithAverageCost(cost float64) *HoldingBuilder {
	b.holding.AverageCost = cost
	return b
}

// WithCategory sets the asset category.
func (b *HoldingBuilder) WithCategory(category string) *HoldingBuilder {
	b.holding.Category = category
	return b
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.holding.ID = id
	return b
}

// Build returns the constructed holding.
func (b *HoldingBuilder) Build() model.Holding {
	return b.holding
}
