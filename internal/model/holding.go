package model

import "time"

// Venue identifies the listing exchange for a security. It determines the
// ticker suffix convention and, for the LSE, the quote-unit correction.
type Venue string

// Supported listing venues.
const (
	VenueNASDAQ Venue = "NASDAQ"
	VenueLSE    Venue = "LSE"
	VenueNSE    Venue = "NSE"
	VenueBSE    Venue = "BSE"
)

// HomeCurrency is the single currency the daily snapshot is denominated in.
// Holdings in any other currency are excluded from the end-of-day valuation.
const HomeCurrency = "GBP"

// CategoryCash marks a holding as a cash position rather than a tradable security.
const CategoryCash = "Cash"

// Holding is a single position as synced from the client. The backend treats
// synced holdings as immutable input: jobs read them, value them, and never
// write them back.
type Holding struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Exchange    Venue   `json:"exchange"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Units       float64 `json:"units"`
	AverageCost float64 `json:"averageCost"`
	Currency    string  `json:"currency"`
	Owner       string  `json:"owner,omitempty"`
	Broker      string  `json:"broker,omitempty"`
	Bank        string  `json:"bank,omitempty"`
	AddedDate   string  `json:"addedDate,omitempty"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

// IsCash reports whether the holding is a cash position. Cash is valued at
// units x average cost and never queried against the quote provider.
func (h Holding) IsCash() bool {
	return h.Category == CategoryCash || h.Symbol == "CASH"
}

// ListingVenue returns the holding's listing venue, defaulting to the LSE
// when the client did not set one.
func (h Holding) ListingVenue() Venue {
	if h.Exchange == "" {
		return VenueLSE
	}
	return h.Exchange
}

// HoldingsSyncSnapshot is the most recently pushed complete holdings list.
// Exactly one such record exists at any time; the sync endpoint overwrites it
// wholesale.
type HoldingsSyncSnapshot struct {
	Holdings  []Holding `json:"holdings"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PortfolioSnapshot is one finalized end-of-day portfolio valuation in GBP,
// keyed by calendar date (YYYY-MM-DD, server local time).
type PortfolioSnapshot struct {
	Date     string  `json:"date"`
	ValueGBP float64 `json:"valueGBP"`
}

// PriceCacheEntry is a best-effort, possibly stale last-known price for a
// resolved ticker. Absence or staleness means "no data", never "price is zero".
type PriceCacheEntry struct {
	Ticker    string    `json:"ticker"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updatedAt"`
}
