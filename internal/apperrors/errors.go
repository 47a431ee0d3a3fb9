package apperrors

import "errors"

// Quote errors distinguish "the provider had nothing usable" from genuine
// transport failures. Callers check ErrNoQuote with errors.Is; anything else
// returned by a quote fetch is a transport error.
var (
	// ErrNoQuote indicates the provider returned no usable price for a ticker
	// (not found, rate limited, malformed payload, or a non-positive price).
	ErrNoQuote = errors.New("no quote available")
)

// Store errors represent missing records in the durable stores.
var (
	// ErrNoHoldingsSynced indicates the client has never pushed a holdings
	// snapshot. This is a normal "not configured yet" state, not a failure.
	ErrNoHoldingsSynced = errors.New("no holdings synced")
)

// Client input errors are surfaced as 4xx responses and never reach job logic.
var (
	// ErrMissingSymbol indicates a quote request without a symbol parameter.
	ErrMissingSymbol = errors.New("symbol is required")

	// ErrInvalidSyncBody indicates a sync request whose body does not include
	// a ukHoldings array.
	ErrInvalidSyncBody = errors.New("body must include ukHoldings array")

	// ErrNegativeUnits indicates a synced holding with a negative unit count.
	ErrNegativeUnits = errors.New("units cannot be negative")

	// ErrNegativeCost indicates a synced holding with a negative average cost.
	ErrNegativeCost = errors.New("average cost cannot be negative")
)
