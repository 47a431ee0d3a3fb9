// Package ticker resolves user-entered security identifiers to the canonical
// ticker symbols understood by the quote provider. Resolution is a pure
// function of (symbol, venue): a fund-name alias step followed by a
// venue-suffix step.
package ticker

import (
	"strings"

	"github.com/fireflyapp/firefly-server/internal/model"
)

// fundNameAliases maps broker CSV security names to their short tickers.
// The table is curated for LSE and NASDAQ listings only.
var fundNameAliases = map[string]string{
	"INVESCO NASDAQ 100":                            "EQQQ",
	"VANGUARD S&P 500":                              "VUAG",
	"ISHARES MSCI JAPAN":                            "IJPN",
	"VANGUARD FTSE DEVELOPED EUROPE":                "VEUR",
	"VANGUARD FTSE DEVELOPED ASIA PACIFIC EX-JAPAN": "VAPX",
	"ISHARES MSCI EMERGING MARKETS IMI":             "EIMI",
	"ISHARES PHYSICAL GOLD":                         "SGLN",
}

// venuePrefixes are decorations users sometimes paste in front of a symbol.
var venuePrefixes = []string{"NASDAQ:", "LON:", "NSE:", "BSE:"}

// Resolve maps a raw symbol and its listing venue to the canonical provider
// ticker: known fund display names are replaced by their aliased tickers, then
// the venue's suffix convention is applied. An empty or whitespace-only
// symbol resolves to the empty string; callers must not query the provider
// with an empty ticker.
func Resolve(symbol string, venue model.Venue) string {
	return ForVenue(resolveAlias(symbol, venue), venue)
}

// resolveAlias replaces a known fund display name with its short ticker. The
// alias table is only trusted for the two venues it was curated against;
// other venues pass the symbol through unchanged.
func resolveAlias(symbol string, venue model.Venue) string {
	key := strings.Join(strings.Fields(strings.ToUpper(symbol)), " ")
	if ticker, ok := fundNameAliases[key]; ok && (venue == model.VenueLSE || venue == model.VenueNASDAQ) {
		return ticker
	}
	return symbol
}

// ForVenue strips any venue-prefix decoration and applies the venue's
// canonical ticker suffix. NASDAQ tickers carry no suffix; unrecognized
// venues pass through unsuffixed.
func ForVenue(symbol string, venue model.Venue) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	for _, prefix := range venuePrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	if s == "" {
		return ""
	}

	switch venue {
	case model.VenueNASDAQ:
		return s
	case model.VenueLSE:
		if strings.HasSuffix(s, ".L") {
			return s
		}
		return s + ".L"
	case model.VenueNSE:
		if strings.HasSuffix(s, ".NS") {
			return s
		}
		if strings.HasSuffix(s, ".NSE") {
			return strings.TrimSuffix(s, ".NSE") + ".NS"
		}
		return s + ".NS"
	case model.VenueBSE:
		if strings.HasSuffix(s, ".BSE") {
			return s
		}
		return s + ".BSE"
	default:
		return s
	}
}
