package service

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/yahoo"
)

// QuoteService serves live on-demand quotes for the client's quote proxy
// endpoint. Concurrent requests for the same symbol are collapsed into a
// single upstream fetch.
type QuoteService struct {
	quoteClient yahoo.Client
	group       singleflight.Group
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteClient yahoo.Client) *QuoteService {
	return &QuoteService{quoteClient: quoteClient}
}

// GetQuote fetches the latest price for a symbol. The symbol is used as-is as
// the provider ticker; the client resolves names and venue suffixes before
// calling the proxy. Returns apperrors.ErrMissingSymbol for an empty symbol,
// apperrors.ErrNoQuote when the provider has nothing usable, or a transport
// error.
func (s *QuoteService) GetQuote(ctx context.Context, symbol string) (float64, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return 0, apperrors.ErrMissingSymbol
	}

	price, err, _ := s.group.Do(symbol, func() (interface{}, error) {
		return s.quoteClient.FetchQuote(ctx, symbol)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
