package marketdata

import (
	"context"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

// QuoteProvider returns a current quote for an instrument.
type QuoteProvider interface {
	Quote(ctx context.Context, instrument domain.Instrument) (*domain.Quote, error)
}

// HistoryProvider returns candle history and advertises which intervals it
// can serve for a given asset kind.
type HistoryProvider interface {
	History(ctx context.Context, instrument domain.Instrument, req domain.HistoryRequest) (*domain.HistoryResponse, error)
	SupportedIntervals(kind domain.AssetKind) []domain.Interval
}

type SearchProvider interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

type EarningsProvider interface {
	Earnings(ctx context.Context, instrument domain.Instrument) (*domain.Earnings, error)
}

// Connector is a vendor adapter with its full capability set. Callers check
// SupportsKind before routing a request to it.
type Connector interface {
	Name() string
	Vendor() string
	SupportsKind(kind domain.AssetKind) bool

	QuoteProvider
	HistoryProvider
	SearchProvider
	EarningsProvider
}
