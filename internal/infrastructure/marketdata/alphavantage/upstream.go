package alphavantage

import "context"

// Upstream is the Alpha Vantage transport: one method per vendor function
// family, each returning a decoded payload or the vendor's failure.
//
//go:generate mockgen -package=alphavantage -destination=mock_upstream_test.go -source=upstream.go Upstream
type Upstream interface {
	GlobalQuote(ctx context.Context, symbol string) (*GlobalQuote, error)
	StockSeries(ctx context.Context, symbol string, call SeriesCall) (*StockSeries, error)
	ForexSeries(ctx context.Context, from, to string, call SeriesCall) (*ForexSeries, error)
	CryptoSeries(ctx context.Context, symbol, market string, call SeriesCall) (*CryptoSeries, error)
	SymbolSearch(ctx context.Context, keywords string) ([]SymbolMatch, error)
	Earnings(ctx context.Context, symbol string) (*EarningsReport, error)
}

// GlobalQuote is the GLOBAL_QUOTE record. An unknown symbol comes back as an
// empty record, so Symbol is "".
type GlobalQuote struct {
	Symbol           string
	Open             float64
	High             float64
	Low              float64
	Price            float64
	Volume           uint64
	LatestTradingDay string
	PreviousClose    float64
	Change           float64
	ChangePercent    string
}

// StockSeries is a TIME_SERIES_* payload.
type StockSeries struct {
	Symbol   string
	TimeZone string
	Data     []StockBar
}

type StockBar struct {
	Time          string
	Open          float64
	High          float64
	Low           float64
	Close         float64
	Volume        uint64
	AdjustedClose *float64
	Dividend      *float64
}

// ForexSeries is an FX_* payload.
type ForexSeries struct {
	From     string
	To       string
	TimeZone string
	Data     []ForexBar
}

type ForexBar struct {
	Time  string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// CryptoSeries is a DIGITAL_CURRENCY_* payload. Volume is fractional.
type CryptoSeries struct {
	Symbol   string
	Market   string
	TimeZone string
	Data     []CryptoBar
}

type CryptoBar struct {
	Time   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SymbolMatch is one entry of SYMBOL_SEARCH bestMatches.
type SymbolMatch struct {
	Symbol     string
	Name       string
	Type       string
	Region     string
	Currency   string
	MatchScore float64
}

// EarningsReport is the EARNINGS payload.
type EarningsReport struct {
	Symbol    string
	Annual    []AnnualEarning
	Quarterly []QuarterlyEarning
}

type AnnualEarning struct {
	FiscalDateEnding string
	ReportedEPS      *float64
}

type QuarterlyEarning struct {
	FiscalDateEnding string
	ReportedDate     string
	ReportedEPS      *float64
	EstimatedEPS     *float64
}
