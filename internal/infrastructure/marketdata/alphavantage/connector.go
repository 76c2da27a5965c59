package alphavantage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
	"github.com/jmanzanog/borsa-alphavantage/internal/infrastructure/marketdata"
)

const (
	ConnectorName = "borsa-alphavantage"
	VendorName    = "Alpha Vantage"

	// cryptoMarket is the quote market for digital currency series.
	cryptoMarket = "USD"
)

var supportedIntervals = []domain.Interval{
	domain.Interval1m,
	domain.Interval5m,
	domain.Interval15m,
	domain.Interval30m,
	domain.Interval1h,
	domain.Interval1d,
	domain.Interval1w,
	domain.Interval1mo,
}

var supportedKinds = map[domain.AssetKind]bool{
	domain.AssetKindEquity: true,
	domain.AssetKindForex:  true,
	domain.AssetKindCrypto: true,
}

// Connector adapts Alpha Vantage to the canonical market data model. It
// holds no mutable state and is safe for concurrent use.
type Connector struct {
	upstream Upstream
}

var _ marketdata.Connector = (*Connector)(nil)

func NewConnector(upstream Upstream) *Connector {
	return &Connector{upstream: upstream}
}

func (c *Connector) Name() string {
	return ConnectorName
}

func (c *Connector) Vendor() string {
	return VendorName
}

func (c *Connector) SupportsKind(kind domain.AssetKind) bool {
	return supportedKinds[kind]
}

// SupportedIntervals is the same for every kind.
func (c *Connector) SupportedIntervals(domain.AssetKind) []domain.Interval {
	out := make([]domain.Interval, len(supportedIntervals))
	copy(out, supportedIntervals)
	return out
}

func (c *Connector) Quote(ctx context.Context, inst domain.Instrument) (*domain.Quote, error) {
	sym := inst.Symbol()
	gq, err := c.upstream.GlobalQuote(ctx, sym.String())
	if err != nil {
		return nil, normalizeError(err, fmt.Sprintf("quote for %s", sym))
	}
	return mapQuote(gq, sym)
}

func (c *Connector) History(ctx context.Context, inst domain.Instrument, req domain.HistoryRequest) (*domain.HistoryResponse, error) {
	sym := inst.Symbol().String()
	what := fmt.Sprintf("history for %s", sym)

	var base, quote string
	if inst.Kind() == domain.AssetKindForex {
		var err error
		if base, quote, err = ParsePair(sym); err != nil {
			return nil, err
		}
	}

	call, err := Translate(inst.Kind(), req.Interval(), req.AutoAdjust())
	if err != nil {
		return nil, err
	}

	from, to := req.Window(time.Now())
	slog.DebugContext(ctx, "fetching history",
		"symbol", sym,
		"kind", inst.Kind(),
		"function", call.Function,
		"interval", call.Interval,
		"from", from,
		"to", to,
	)

	var (
		resp *domain.HistoryResponse
		rows int
	)
	switch inst.Kind() {
	case domain.AssetKindForex:
		fx, err := c.upstream.ForexSeries(ctx, base, quote, call)
		if err != nil {
			return nil, normalizeError(err, what)
		}
		rows = len(fx.Data)
		resp, err = mapForexSeries(fx)
		if err != nil {
			return nil, err
		}
	case domain.AssetKindCrypto:
		cs, err := c.upstream.CryptoSeries(ctx, sym, cryptoMarket, call)
		if err != nil {
			return nil, normalizeError(err, what)
		}
		rows = len(cs.Data)
		resp, err = mapCryptoSeries(cs)
		if err != nil {
			return nil, err
		}
	default:
		ts, err := c.upstream.StockSeries(ctx, sym, call)
		if err != nil {
			return nil, normalizeError(err, what)
		}
		rows = len(ts.Data)
		resp, err = mapStockSeries(ts)
		if err != nil {
			return nil, err
		}
	}

	if dropped := rows - len(resp.Candles); dropped > 0 {
		slog.WarnContext(ctx, "dropped bars with unreadable timestamps",
			"symbol", sym, "dropped", dropped, "kept", len(resp.Candles))
	}
	return resp, nil
}

func (c *Connector) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	matches, err := c.upstream.SymbolSearch(ctx, req.Query())
	if err != nil {
		return nil, normalizeError(err, "search")
	}
	results, err := mapSearchResults(matches, req)
	if err != nil {
		return nil, err
	}
	return &domain.SearchResponse{Results: results}, nil
}

func (c *Connector) Earnings(ctx context.Context, inst domain.Instrument) (*domain.Earnings, error) {
	sym := inst.Symbol()
	report, err := c.upstream.Earnings(ctx, sym.String())
	if err != nil {
		return nil, normalizeError(err, fmt.Sprintf("earnings for %s", sym))
	}
	return mapEarnings(report)
}
