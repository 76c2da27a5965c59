package alphavantage

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

// Alpha Vantage never reports a currency per series; prices are quoted in USD.
const defaultCurrency = domain.USD

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// resolveLocation returns nil when name is empty or not a known IANA zone,
// in which case timestamps are read as UTC.
func resolveLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

// parseTimestamp reads raw as a naive wall-clock time in loc (UTC when loc is
// nil). It reports false for unparseable input and for wall clocks that do
// not map to exactly one instant in loc.
func parseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		naive, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if loc == nil {
			return naive, true
		}
		return localToInstant(naive, loc)
	}
	return time.Time{}, false
}

// localToInstant interprets the UTC-labelled wall clock naive as local time
// in loc. Gaps and overlaps around offset changes have no single answer.
func localToInstant(naive time.Time, loc *time.Location) (time.Time, bool) {
	y, mo, d := naive.Date()
	h, mi, s := naive.Clock()
	guess := time.Date(y, mo, d, h, mi, s, 0, loc)

	var match time.Time
	matches := 0
	seen := make(map[int]bool, 2)
	for _, probe := range []time.Time{guess.Add(-12 * time.Hour), guess, guess.Add(12 * time.Hour)} {
		_, offset := probe.Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true

		candidate := naive.Add(-time.Duration(offset) * time.Second)
		local := candidate.In(loc)
		wall := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), 0, time.UTC)
		if wall.Equal(naive) {
			match = candidate
			matches++
		}
	}
	if matches != 1 {
		return time.Time{}, false
	}
	return match.UTC(), true
}

func usdMoney(v float64) (domain.Money, error) {
	m, err := domain.NewMoneyFromFloat(v, defaultCurrency)
	if err != nil {
		return domain.Money{}, domain.DataError(err.Error())
	}
	return m, nil
}

// usdPrices converts the four prices of a bar, failing on the first bad value.
func usdPrices(open, high, low, closePrice float64) ([4]domain.Money, error) {
	var out [4]domain.Money
	for i, v := range []float64{open, high, low, closePrice} {
		m, err := usdMoney(v)
		if err != nil {
			return out, err
		}
		out[i] = m
	}
	return out, nil
}

// roundVolume coerces a fractional volume into a count: non-finite values
// saturate, non-positive values floor to zero, the rest round half away from
// zero.
func roundVolume(v float64) uint64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.MaxUint64
	}
	if v <= 0 {
		return 0
	}
	n := decimal.NewFromFloat(v).Round(0).BigInt()
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

func sortHistory(resp *domain.HistoryResponse) {
	slices.SortStableFunc(resp.Candles, func(a, b domain.Candle) int {
		return a.Time.Compare(b.Time)
	})
	slices.SortStableFunc(resp.Actions, func(a, b domain.Action) int {
		return a.Time.Compare(b.Time)
	})
}

func historyMeta(loc *time.Location) *domain.HistoryMeta {
	meta := &domain.HistoryMeta{}
	if loc != nil {
		meta.Timezone = loc.String()
	}
	return meta
}

// mapStockSeries prefers the adjusted close when a bar carries one. The
// response is marked adjusted if any bar had an adjusted close or dividend
// field, including bars dropped for bad timestamps.
func mapStockSeries(ts *StockSeries) (*domain.HistoryResponse, error) {
	loc := resolveLocation(ts.TimeZone)
	resp := &domain.HistoryResponse{
		Candles: make([]domain.Candle, 0, len(ts.Data)),
		Actions: []domain.Action{},
		Meta:    historyMeta(loc),
	}

	for _, bar := range ts.Data {
		if bar.AdjustedClose != nil || bar.Dividend != nil {
			resp.Adjusted = true
		}
		at, ok := parseTimestamp(bar.Time, loc)
		if !ok {
			continue
		}

		closePrice := bar.Close
		if bar.AdjustedClose != nil {
			closePrice = *bar.AdjustedClose
		}
		prices, err := usdPrices(bar.Open, bar.High, bar.Low, closePrice)
		if err != nil {
			return nil, err
		}
		volume := bar.Volume
		resp.Candles = append(resp.Candles, domain.Candle{
			Time:   at,
			Open:   prices[0],
			High:   prices[1],
			Low:    prices[2],
			Close:  prices[3],
			Volume: &volume,
		})

		if bar.Dividend != nil && *bar.Dividend > 0 {
			amount, err := usdMoney(*bar.Dividend)
			if err != nil {
				return nil, err
			}
			resp.Actions = append(resp.Actions, domain.NewDividend(at, amount))
		}
	}

	sortHistory(resp)
	return resp, nil
}

func mapForexSeries(fx *ForexSeries) (*domain.HistoryResponse, error) {
	loc := resolveLocation(fx.TimeZone)
	resp := &domain.HistoryResponse{
		Candles: make([]domain.Candle, 0, len(fx.Data)),
		Actions: []domain.Action{},
		Meta:    historyMeta(loc),
	}

	for _, bar := range fx.Data {
		at, ok := parseTimestamp(bar.Time, loc)
		if !ok {
			continue
		}
		prices, err := usdPrices(bar.Open, bar.High, bar.Low, bar.Close)
		if err != nil {
			return nil, err
		}
		resp.Candles = append(resp.Candles, domain.Candle{
			Time:  at,
			Open:  prices[0],
			High:  prices[1],
			Low:   prices[2],
			Close: prices[3],
		})
	}

	sortHistory(resp)
	return resp, nil
}

func mapCryptoSeries(c *CryptoSeries) (*domain.HistoryResponse, error) {
	loc := resolveLocation(c.TimeZone)
	resp := &domain.HistoryResponse{
		Candles: make([]domain.Candle, 0, len(c.Data)),
		Actions: []domain.Action{},
		Meta:    historyMeta(loc),
	}

	for _, bar := range c.Data {
		at, ok := parseTimestamp(bar.Time, loc)
		if !ok {
			continue
		}
		prices, err := usdPrices(bar.Open, bar.High, bar.Low, bar.Close)
		if err != nil {
			return nil, err
		}
		volume := roundVolume(bar.Volume)
		resp.Candles = append(resp.Candles, domain.Candle{
			Time:   at,
			Open:   prices[0],
			High:   prices[1],
			Low:    prices[2],
			Close:  prices[3],
			Volume: &volume,
		})
	}

	sortHistory(resp)
	return resp, nil
}

// mapQuote treats an empty symbol as an unknown instrument.
func mapQuote(q *GlobalQuote, requested domain.Symbol) (*domain.Quote, error) {
	if q == nil || q.Symbol == "" {
		return nil, domain.NotFound(fmt.Sprintf("quote for %s", requested))
	}
	sym, err := domain.NewSymbol(q.Symbol)
	if err != nil {
		return nil, domain.DataError(fmt.Sprintf("invalid symbol '%s': %v", q.Symbol, err))
	}
	price, err := usdMoney(q.Price)
	if err != nil {
		return nil, err
	}
	previous, err := usdMoney(q.PreviousClose)
	if err != nil {
		return nil, err
	}
	return &domain.Quote{
		Symbol:        sym,
		Price:         &price,
		PreviousClose: &previous,
	}, nil
}

var searchKinds = map[string]domain.AssetKind{
	"ETF":              domain.AssetKindFund,
	"MUTUAL FUND":      domain.AssetKindFund,
	"FUND":             domain.AssetKindFund,
	"INDEX":            domain.AssetKindIndex,
	"CURRENCY":         domain.AssetKindForex,
	"FOREX":            domain.AssetKindForex,
	"CRYPTOCURRENCY":   domain.AssetKindCrypto,
	"CRYPTO":           domain.AssetKindCrypto,
	"DIGITAL CURRENCY": domain.AssetKindCrypto,
}

// kindFromSearchType classifies the vendor's free-text security type.
// Unrecognized types are equities.
func kindFromSearchType(t string) domain.AssetKind {
	if kind, ok := searchKinds[strings.ToUpper(strings.TrimSpace(t))]; ok {
		return kind
	}
	return domain.AssetKindEquity
}

// mapSearchResults applies the kind filter before the limit, so filtered-out
// matches do not use up the limit.
func mapSearchResults(matches []SymbolMatch, req domain.SearchRequest) ([]domain.SearchResult, error) {
	wantKind, filter := req.Kind()
	out := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		kind := kindFromSearchType(m.Type)
		if filter && kind != wantKind {
			continue
		}
		sym, err := domain.NewSymbol(m.Symbol)
		if err != nil {
			return nil, domain.DataError(fmt.Sprintf("invalid symbol '%s': %v", m.Symbol, err))
		}
		name := m.Name
		result := domain.SearchResult{Symbol: sym, Name: &name, Kind: kind}
		if ex, ok := domain.ParseExchange(m.Region); ok {
			result.Exchange = &ex
		}
		out = append(out, result)
	}

	if limit, ok := req.Limit(); ok && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fiscalYear reads the year from the first four characters of a fiscal date,
// yielding 0 when they are not a number.
func fiscalYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

func periodOrZero(s string) domain.Period {
	p, err := domain.ParsePeriod(s)
	if err != nil {
		return domain.Period{Kind: domain.PeriodYear}
	}
	return p
}

// mapEarnings keys quarterly EPS by report date when the vendor has one and
// by fiscal period end otherwise.
func mapEarnings(e *EarningsReport) (*domain.Earnings, error) {
	out := &domain.Earnings{
		Yearly:       make([]domain.EarningsYear, 0, len(e.Annual)),
		Quarterly:    make([]domain.EarningsQuarter, 0, len(e.Quarterly)),
		QuarterlyEPS: make([]domain.EarningsQuarterEps, 0, len(e.Quarterly)),
	}

	for _, y := range e.Annual {
		out.Yearly = append(out.Yearly, domain.EarningsYear{Year: fiscalYear(y.FiscalDateEnding)})
	}

	for _, q := range e.Quarterly {
		epsPeriod := q.ReportedDate
		if epsPeriod == "" {
			epsPeriod = q.FiscalDateEnding
		}
		eps := domain.EarningsQuarterEps{Period: periodOrZero(epsPeriod)}
		if q.ReportedEPS != nil {
			actual, err := usdMoney(*q.ReportedEPS)
			if err != nil {
				return nil, err
			}
			eps.Actual = &actual
		}
		if q.EstimatedEPS != nil {
			estimate, err := usdMoney(*q.EstimatedEPS)
			if err != nil {
				return nil, err
			}
			eps.Estimate = &estimate
		}

		out.QuarterlyEPS = append(out.QuarterlyEPS, eps)
		out.Quarterly = append(out.Quarterly, domain.EarningsQuarter{Period: periodOrZero(q.FiscalDateEnding)})
	}

	return out, nil
}
