package alphavantage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	metaDataKey     = "Meta Data"
	globalQuoteKey  = "Global Quote"
	bestMatchesKey  = "bestMatches"
	annualKey       = "annualEarnings"
	quarterlyKey    = "quarterlyEarnings"
	errorMessageKey = "Error Message"
)

// informationalKeys carry rate-limit and plan notices. They only count as
// failures when the expected payload is missing.
var informationalKeys = []string{"Note", "Information"}

// isOrdinal reports whether s is the ordinal vendors put in front of field
// names: the "1", "1a" or "05" of "1. open", "1a. open (USD)", "05. price".
func isOrdinal(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// fieldName reduces a vendor label to its bare lower-case name:
// "1a. open (USD)" becomes "open".
func fieldName(label string) string {
	name := label
	if i := strings.Index(name, ". "); i > 0 && isOrdinal(name[:i]) {
		name = name[i+2:]
	}
	if i := strings.Index(name, " ("); i >= 0 && strings.HasSuffix(name, ")") {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// fields flattens a labelled string object by bare name. When two labels
// share a name, the one that sorts first wins.
func fields(raw json.RawMessage) (map[string]string, error) {
	var labelled map[string]string
	if err := json.Unmarshal(raw, &labelled); err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(labelled))
	for label := range labelled {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make(map[string]string, len(labelled))
	for _, label := range labels {
		name := fieldName(label)
		if _, ok := out[name]; !ok {
			out[name] = labelled[label]
		}
	}
	return out, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return obj, nil
}

// vendorError returns the vendor's own failure text, if any. Notices only
// count when dataPresent is false.
func vendorError(obj map[string]json.RawMessage, dataPresent bool) error {
	if msg, ok := stringField(obj, errorMessageKey); ok {
		return errors.New(msg)
	}
	if dataPresent {
		return nil
	}
	for _, key := range informationalKeys {
		if msg, ok := stringField(obj, key); ok {
			return errors.New(msg)
		}
	}
	return nil
}

func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isMissing(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "None" || v == "-"
}

func parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", name, v, err)
	}
	return f, nil
}

func optionalFloat(name, v string) (*float64, error) {
	if isMissing(v) {
		return nil, nil
	}
	f, err := parseFloat(name, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseVolume(v string) (uint64, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseUint(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := parseFloat("volume", v)
	if err != nil {
		return 0, err
	}
	return roundVolume(f), nil
}

// series is the common shape of every time series payload.
type series struct {
	meta map[string]string
	rows []seriesRow
}

type seriesRow struct {
	time   string
	fields map[string]string
}

// decodeSeries splits a time series payload into its meta block and its rows
// in key order. The series object is whichever non-meta member is an object.
func decodeSeries(body []byte) (*series, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	var seriesKey string
	for key, raw := range obj {
		if key == metaDataKey {
			continue
		}
		if trimmed := strings.TrimSpace(string(raw)); strings.HasPrefix(trimmed, "{") {
			seriesKey = key
			break
		}
	}
	if err := vendorError(obj, seriesKey != ""); err != nil {
		return nil, err
	}
	if seriesKey == "" {
		return nil, errors.New("no data: response has no time series")
	}

	out := &series{meta: map[string]string{}}
	if raw, ok := obj[metaDataKey]; ok {
		if out.meta, err = fields(raw); err != nil {
			return nil, fmt.Errorf("failed to decode meta data: %w", err)
		}
	}

	var rows map[string]json.RawMessage
	if err := json.Unmarshal(obj[seriesKey], &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", seriesKey, err)
	}
	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out.rows = make([]seriesRow, 0, len(keys))
	for _, k := range keys {
		f, err := fields(rows[k])
		if err != nil {
			return nil, fmt.Errorf("failed to decode bar %s: %w", k, err)
		}
		out.rows = append(out.rows, seriesRow{time: k, fields: f})
	}
	return out, nil
}

func (r seriesRow) ohlc() (open, high, low, closePrice float64, err error) {
	if open, err = parseFloat("open", r.fields["open"]); err != nil {
		return
	}
	if high, err = parseFloat("high", r.fields["high"]); err != nil {
		return
	}
	if low, err = parseFloat("low", r.fields["low"]); err != nil {
		return
	}
	closePrice, err = parseFloat("close", r.fields["close"])
	return
}

func decodeStockSeries(body []byte) (*StockSeries, error) {
	s, err := decodeSeries(body)
	if err != nil {
		return nil, err
	}
	out := &StockSeries{
		Symbol:   s.meta["symbol"],
		TimeZone: s.meta["time zone"],
		Data:     make([]StockBar, 0, len(s.rows)),
	}
	for _, row := range s.rows {
		bar := StockBar{Time: row.time}
		if bar.Open, bar.High, bar.Low, bar.Close, err = row.ohlc(); err != nil {
			return nil, fmt.Errorf("bar %s: %w", row.time, err)
		}
		if v, ok := row.fields["volume"]; ok && !isMissing(v) {
			if bar.Volume, err = parseVolume(v); err != nil {
				return nil, fmt.Errorf("bar %s: %w", row.time, err)
			}
		}
		if v, ok := row.fields["adjusted close"]; ok {
			if bar.AdjustedClose, err = optionalFloat("adjusted close", v); err != nil {
				return nil, fmt.Errorf("bar %s: %w", row.time, err)
			}
		}
		if v, ok := row.fields["dividend amount"]; ok {
			if bar.Dividend, err = optionalFloat("dividend amount", v); err != nil {
				return nil, fmt.Errorf("bar %s: %w", row.time, err)
			}
		}
		out.Data = append(out.Data, bar)
	}
	return out, nil
}

func decodeForexSeries(body []byte) (*ForexSeries, error) {
	s, err := decodeSeries(body)
	if err != nil {
		return nil, err
	}
	out := &ForexSeries{
		From:     s.meta["from symbol"],
		To:       s.meta["to symbol"],
		TimeZone: s.meta["time zone"],
		Data:     make([]ForexBar, 0, len(s.rows)),
	}
	for _, row := range s.rows {
		bar := ForexBar{Time: row.time}
		if bar.Open, bar.High, bar.Low, bar.Close, err = row.ohlc(); err != nil {
			return nil, fmt.Errorf("bar %s: %w", row.time, err)
		}
		out.Data = append(out.Data, bar)
	}
	return out, nil
}

func decodeCryptoSeries(body []byte) (*CryptoSeries, error) {
	s, err := decodeSeries(body)
	if err != nil {
		return nil, err
	}
	out := &CryptoSeries{
		Symbol:   s.meta["digital currency code"],
		Market:   s.meta["market code"],
		TimeZone: s.meta["time zone"],
		Data:     make([]CryptoBar, 0, len(s.rows)),
	}
	for _, row := range s.rows {
		bar := CryptoBar{Time: row.time}
		if bar.Open, bar.High, bar.Low, bar.Close, err = row.ohlc(); err != nil {
			return nil, fmt.Errorf("bar %s: %w", row.time, err)
		}
		if v, ok := row.fields["volume"]; ok && !isMissing(v) {
			if bar.Volume, err = parseFloat("volume", v); err != nil {
				return nil, fmt.Errorf("bar %s: %w", row.time, err)
			}
		}
		out.Data = append(out.Data, bar)
	}
	return out, nil
}

// decodeGlobalQuote returns an empty quote when the vendor sent an empty
// record, which is how unknown symbols come back.
func decodeGlobalQuote(body []byte) (*GlobalQuote, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	raw, ok := obj[globalQuoteKey]
	if err := vendorError(obj, ok); err != nil {
		return nil, err
	}
	if !ok {
		return &GlobalQuote{}, nil
	}
	f, err := fields(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode global quote: %w", err)
	}
	q := &GlobalQuote{
		Symbol:           f["symbol"],
		LatestTradingDay: f["latest trading day"],
		ChangePercent:    f["change percent"],
	}
	if q.Symbol == "" {
		return q, nil
	}

	for name, dst := range map[string]*float64{
		"open":           &q.Open,
		"high":           &q.High,
		"low":            &q.Low,
		"price":          &q.Price,
		"previous close": &q.PreviousClose,
		"change":         &q.Change,
	} {
		v, ok := f[name]
		if !ok || isMissing(v) {
			continue
		}
		if *dst, err = parseFloat(name, v); err != nil {
			return nil, err
		}
	}
	if v, ok := f["volume"]; ok && !isMissing(v) {
		if q.Volume, err = parseVolume(v); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func decodeSymbolSearch(body []byte) ([]SymbolMatch, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	raw, ok := obj[bestMatchesKey]
	if err := vendorError(obj, ok); err != nil {
		return nil, err
	}
	if !ok {
		return []SymbolMatch{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode best matches: %w", err)
	}
	out := make([]SymbolMatch, 0, len(entries))
	for _, entry := range entries {
		f, err := fields(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to decode match: %w", err)
		}
		m := SymbolMatch{
			Symbol:   f["symbol"],
			Name:     f["name"],
			Type:     f["type"],
			Region:   f["region"],
			Currency: f["currency"],
		}
		if v, ok := f["matchscore"]; ok && !isMissing(v) {
			if m.MatchScore, err = parseFloat("matchScore", v); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	return out, nil
}

type earningsPayload struct {
	Symbol string `json:"symbol"`
	Annual []struct {
		FiscalDateEnding string `json:"fiscalDateEnding"`
		ReportedEPS      string `json:"reportedEPS"`
	} `json:"annualEarnings"`
	Quarterly []struct {
		FiscalDateEnding string `json:"fiscalDateEnding"`
		ReportedDate     string `json:"reportedDate"`
		ReportedEPS      string `json:"reportedEPS"`
		EstimatedEPS     string `json:"estimatedEPS"`
	} `json:"quarterlyEarnings"`
}

func decodeEarnings(body []byte) (*EarningsReport, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	_, hasAnnual := obj[annualKey]
	_, hasQuarterly := obj[quarterlyKey]
	if err := vendorError(obj, hasAnnual || hasQuarterly); err != nil {
		return nil, err
	}
	if !hasAnnual && !hasQuarterly {
		return nil, errors.New("no data: response has no earnings")
	}

	var payload earningsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode earnings: %w", err)
	}

	out := &EarningsReport{
		Symbol:    payload.Symbol,
		Annual:    make([]AnnualEarning, 0, len(payload.Annual)),
		Quarterly: make([]QuarterlyEarning, 0, len(payload.Quarterly)),
	}
	for _, a := range payload.Annual {
		eps, err := optionalFloat("reportedEPS", a.ReportedEPS)
		if err != nil {
			return nil, err
		}
		out.Annual = append(out.Annual, AnnualEarning{FiscalDateEnding: a.FiscalDateEnding, ReportedEPS: eps})
	}
	for _, q := range payload.Quarterly {
		reported, err := optionalFloat("reportedEPS", q.ReportedEPS)
		if err != nil {
			return nil, err
		}
		estimated, err := optionalFloat("estimatedEPS", q.EstimatedEPS)
		if err != nil {
			return nil, err
		}
		out.Quarterly = append(out.Quarterly, QuarterlyEarning{
			FiscalDateEnding: q.FiscalDateEnding,
			ReportedDate:     q.ReportedDate,
			ReportedEPS:      reported,
			EstimatedEPS:     estimated,
		})
	}
	return out, nil
}
