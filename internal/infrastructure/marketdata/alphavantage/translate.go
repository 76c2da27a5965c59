package alphavantage

import "github.com/jmanzanog/borsa-alphavantage/internal/domain"

// Function is the value of the vendor's "function" query parameter.
type Function string

const (
	FuncGlobalQuote  Function = "GLOBAL_QUOTE"
	FuncSymbolSearch Function = "SYMBOL_SEARCH"
	FuncEarnings     Function = "EARNINGS"

	FuncIntraday        Function = "TIME_SERIES_INTRADAY"
	FuncDaily           Function = "TIME_SERIES_DAILY"
	FuncDailyAdjusted   Function = "TIME_SERIES_DAILY_ADJUSTED"
	FuncWeekly          Function = "TIME_SERIES_WEEKLY"
	FuncWeeklyAdjusted  Function = "TIME_SERIES_WEEKLY_ADJUSTED"
	FuncMonthly         Function = "TIME_SERIES_MONTHLY"
	FuncMonthlyAdjusted Function = "TIME_SERIES_MONTHLY_ADJUSTED"

	FuncFXIntraday Function = "FX_INTRADAY"
	FuncFXDaily    Function = "FX_DAILY"
	FuncFXWeekly   Function = "FX_WEEKLY"
	FuncFXMonthly  Function = "FX_MONTHLY"

	FuncCryptoDaily   Function = "DIGITAL_CURRENCY_DAILY"
	FuncCryptoWeekly  Function = "DIGITAL_CURRENCY_WEEKLY"
	FuncCryptoMonthly Function = "DIGITAL_CURRENCY_MONTHLY"
)

// SeriesCall is the upstream shape chosen for a history request.
type SeriesCall struct {
	Function Function
	// Interval is the intraday code ("5min"); empty for other functions.
	Interval string
	// Adjusted is forwarded as the intraday "adjusted" parameter.
	Adjusted bool
}

var intradayCodes = map[int]string{
	1:  "1min",
	5:  "5min",
	15: "15min",
	30: "30min",
	60: "60min",
}

// stockFunctions holds the {raw, adjusted} function per granularity.
var stockFunctions = map[domain.Interval][2]Function{
	domain.Interval1d:  {FuncDaily, FuncDailyAdjusted},
	domain.Interval1w:  {FuncWeekly, FuncWeeklyAdjusted},
	domain.Interval1mo: {FuncMonthly, FuncMonthlyAdjusted},
}

var forexFunctions = map[domain.Interval]Function{
	domain.Interval1d:  FuncFXDaily,
	domain.Interval1w:  FuncFXWeekly,
	domain.Interval1mo: FuncFXMonthly,
}

var cryptoFunctions = map[domain.Interval]Function{
	domain.Interval1w:  FuncCryptoWeekly,
	domain.Interval1mo: FuncCryptoMonthly,
	domain.Interval3mo: FuncCryptoMonthly,
}

// Translate picks the upstream function and interval code for a history
// request. Kinds other than forex and crypto take the equity path.
func Translate(kind domain.AssetKind, interval domain.Interval, adjust bool) (SeriesCall, error) {
	switch kind {
	case domain.AssetKindForex:
		return translateForex(interval)
	case domain.AssetKindCrypto:
		return translateCrypto(interval), nil
	default:
		return translateStock(interval, adjust)
	}
}

func translateStock(interval domain.Interval, adjust bool) (SeriesCall, error) {
	if interval.IsIntraday() {
		code, err := intradayCode(interval)
		if err != nil {
			return SeriesCall{}, err
		}
		return SeriesCall{Function: FuncIntraday, Interval: code, Adjusted: adjust}, nil
	}
	fns, ok := stockFunctions[interval]
	if !ok {
		return SeriesCall{}, domain.Unsupported("interval for " + VendorName)
	}
	if adjust {
		return SeriesCall{Function: fns[1]}, nil
	}
	return SeriesCall{Function: fns[0]}, nil
}

func translateForex(interval domain.Interval) (SeriesCall, error) {
	if interval.IsIntraday() {
		code, err := intradayCode(interval)
		if err != nil {
			return SeriesCall{}, err
		}
		return SeriesCall{Function: FuncFXIntraday, Interval: code}, nil
	}
	fn, ok := forexFunctions[interval]
	if !ok {
		return SeriesCall{}, domain.Unsupported("interval for " + VendorName)
	}
	return SeriesCall{Function: fn}, nil
}

// translateCrypto never fails: anything without a weekly or monthly function
// falls back to the daily series.
func translateCrypto(interval domain.Interval) SeriesCall {
	if fn, ok := cryptoFunctions[interval]; ok {
		return SeriesCall{Function: fn}
	}
	return SeriesCall{Function: FuncCryptoDaily}
}

func intradayCode(interval domain.Interval) (string, error) {
	minutes, _ := interval.Minutes()
	code, ok := intradayCodes[minutes]
	if !ok {
		return "", domain.Unsupported("intraday interval for " + VendorName)
	}
	return code, nil
}
