package alphavantage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.AssetKind
		interval domain.Interval
		adjust   bool
		expected SeriesCall
	}{
		{"equity 1m", domain.AssetKindEquity, domain.Interval1m, false, SeriesCall{Function: FuncIntraday, Interval: "1min"}},
		{"equity 5m adjusted", domain.AssetKindEquity, domain.Interval5m, true, SeriesCall{Function: FuncIntraday, Interval: "5min", Adjusted: true}},
		{"equity 15m", domain.AssetKindEquity, domain.Interval15m, false, SeriesCall{Function: FuncIntraday, Interval: "15min"}},
		{"equity 30m", domain.AssetKindEquity, domain.Interval30m, false, SeriesCall{Function: FuncIntraday, Interval: "30min"}},
		{"equity 1h", domain.AssetKindEquity, domain.Interval1h, false, SeriesCall{Function: FuncIntraday, Interval: "60min"}},
		{"equity daily raw", domain.AssetKindEquity, domain.Interval1d, false, SeriesCall{Function: FuncDaily}},
		{"equity daily adjusted", domain.AssetKindEquity, domain.Interval1d, true, SeriesCall{Function: FuncDailyAdjusted}},
		{"equity weekly raw", domain.AssetKindEquity, domain.Interval1w, false, SeriesCall{Function: FuncWeekly}},
		{"equity weekly adjusted", domain.AssetKindEquity, domain.Interval1w, true, SeriesCall{Function: FuncWeeklyAdjusted}},
		{"equity monthly raw", domain.AssetKindEquity, domain.Interval1mo, false, SeriesCall{Function: FuncMonthly}},
		{"equity monthly adjusted", domain.AssetKindEquity, domain.Interval1mo, true, SeriesCall{Function: FuncMonthlyAdjusted}},
		{"fund takes equity path", domain.AssetKindFund, domain.Interval1d, true, SeriesCall{Function: FuncDailyAdjusted}},
		{"forex 15m", domain.AssetKindForex, domain.Interval15m, true, SeriesCall{Function: FuncFXIntraday, Interval: "15min"}},
		{"forex daily ignores adjust", domain.AssetKindForex, domain.Interval1d, true, SeriesCall{Function: FuncFXDaily}},
		{"forex weekly", domain.AssetKindForex, domain.Interval1w, false, SeriesCall{Function: FuncFXWeekly}},
		{"forex monthly", domain.AssetKindForex, domain.Interval1mo, false, SeriesCall{Function: FuncFXMonthly}},
		{"crypto daily ignores adjust", domain.AssetKindCrypto, domain.Interval1d, true, SeriesCall{Function: FuncCryptoDaily}},
		{"crypto weekly", domain.AssetKindCrypto, domain.Interval1w, false, SeriesCall{Function: FuncCryptoWeekly}},
		{"crypto monthly", domain.AssetKindCrypto, domain.Interval1mo, false, SeriesCall{Function: FuncCryptoMonthly}},
		{"crypto quarter is monthly", domain.AssetKindCrypto, domain.Interval3mo, false, SeriesCall{Function: FuncCryptoMonthly}},
		{"crypto intraday falls back to daily", domain.AssetKindCrypto, domain.Interval5m, false, SeriesCall{Function: FuncCryptoDaily}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := Translate(tt.kind, tt.interval, tt.adjust)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, call)

			again, err := Translate(tt.kind, tt.interval, tt.adjust)
			require.NoError(t, err)
			assert.Equal(t, call, again)
		})
	}
}

func TestTranslate_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.AssetKind
		interval domain.Interval
		message  string
	}{
		{"equity 2m", domain.AssetKindEquity, domain.Interval2m, "intraday interval for Alpha Vantage"},
		{"equity 90m", domain.AssetKindEquity, domain.Interval90m, "intraday interval for Alpha Vantage"},
		{"forex 2m", domain.AssetKindForex, domain.Interval2m, "intraday interval for Alpha Vantage"},
		{"forex 90m", domain.AssetKindForex, domain.Interval90m, "intraday interval for Alpha Vantage"},
		{"equity 5d", domain.AssetKindEquity, domain.Interval5d, "interval for Alpha Vantage"},
		{"equity 3mo", domain.AssetKindEquity, domain.Interval3mo, "interval for Alpha Vantage"},
		{"forex 3mo", domain.AssetKindForex, domain.Interval3mo, "interval for Alpha Vantage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(tt.kind, tt.interval, false)
			require.ErrorIs(t, err, domain.ErrUnsupported)

			e, ok := domain.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}
