package domain

import (
	"fmt"
	"strings"
	"time"
)

// Interval is the granularity of a candle series.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval2m  Interval = "2m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval90m Interval = "90m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
	Interval5d  Interval = "5d"
	Interval1w  Interval = "1w"
	Interval1mo Interval = "1mo"
	Interval3mo Interval = "3mo"
)

var intervalMinutes = map[Interval]int{
	Interval1m:  1,
	Interval2m:  2,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval90m: 90,
	Interval1h:  60,
}

var intervals = []Interval{
	Interval1m, Interval2m, Interval5m, Interval15m, Interval30m, Interval90m,
	Interval1h, Interval1d, Interval5d, Interval1w, Interval1mo, Interval3mo,
}

func ParseInterval(s string) (Interval, error) {
	iv := Interval(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range intervals {
		if iv == known {
			return iv, nil
		}
	}
	return "", InvalidArg(fmt.Sprintf("unknown interval: '%s'", s))
}

// IsIntraday reports whether the interval is measured in minutes.
func (i Interval) IsIntraday() bool {
	_, ok := intervalMinutes[i]
	return ok
}

// Minutes returns the length of an intraday interval.
func (i Interval) Minutes() (int, bool) {
	m, ok := intervalMinutes[i]
	return m, ok
}

// Range is a lookback window ending now.
type Range string

const (
	Range1d  Range = "1d"
	Range5d  Range = "5d"
	Range1mo Range = "1mo"
	Range3mo Range = "3mo"
	Range6mo Range = "6mo"
	Range1y  Range = "1y"
	Range2y  Range = "2y"
	Range5y  Range = "5y"
	Range10y Range = "10y"
	RangeYTD Range = "ytd"
	RangeMax Range = "max"
)

// rangeOffsets holds the (years, months, days) each range reaches back.
var rangeOffsets = map[Range][3]int{
	Range1d:  {0, 0, -1},
	Range5d:  {0, 0, -5},
	Range1mo: {0, -1, 0},
	Range3mo: {0, -3, 0},
	Range6mo: {0, -6, 0},
	Range1y:  {-1, 0, 0},
	Range2y:  {-2, 0, 0},
	Range5y:  {-5, 0, 0},
	Range10y: {-10, 0, 0},
}

func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rangeOffsets[r]; ok || r == RangeYTD || r == RangeMax {
		return r, nil
	}
	return "", InvalidArg(fmt.Sprintf("unknown range: '%s'", s))
}

// HistoryRequest asks for candles at one interval over either a range or an
// explicit period. AutoAdjust defaults to true.
type HistoryRequest struct {
	interval   Interval
	rng        Range
	start      time.Time
	end        time.Time
	autoAdjust bool
}

// NewHistoryRequestFromRange builds a request covering rng.
func NewHistoryRequestFromRange(rng Range, interval Interval) (HistoryRequest, error) {
	if _, err := ParseRange(string(rng)); err != nil {
		return HistoryRequest{}, err
	}
	if _, err := ParseInterval(string(interval)); err != nil {
		return HistoryRequest{}, err
	}
	return HistoryRequest{interval: interval, rng: rng, autoAdjust: true}, nil
}

// NewHistoryRequestFromPeriod builds a request covering [start, end).
func NewHistoryRequestFromPeriod(start, end time.Time, interval Interval) (HistoryRequest, error) {
	if !start.Before(end) {
		return HistoryRequest{}, InvalidArg(fmt.Sprintf("period start %s must be before end %s",
			start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)))
	}
	if _, err := ParseInterval(string(interval)); err != nil {
		return HistoryRequest{}, err
	}
	return HistoryRequest{interval: interval, start: start.UTC(), end: end.UTC(), autoAdjust: true}, nil
}

// WithAutoAdjust returns a copy with the adjustment flag set.
func (r HistoryRequest) WithAutoAdjust(adjust bool) HistoryRequest {
	r.autoAdjust = adjust
	return r
}

func (r HistoryRequest) Interval() Interval {
	return r.interval
}

// Range returns the lookback range, or "" for period requests.
func (r HistoryRequest) Range() Range {
	return r.rng
}

func (r HistoryRequest) AutoAdjust() bool {
	return r.autoAdjust
}

// Window maps the request onto calendar bounds relative to now.
func (r HistoryRequest) Window(now time.Time) (time.Time, time.Time) {
	if r.rng == "" {
		return r.start, r.end
	}
	now = now.UTC()
	switch r.rng {
	case RangeYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now
	case RangeMax:
		return time.Unix(0, 0).UTC(), now
	}
	off := rangeOffsets[r.rng]
	return now.AddDate(off[0], off[1], off[2]), now
}
