package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PeriodKind int

const (
	PeriodYear PeriodKind = iota
	PeriodQuarter
	PeriodDate
)

// Period is a fiscal reporting period: a year, a quarter of a year, or a
// calendar date.
type Period struct {
	Kind    PeriodKind
	Year    int
	Quarter int
	Date    time.Time
}

// ParsePeriod accepts "2024", "2024Q1" (or "2024-Q1") and "2024-03-31".
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return Period{Kind: PeriodDate, Year: d.Year(), Date: d}, nil
	}
	upper := strings.ToUpper(s)
	if idx := strings.IndexByte(upper, 'Q'); idx > 0 {
		year, yerr := strconv.Atoi(strings.TrimSuffix(upper[:idx], "-"))
		quarter, qerr := strconv.Atoi(upper[idx+1:])
		if yerr == nil && qerr == nil && quarter >= 1 && quarter <= 4 {
			return Period{Kind: PeriodQuarter, Year: year, Quarter: quarter}, nil
		}
	}
	if len(s) == 4 {
		if year, err := strconv.Atoi(s); err == nil {
			return Period{Kind: PeriodYear, Year: year}, nil
		}
	}
	return Period{}, InvalidArg(fmt.Sprintf("invalid period: '%s'", s))
}

func (p Period) String() string {
	switch p.Kind {
	case PeriodQuarter:
		return fmt.Sprintf("%dQ%d", p.Year, p.Quarter)
	case PeriodDate:
		return p.Date.Format("2006-01-02")
	default:
		return strconv.Itoa(p.Year)
	}
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

type EarningsYear struct {
	Year     int    `json:"year"`
	Revenue  *Money `json:"revenue,omitempty"`
	Earnings *Money `json:"earnings,omitempty"`
}

type EarningsQuarter struct {
	Period   Period `json:"period"`
	Revenue  *Money `json:"revenue,omitempty"`
	Earnings *Money `json:"earnings,omitempty"`
}

type EarningsQuarterEps struct {
	Period   Period `json:"period"`
	Actual   *Money `json:"actual,omitempty"`
	Estimate *Money `json:"estimate,omitempty"`
}

type Earnings struct {
	Yearly       []EarningsYear       `json:"yearly"`
	Quarterly    []EarningsQuarter    `json:"quarterly"`
	QuarterlyEPS []EarningsQuarterEps `json:"quarterly_eps"`
}
