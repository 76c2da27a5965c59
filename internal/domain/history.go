package domain

import "time"

// Candle is one OHLCV observation at a UTC instant.
type Candle struct {
	Time       time.Time `json:"ts"`
	Open       Money     `json:"open"`
	High       Money     `json:"high"`
	Low        Money     `json:"low"`
	Close      Money     `json:"close"`
	CloseUnadj *Money    `json:"close_unadj,omitempty"`
	Volume     *uint64   `json:"volume,omitempty"`
}

type ActionKind string

const ActionDividend ActionKind = "dividend"

// Action is a corporate action attached to a history response.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Time   time.Time  `json:"ts"`
	Amount Money      `json:"amount"`
}

func NewDividend(ts time.Time, amount Money) Action {
	return Action{Kind: ActionDividend, Time: ts, Amount: amount}
}

// HistoryMeta describes how the series timestamps were resolved.
type HistoryMeta struct {
	// Timezone is the IANA zone the vendor reported, empty when it was
	// absent or unknown and timestamps were read as UTC.
	Timezone         string `json:"timezone,omitempty"`
	UTCOffsetSeconds *int   `json:"utc_offset_seconds,omitempty"`
}

// HistoryResponse holds candles in ascending time order. Duplicate instants
// are kept as delivered.
type HistoryResponse struct {
	Candles  []Candle     `json:"candles"`
	Actions  []Action     `json:"actions"`
	Adjusted bool         `json:"adjusted"`
	Meta     *HistoryMeta `json:"meta,omitempty"`
}
