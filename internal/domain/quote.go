package domain

// MarketState is the trading session a quote was taken in.
type MarketState string

// Quote is a point-in-time price snapshot for one instrument.
type Quote struct {
	Symbol        Symbol       `json:"symbol"`
	ShortName     *string      `json:"shortname,omitempty"`
	Price         *Money       `json:"price,omitempty"`
	PreviousClose *Money       `json:"previous_close,omitempty"`
	Exchange      *Exchange    `json:"exchange,omitempty"`
	MarketState   *MarketState `json:"market_state,omitempty"`
}
