package domain

import (
	"fmt"
	"strings"
)

// Exchange is a venue code such as "NASDAQ" or "LSE".
type Exchange string

// exchangeAliases maps codes and the region names vendors report to a code.
var exchangeAliases = map[string]Exchange{
	"US":              "US",
	"UNITED STATES":   "US",
	"NASDAQ":          "NASDAQ",
	"NYSE":            "NYSE",
	"AMEX":            "AMEX",
	"LSE":             "LSE",
	"LONDON":          "LSE",
	"UNITED KINGDOM":  "LSE",
	"XETRA":           "XETRA",
	"FRANKFURT":       "FRA",
	"FRA":             "FRA",
	"TSX":             "TSX",
	"TORONTO":         "TSX",
	"TSXV":            "TSXV",
	"TORONTO VENTURE": "TSXV",
	"EURONEXT":        "EURONEXT",
	"PARIS":           "EPA",
	"EPA":             "EPA",
	"AMSTERDAM":       "AMS",
	"AMS":             "AMS",
	"TOKYO":           "TYO",
	"TYO":             "TYO",
	"HONG KONG":       "HKEX",
	"HKEX":            "HKEX",
	"INDIA/BOMBAY":    "BSE",
	"BSE":             "BSE",
	"NSE":             "NSE",
}

// ParseExchange resolves a venue code or region name, case-insensitively.
func ParseExchange(s string) (Exchange, bool) {
	ex, ok := exchangeAliases[strings.ToUpper(strings.TrimSpace(s))]
	return ex, ok
}

// SearchRequest is a free-text symbol lookup, optionally restricted to one
// asset kind and capped at a number of results.
type SearchRequest struct {
	query    string
	kind     AssetKind
	limit    int
	hasLimit bool
}

type SearchOption func(*SearchRequest)

// WithKind keeps only results classified as kind.
func WithKind(kind AssetKind) SearchOption {
	return func(r *SearchRequest) {
		r.kind = kind
	}
}

// WithLimit caps the number of results.
func WithLimit(limit int) SearchOption {
	return func(r *SearchRequest) {
		r.limit = limit
		r.hasLimit = true
	}
}

func NewSearchRequest(query string, options ...SearchOption) (SearchRequest, error) {
	req := SearchRequest{query: strings.TrimSpace(query)}
	for _, option := range options {
		option(&req)
	}
	if req.query == "" {
		return SearchRequest{}, InvalidArg("search query must not be empty")
	}
	if req.hasLimit && req.limit <= 0 {
		return SearchRequest{}, InvalidArg(fmt.Sprintf("search limit must be positive, got %d", req.limit))
	}
	return req, nil
}

func (r SearchRequest) Query() string {
	return r.query
}

// Kind returns the requested asset kind, if any.
func (r SearchRequest) Kind() (AssetKind, bool) {
	return r.kind, r.kind != ""
}

// Limit returns the result cap, if any.
func (r SearchRequest) Limit() (int, bool) {
	return r.limit, r.hasLimit
}

type SearchResult struct {
	Symbol   Symbol    `json:"symbol"`
	Name     *string   `json:"name,omitempty"`
	Exchange *Exchange `json:"exchange,omitempty"`
	Kind     AssetKind `json:"kind"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
