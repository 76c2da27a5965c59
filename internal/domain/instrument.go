package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// AssetKind tags what kind of market an instrument trades in.
type AssetKind string

const (
	AssetKindEquity    AssetKind = "equity"
	AssetKindFund      AssetKind = "fund"
	AssetKindIndex     AssetKind = "index"
	AssetKindForex     AssetKind = "forex"
	AssetKindCrypto    AssetKind = "crypto"
	AssetKindBond      AssetKind = "bond"
	AssetKindCommodity AssetKind = "commodity"
)

var assetKinds = []AssetKind{
	AssetKindEquity,
	AssetKindFund,
	AssetKindIndex,
	AssetKindForex,
	AssetKindCrypto,
	AssetKindBond,
	AssetKindCommodity,
}

// ParseAssetKind parses a kind name case-insensitively.
func ParseAssetKind(s string) (AssetKind, error) {
	k := AssetKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range assetKinds {
		if k == known {
			return k, nil
		}
	}
	return "", InvalidArg(fmt.Sprintf("unknown asset kind: '%s'", s))
}

const maxSymbolLen = 64

// Symbol is a validated trading symbol. Case is preserved as given.
type Symbol string

// NewSymbol validates s: non-empty, at most 64 bytes, and made only of
// letters, digits and the punctuation vendors use in tickers and pairs.
func NewSymbol(s string) (Symbol, error) {
	if s == "" {
		return "", InvalidArg("symbol must not be empty")
	}
	if len(s) > maxSymbolLen {
		return "", InvalidArg(fmt.Sprintf("symbol '%s' exceeds %d characters", s, maxSymbolLen))
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case '.', '-', '/', '^', '=', '_', ':', '&':
			continue
		}
		return "", InvalidArg(fmt.Sprintf("symbol '%s' contains invalid character %q", s, r))
	}
	return Symbol(s), nil
}

func (s Symbol) String() string {
	return string(s)
}

// Instrument is a validated symbol plus the asset kind that decides which
// upstream series shape applies.
type Instrument struct {
	symbol Symbol
	kind   AssetKind
}

func NewInstrument(symbol string, kind AssetKind) (Instrument, error) {
	sym, err := NewSymbol(symbol)
	if err != nil {
		return Instrument{}, err
	}
	return Instrument{symbol: sym, kind: kind}, nil
}

func (i Instrument) Symbol() Symbol {
	return i.symbol
}

func (i Instrument) Kind() AssetKind {
	return i.kind
}
