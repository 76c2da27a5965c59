package alphavantage

import (
	"fmt"
	"strings"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

var pairDelimiters = []string{"/", "-"}

// ParsePair splits a currency pair symbol into base and quote. "/" is tried
// before "-"; the first occurrence of the chosen delimiter splits.
func ParsePair(symbol string) (string, string, error) {
	for _, delim := range pairDelimiters {
		base, quote, found := strings.Cut(symbol, delim)
		if !found {
			continue
		}
		if base == "" || quote == "" {
			return "", "", domain.InvalidArg(fmt.Sprintf(
				"Invalid forex pair format: '%s' - empty base or quote currency", symbol))
		}
		return base, quote, nil
	}
	return "", "", domain.InvalidArg(fmt.Sprintf(
		"Forex pair for %s must be in 'BASE/QUOTE' format, got: '%s'", VendorName, symbol))
}
