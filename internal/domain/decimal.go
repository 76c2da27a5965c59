package domain

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
)

// Decimal is a wrapper around apd.Decimal so canonical prices keep the exact
// digits the vendor sent instead of a binary floating-point approximation.
type Decimal struct {
	apd.Decimal
}

// NewDecimalFromString creates a Decimal from a string
func NewDecimalFromString(v string) (Decimal, error) {
	d := Decimal{}
	_, _, err := d.SetString(v)
	if err != nil {
		return d, fmt.Errorf("invalid decimal string %s: %w", v, err)
	}
	return d, nil
}

// NewDecimalFromFloat converts v through its shortest textual form, so 123.0
// becomes 123 and 0.1 becomes 0.1 rather than 0.1000000000000000055511151231257827.
func NewDecimalFromFloat(v float64) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}, fmt.Errorf("non-finite float %v cannot be represented as a decimal", v)
	}
	return NewDecimalFromString(decimal.NewFromFloat(v).String())
}

// String implements the fmt.Stringer interface.
func (d Decimal) String() string {
	return d.Decimal.String()
}

func (d Decimal) Equal(other Decimal) bool {
	return d.Decimal.Cmp(&other.Decimal) == 0
}

// MarshalJSON implements the json.Marshaler interface.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
