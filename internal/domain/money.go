package domain

import "fmt"

// Currency is an ISO 4217 currency code.
type Currency string

const USD Currency = "USD"

// Money is an exact decimal amount tagged with its currency.
type Money struct {
	Amount   Decimal  `json:"amount"`
	Currency Currency `json:"currency"`
}

func NewMoney(amount Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromString parses the canonical decimal text of an amount.
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := NewDecimalFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d, currency), nil
}

// NewMoneyFromFloat converts a vendor float via its textual representation.
func NewMoneyFromFloat(amount float64, currency Currency) (Money, error) {
	d, err := NewDecimalFromFloat(amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d, currency), nil
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
