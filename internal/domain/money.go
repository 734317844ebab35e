package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact-decimal monetary amount. The currency is implicit;
// all tables and fees are quoted in the same unit.
type Money struct {
	Amount decimal.Decimal
}

// MoneyZero is the zero amount.
var MoneyZero = Money{}

// NewMoney builds a Money from whole units.
func NewMoney(units int64) Money {
	return Money{Amount: decimal.NewFromInt(units)}
}

// NewMoneyFromDecimal wraps an exact decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Amount: d}
}

// MoneyFromString parses free-form rate-table text into an amount. It
// strips currency symbols and thousands separators, then takes the last
// token (cells like "deposit = 35" appear in source tables). Anything
// unparseable yields zero, never an error.
func MoneyFromString(s string) Money {
	if strings.TrimSpace(s) == "" {
		return MoneyZero
	}
	clean := strings.ReplaceAll(s, "£", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	tokens := strings.FieldsFunc(clean, func(r rune) bool {
		return r == ' ' || r == '+' || r == '=' || r == '/'
	})
	if len(tokens) == 0 {
		return MoneyZero
	}
	d, err := decimal.NewFromString(tokens[len(tokens)-1])
	if err != nil {
		return MoneyZero
	}
	return Money{Amount: d}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount)}
}

// Mul scales the amount by an exact decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor)}
}

// MulFloat scales by a float factor, converting it exactly once.
func (m Money) MulFloat(factor float64) Money {
	return m.Mul(decimal.NewFromFloat(factor))
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount)
}

// String renders as "£n" with up to two decimal places, trailing zeros
// trimmed.
func (m Money) String() string {
	s := m.Amount.Round(2).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return "£" + s
}
