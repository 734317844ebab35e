package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Credits is a non-negative loyalty credit amount.
type Credits int

// CreditsZero is the zero credit amount.
const CreditsZero Credits = 0

// CreditsFromString parses rate-table text by keeping digits only
// ("120 cr" -> 120). Unparseable text yields zero.
func CreditsFromString(s string) Credits {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return CreditsZero
	}
	return Credits(v)
}

// CreditsFromMoney converts a monetary amount to credits at the given
// rate, rounding half away from zero.
func CreditsFromMoney(m Money, rate decimal.Decimal) Credits {
	return Credits(m.Amount.Mul(rate).Round(0).IntPart())
}

func (c Credits) Add(other Credits) Credits {
	return c + other
}

// Sub clamps at zero; a credit balance can never go negative.
func (c Credits) Sub(other Credits) Credits {
	if other >= c {
		return CreditsZero
	}
	return c - other
}

func (c Credits) Int() int {
	return int(c)
}

func (c Credits) String() string {
	return strconv.Itoa(int(c)) + " cr"
}
