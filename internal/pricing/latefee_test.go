package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"toolhire-pricing/internal/domain"
)

func testLateFeeRows(dash string) []domain.LateFeeRow {
	perHour := func(amount int64) map[domain.MembershipLevel]domain.Money {
		return map[domain.MembershipLevel]domain.Money{
			domain.MembershipPayAsYouGo: domain.NewMoney(amount + 2),
			domain.MembershipPlus:       domain.NewMoney(amount),
		}
	}
	factors := func(f float64) map[domain.MembershipLevel]decimal.Decimal {
		return map[domain.MembershipLevel]decimal.Decimal{
			domain.MembershipPlus: decimal.NewFromFloat(f),
		}
	}
	return []domain.LateFeeRow{
		{Band: "1" + dash + "4 h", PerHour: perHour(4)},
		{Band: "4" + dash + "24 h", PerHour: perHour(3)},
		{Band: "1" + dash + "3 days", DayFactor: factors(1.5)},
		{Band: "3+ days", DayFactor: factors(2.2)},
	}
}

func TestLateFeeBands(t *testing.T) {
	table := NewLateFeeTable(testLateFeeRows("-"))
	dayRate := domain.NewMoney(28)

	hoursOf := func(d time.Duration) decimal.Decimal {
		return decimal.NewFromFloat(d.Hours())
	}

	tests := []struct {
		name     string
		late     time.Duration
		expected domain.Money
	}{
		{"Exactly one hour is free", time.Hour, domain.MoneyZero},
		{"One second past an hour bills the 1-4 band", time.Hour + time.Second,
			domain.NewMoney(4).Mul(hoursOf(time.Hour + time.Second))},
		{"Three hours in the 1-4 band", 3 * time.Hour, domain.NewMoney(12)},
		{"Exactly four hours stays in the 1-4 band", 4 * time.Hour, domain.NewMoney(16)},
		{"Five hours moves to the 4-24 band", 5 * time.Hour, domain.NewMoney(15)},
		{"Exactly 24 hours stays hourly", 24 * time.Hour, domain.NewMoney(72)},
		{"One second past 24 hours bills the day factor", 24*time.Hour + time.Second,
			domain.NewMoney(28).Mul(decimal.NewFromFloat(1.5))},
		{"Exactly three days stays in the 1-3 band", 72 * time.Hour,
			domain.NewMoney(28).Mul(decimal.NewFromFloat(1.5))},
		{"Past three days bills the 3+ factor", 72*time.Hour + time.Second,
			domain.NewMoney(28).Mul(decimal.NewFromFloat(2.2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := table.Calculate(domain.MembershipPlus, tt.late, dayRate)
			assert.True(t, fee.Equal(tt.expected), "got %s want %s", fee, tt.expected)
		})
	}
}

func TestLateFeeBandDashTolerance(t *testing.T) {
	hyphen := NewLateFeeTable(testLateFeeRows("-"))
	enDash := NewLateFeeTable(testLateFeeRows("–"))
	dayRate := domain.NewMoney(28)

	for _, late := range []time.Duration{3 * time.Hour, 10 * time.Hour, 2 * 24 * time.Hour, 5 * 24 * time.Hour} {
		a := hyphen.Calculate(domain.MembershipPlus, late, dayRate)
		b := enDash.Calculate(domain.MembershipPlus, late, dayRate)
		assert.True(t, a.Equal(b), "late %s: %s vs %s", late, a, b)
	}
}

func TestLateFeeMissingDataSuppressesFee(t *testing.T) {
	dayRate := domain.NewMoney(28)

	t.Run("Empty table", func(t *testing.T) {
		table := NewLateFeeTable(nil)
		assert.True(t, table.Calculate(domain.MembershipPlus, 3*time.Hour, dayRate).IsZero())
	})

	t.Run("Level without an hourly rate", func(t *testing.T) {
		table := NewLateFeeTable(testLateFeeRows("-"))
		// Contractor has no per-hour entry in the fixture.
		assert.True(t, table.Calculate(domain.MembershipContractor, 3*time.Hour, dayRate).IsZero())
	})

	t.Run("Level without a day factor falls back to zero fee", func(t *testing.T) {
		rows := []domain.LateFeeRow{{
			Band:      "1-3 days",
			DayFactor: map[domain.MembershipLevel]decimal.Decimal{},
		}}
		table := NewLateFeeTable(rows)
		assert.True(t, table.Calculate(domain.MembershipPlus, 48*time.Hour, dayRate).IsZero())
	})
}
