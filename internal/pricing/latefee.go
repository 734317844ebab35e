package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toolhire-pricing/internal/domain"
)

// LateFeeTable computes late fees from banded rate rows. Bands are
// independent: a three-hour lateness is billed entirely by the 1-4h
// band, not stacked across bands.
type LateFeeTable struct {
	rows []domain.LateFeeRow
}

// NewLateFeeTable wraps the loaded late-fee rows.
func NewLateFeeTable(rows []domain.LateFeeRow) *LateFeeTable {
	return &LateFeeTable{rows: rows}
}

// Calculate returns the late fee for a membership level and lateness.
// Hourly bands bill fractional hours at the level's per-hour rate; day
// bands bill the supplied day rate times the level's factor. Lateness
// up to one hour is free. A band with no usable rate suppresses the
// fee rather than erroring.
func (t *LateFeeTable) Calculate(level domain.MembershipLevel, late time.Duration, dayRate domain.Money) domain.Money {
	if late <= time.Hour {
		return domain.MoneyZero
	}

	hours := decimal.NewFromFloat(late.Hours())

	switch {
	case late <= 4*time.Hour:
		if perHour, ok := t.perHour("1-4", level); ok {
			return perHour.Mul(hours)
		}
	case late <= 24*time.Hour:
		if perHour, ok := t.perHour("4-24", level); ok {
			return perHour.Mul(hours)
		}
	case late <= 3*24*time.Hour:
		if factor, ok := t.dayFactor("1-3", level); ok {
			return dayRate.Mul(factor)
		}
	default:
		if factor, ok := t.dayFactor("3+", level); ok {
			return dayRate.Mul(factor)
		}
	}
	return domain.MoneyZero
}

// normalizeBand folds the en-dash spelling into a plain hyphen so that
// "1–4" and "1-4" label variants match the same band.
func normalizeBand(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "–", "-"))
}

func (t *LateFeeTable) perHour(band string, level domain.MembershipLevel) (domain.Money, bool) {
	for _, r := range t.rows {
		if len(r.PerHour) == 0 {
			continue
		}
		if !strings.Contains(normalizeBand(r.Band), band) {
			continue
		}
		rate := r.PerHourFor(level)
		return rate, rate.IsPositive()
	}
	return domain.MoneyZero, false
}

func (t *LateFeeTable) dayFactor(band string, level domain.MembershipLevel) (decimal.Decimal, bool) {
	for _, r := range t.rows {
		if len(r.DayFactor) == 0 {
			continue
		}
		if !strings.Contains(normalizeBand(r.Band), band) {
			continue
		}
		factor := r.DayFactorFor(level)
		return factor, factor.IsPositive()
	}
	return decimal.Decimal{}, false
}
