package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rate rows are the parsed, immutable forms of the five rate tables.
// The pricing core consumes them read-only; loading lives in the
// repository layer.

// MembershipRow is one row of the membership table.
type MembershipRow struct {
	Level           MembershipLevel
	Fee             Money
	MonthlyCredits  Credits
	DiscountPercent decimal.Decimal // 0.05 for "5%"
}

// ToolRow is one row of the tool category table: one price per time
// window plus the tier's base credit grant.
type ToolRow struct {
	Tier         ToolTier
	Price4h      Money
	PriceDay     Money
	PriceWeekend Money
	PriceWeek    Money
	BaseCredits  Credits
}

// SeasonType distinguishes the two seasonal offer kinds.
type SeasonType int

const (
	SeasonPricePercentOff SeasonType = iota
	SeasonDoubleCredits
)

// SeasonRow is one seasonal offer with its active date range.
type SeasonRow struct {
	Name           string
	Type           SeasonType
	PercentOff     decimal.Decimal // 0.15 for "15% off"
	DoubleCredRate decimal.Decimal // credit conversion rate for double-credit offers
	From           time.Time
	To             time.Time
}

// ActiveDuring reports whether the offer's range overlaps the rental
// period by calendar date, inclusive on both ends.
func (s SeasonRow) ActiveDuring(start, end time.Time) bool {
	return !dateOf(start).After(dateOf(s.To)) && !dateOf(end).Before(dateOf(s.From))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TimeWindowRow is one row of the time-window table: a price
// multiplier and a credit bonus rate behind a label-driven matcher.
type TimeWindowRow struct {
	Label           string
	PriceMultiplier decimal.Decimal
	BonusRate       decimal.Decimal
	Availability    string
}

// Matches reports whether this row's rule accepts the rental period.
// The rule is selected by label marker; rows are evaluated in table
// order and the first match wins, so marker precedence here is
// load-bearing.
func (w TimeWindowRow) Matches(start, end time.Time) bool {
	label := strings.ToLower(w.Label)
	switch {
	case strings.Contains(label, "long-term"):
		return end.Sub(start) >= 28*24*time.Hour
	case strings.Contains(label, "weekend package"):
		return isWeekendPackage(start, end)
	case strings.Contains(label, "weekend standard"):
		return start.Weekday() == time.Saturday || start.Weekday() == time.Sunday
	case strings.HasPrefix(label, "evening"):
		return start.Hour() >= 18 && start.Hour() < 22
	default:
		// Business-hours row: weekday start between 08:00 and 18:00.
		wd := start.Weekday()
		return wd >= time.Monday && wd <= time.Friday && start.Hour() >= 8 && start.Hour() < 18
	}
}

func isWeekendPackage(start, end time.Time) bool {
	return start.Weekday() == time.Friday && start.Hour() >= 18 &&
		end.Weekday() == time.Monday && end.Hour() <= 8
}

// LateFeeRow is one late-fee band. A row carries either per-hour rates
// or day factors, never both: hourly bands charge per started hour of
// lateness, day bands charge a multiple of the tool's day rate.
type LateFeeRow struct {
	Band      string
	PerHour   map[MembershipLevel]Money
	DayFactor map[MembershipLevel]decimal.Decimal
}

// PerHourFor returns the band's hourly rate for a level, zero when the
// level has no entry.
func (r LateFeeRow) PerHourFor(level MembershipLevel) Money {
	if m, ok := r.PerHour[level]; ok {
		return m
	}
	return MoneyZero
}

// DayFactorFor returns the band's day factor for a level, 1 when the
// level has no entry.
func (r LateFeeRow) DayFactorFor(level MembershipLevel) decimal.Decimal {
	if f, ok := r.DayFactor[level]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}
