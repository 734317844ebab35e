package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"toolhire-pricing/internal/domain"
)

// Context is the immutable snapshot a discount stage prices against.
// The pipeline forwards a copy with Price updated to the next stage;
// every other field stays fixed for the whole run.
type Context struct {
	Membership  domain.MembershipLevel
	Tier        domain.ToolTier
	Window      domain.TimeWindow
	Price       domain.Money // running price
	StartUTC    time.Time
	EndUTC      time.Time
	CleanReturn bool
	EarlyReturn bool
	// WeekendPackage marks a weekend-window booking.
	WeekendPackage bool
	// Season is the start month's name, for reporting.
	Season string
}

// Result is one stage's output: the re-priced running total and the
// credits that stage earned.
type Result struct {
	PriceAfter    domain.Money
	CreditsEarned domain.Credits
}

// Stage is one link of the discount pipeline.
type Stage interface {
	Apply(ctx Context) Result
}

// Pipeline runs its stages in a fixed order, threading each stage's
// price into the next. The returned Result is the final stage's own:
// the price has compounded through every stage, but the credits are
// the last stage's contribution only. Upstream stage credits are
// dropped; invoices depend on that behavior.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a pipeline over the given stages. Order is
// load-bearing: membership, seasonal, time window, behavior bonus.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Apply runs the context through every stage.
func (p *Pipeline) Apply(ctx Context) Result {
	res := Result{PriceAfter: ctx.Price}
	for _, s := range p.stages {
		res = s.Apply(ctx)
		ctx.Price = res.PriceAfter
	}
	return res
}

// MembershipStage discounts the running price by the member's
// percentage. It never contributes credits.
type MembershipStage struct {
	discounts map[domain.MembershipLevel]decimal.Decimal
}

// NewMembershipStage indexes discount rates by level.
func NewMembershipStage(rows []domain.MembershipRow) *MembershipStage {
	m := make(map[domain.MembershipLevel]decimal.Decimal, len(rows))
	for _, r := range rows {
		m[r.Level] = r.DiscountPercent
	}
	return &MembershipStage{discounts: m}
}

func (s *MembershipStage) Apply(ctx Context) Result {
	rate := s.discounts[ctx.Membership] // zero for unknown levels
	price := ctx.Price.Mul(decimal.NewFromInt(1).Sub(rate))
	return Result{PriceAfter: price}
}

// SeasonalStage applies every seasonal offer whose date range overlaps
// the rental, in table order: percent-off offers compound the price,
// double-credit offers convert the current price to bonus credits.
type SeasonalStage struct {
	seasons []domain.SeasonRow
}

func NewSeasonalStage(rows []domain.SeasonRow) *SeasonalStage {
	return &SeasonalStage{seasons: rows}
}

func (s *SeasonalStage) Apply(ctx Context) Result {
	price := ctx.Price
	bonus := domain.CreditsZero

	for _, row := range s.seasons {
		if !row.ActiveDuring(ctx.StartUTC, ctx.EndUTC) {
			continue
		}
		switch row.Type {
		case domain.SeasonPricePercentOff:
			price = price.Mul(decimal.NewFromInt(1).Sub(row.PercentOff))
		case domain.SeasonDoubleCredits:
			bonus = bonus.Add(domain.CreditsFromMoney(price, row.DoubleCredRate))
		}
	}
	return Result{PriceAfter: price, CreditsEarned: bonus}
}

// TimeWindowStage applies the first matching time-window row's price
// multiplier and bonus-rate credits. No match means multiplier 1 and
// no bonus.
type TimeWindowStage struct {
	windows []domain.TimeWindowRow
}

func NewTimeWindowStage(rows []domain.TimeWindowRow) *TimeWindowStage {
	return &TimeWindowStage{windows: rows}
}

func (s *TimeWindowStage) Apply(ctx Context) Result {
	multiplier := decimal.NewFromInt(1)
	bonusRate := decimal.Decimal{}
	for _, w := range s.windows {
		if w.Matches(ctx.StartUTC, ctx.EndUTC) {
			multiplier = w.PriceMultiplier
			bonusRate = w.BonusRate
			break
		}
	}
	price := ctx.Price.Mul(multiplier)
	return Result{
		PriceAfter:    price,
		CreditsEarned: domain.CreditsFromMoney(price, bonusRate),
	}
}

// BonusRules holds the behavior bonus constants.
type BonusRules struct {
	// EarlyReturnPercent of the rental cost earns credits on an early
	// return, converted at EarlyReturnMultiplier credits per unit.
	EarlyReturnPercent    decimal.Decimal
	EarlyReturnMultiplier decimal.Decimal
	CleanReturnBonus      domain.Credits
}

// DefaultBonusRules returns the contractual defaults: 10% of cost at
// 5 credits per unit for early returns, 20 credits for clean ones.
func DefaultBonusRules() BonusRules {
	return BonusRules{
		EarlyReturnPercent:    decimal.NewFromFloat(0.10),
		EarlyReturnMultiplier: decimal.NewFromInt(5),
		CleanReturnBonus:      domain.Credits(20),
	}
}

// EarlyReturnCredits converts a rental cost to early-return credits.
func (r BonusRules) EarlyReturnCredits(cost domain.Money) domain.Credits {
	return domain.CreditsFromMoney(cost, r.EarlyReturnPercent.Mul(r.EarlyReturnMultiplier))
}

// BehaviorBonusStage grants credits for early and clean returns. The
// price passes through unchanged.
type BehaviorBonusStage struct {
	rules BonusRules
}

func NewBehaviorBonusStage(rules BonusRules) *BehaviorBonusStage {
	return &BehaviorBonusStage{rules: rules}
}

func (s *BehaviorBonusStage) Apply(ctx Context) Result {
	earned := domain.CreditsZero
	if ctx.EarlyReturn {
		earned = earned.Add(s.rules.EarlyReturnCredits(ctx.Price))
	}
	if ctx.CleanReturn {
		earned = earned.Add(s.rules.CleanReturnBonus)
	}
	return Result{PriceAfter: ctx.Price, CreditsEarned: earned}
}
