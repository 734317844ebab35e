package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"toolhire-pricing/internal/domain"
)

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func testMemberships() []domain.MembershipRow {
	return []domain.MembershipRow{
		{Level: domain.MembershipPayAsYouGo, DiscountPercent: decimal.Decimal{}},
		{Level: domain.MembershipPlus, DiscountPercent: decimal.NewFromFloat(0.10)},
		{Level: domain.MembershipContractor, DiscountPercent: decimal.NewFromFloat(0.20)},
	}
}

func novemberSeason(percentOff float64) domain.SeasonRow {
	return domain.SeasonRow{
		Name:       "Black November",
		Type:       domain.SeasonPricePercentOff,
		PercentOff: decimal.NewFromFloat(percentOff),
		From:       utc(2025, time.November, 1, 0),
		To:         utc(2025, time.November, 30, 0),
	}
}

func doubleCreditSeason(rate float64) domain.SeasonRow {
	return domain.SeasonRow{
		Name:           "Autumn care",
		Type:           domain.SeasonDoubleCredits,
		DoubleCredRate: decimal.NewFromFloat(rate),
		From:           utc(2025, time.November, 1, 0),
		To:             utc(2025, time.November, 30, 0),
	}
}

func baseContext(price int64) Context {
	return Context{
		Membership: domain.MembershipPlus,
		Tier:       domain.Tier3,
		Window:     domain.WindowWeekend,
		Price:      domain.NewMoney(price),
		StartUTC:   utc(2025, time.November, 7, 18),
		EndUTC:     utc(2025, time.November, 9, 20),
	}
}

func TestMembershipStage(t *testing.T) {
	stage := NewMembershipStage(testMemberships())

	t.Run("Discounts by level", func(t *testing.T) {
		res := stage.Apply(baseContext(100))
		assert.Equal(t, "90", res.PriceAfter.Amount.String())
		assert.Equal(t, domain.CreditsZero, res.CreditsEarned)
	})

	t.Run("Unknown level pays full price", func(t *testing.T) {
		ctx := baseContext(100)
		ctx.Membership = domain.MembershipPro // not in the table
		res := stage.Apply(ctx)
		assert.Equal(t, "100", res.PriceAfter.Amount.String())
	})
}

func TestSeasonalStage(t *testing.T) {
	t.Run("Percent off compounds in table order", func(t *testing.T) {
		stage := NewSeasonalStage([]domain.SeasonRow{novemberSeason(0.20), novemberSeason(0.10)})
		res := stage.Apply(baseContext(100))
		// 100 * 0.8 * 0.9
		assert.Equal(t, "72", res.PriceAfter.Amount.String())
	})

	t.Run("Double credits convert the running price", func(t *testing.T) {
		stage := NewSeasonalStage([]domain.SeasonRow{novemberSeason(0.20), doubleCreditSeason(0.5)})
		res := stage.Apply(baseContext(100))
		// Credits computed on the already discounted 80.
		assert.Equal(t, "80", res.PriceAfter.Amount.String())
		assert.Equal(t, domain.Credits(40), res.CreditsEarned)
	})

	t.Run("Inactive seasons are skipped", func(t *testing.T) {
		summer := novemberSeason(0.50)
		summer.From = utc(2025, time.June, 1, 0)
		summer.To = utc(2025, time.August, 31, 0)
		stage := NewSeasonalStage([]domain.SeasonRow{summer})
		res := stage.Apply(baseContext(100))
		assert.Equal(t, "100", res.PriceAfter.Amount.String())
	})
}

func TestTimeWindowStage(t *testing.T) {
	rows := []domain.TimeWindowRow{
		{Label: "Weekend Package", PriceMultiplier: decimal.NewFromFloat(1.2), BonusRate: decimal.NewFromFloat(0.10)},
		{Label: "Weekend Standard", PriceMultiplier: decimal.NewFromFloat(1.3), BonusRate: decimal.NewFromFloat(0.05)},
	}
	stage := NewTimeWindowStage(rows)

	t.Run("First matching row wins", func(t *testing.T) {
		// Friday 19:00 to Monday 07:00 satisfies the package rule; the
		// package row is listed first, so its multiplier applies.
		ctx := baseContext(100)
		ctx.StartUTC = utc(2025, time.November, 7, 19)
		ctx.EndUTC = utc(2025, time.November, 10, 7)
		res := stage.Apply(ctx)
		assert.Equal(t, "120", res.PriceAfter.Amount.String())
		assert.Equal(t, domain.Credits(12), res.CreditsEarned)
	})

	t.Run("Saturday start falls through to the standard row", func(t *testing.T) {
		ctx := baseContext(100)
		ctx.StartUTC = utc(2025, time.November, 8, 10)
		ctx.EndUTC = utc(2025, time.November, 8, 18)
		res := stage.Apply(ctx)
		assert.Equal(t, "130", res.PriceAfter.Amount.String())
		assert.Equal(t, domain.Credits(7), res.CreditsEarned) // 130 * 0.05 = 6.5, rounds away
	})

	t.Run("No match keeps price and grants nothing", func(t *testing.T) {
		ctx := baseContext(100)
		ctx.StartUTC = utc(2025, time.November, 5, 19) // Wednesday evening, no evening row
		ctx.EndUTC = utc(2025, time.November, 5, 22)
		res := stage.Apply(ctx)
		assert.Equal(t, "100", res.PriceAfter.Amount.String())
		assert.Equal(t, domain.CreditsZero, res.CreditsEarned)
	})
}

func TestBehaviorBonusStage(t *testing.T) {
	stage := NewBehaviorBonusStage(DefaultBonusRules())

	t.Run("Early and clean return both grant", func(t *testing.T) {
		ctx := baseContext(40)
		ctx.EarlyReturn = true
		ctx.CleanReturn = true
		res := stage.Apply(ctx)
		// 40 * 0.10 * 5 = 20, plus the fixed 20.
		assert.Equal(t, domain.Credits(40), res.CreditsEarned)
		assert.Equal(t, "40", res.PriceAfter.Amount.String())
	})

	t.Run("No flags grants nothing", func(t *testing.T) {
		res := stage.Apply(baseContext(40))
		assert.Equal(t, domain.CreditsZero, res.CreditsEarned)
	})
}

func TestPipelineThreadsPriceForward(t *testing.T) {
	p := NewPipeline(
		NewMembershipStage(testMemberships()),
		NewSeasonalStage([]domain.SeasonRow{novemberSeason(0.20)}),
	)
	res := p.Apply(baseContext(100))
	// 100 * 0.9 * 0.8
	assert.Equal(t, "72", res.PriceAfter.Amount.String())
}

func TestPipelineOrderMatters(t *testing.T) {
	membership := NewMembershipStage(testMemberships())
	double := NewSeasonalStage([]domain.SeasonRow{doubleCreditSeason(1)})

	forward := NewPipeline(membership, double).Apply(baseContext(100))
	reversed := NewPipeline(double, membership).Apply(baseContext(100))

	// Both orders end at the same price, but the double-credit grant is
	// computed on whatever the running price was when its stage ran -
	// and the pipeline only surfaces the final stage's credits at all.
	assert.Equal(t, "90", forward.PriceAfter.Amount.String())
	assert.Equal(t, "90", reversed.PriceAfter.Amount.String())
	assert.Equal(t, domain.Credits(90), forward.CreditsEarned)
	assert.Equal(t, domain.CreditsZero, reversed.CreditsEarned)
}

func TestPipelineSurfacesOnlyFinalStageCredits(t *testing.T) {
	p := NewPipeline(
		NewMembershipStage(testMemberships()),
		NewSeasonalStage([]domain.SeasonRow{doubleCreditSeason(1)}), // would earn 90
		NewTimeWindowStage(nil),                                     // earns 0
		NewBehaviorBonusStage(DefaultBonusRules()),
	)
	ctx := baseContext(100)
	ctx.CleanReturn = true
	res := p.Apply(ctx)

	// The seasonal stage's 90 credits are not accumulated; only the
	// behavior stage's own 20 surface.
	assert.Equal(t, domain.Credits(20), res.CreditsEarned)
	assert.Equal(t, "90", res.PriceAfter.Amount.String())
}

func TestEmptyPipelinePassesThrough(t *testing.T) {
	res := NewPipeline().Apply(baseContext(55))
	assert.Equal(t, "55", res.PriceAfter.Amount.String())
	assert.Equal(t, domain.CreditsZero, res.CreditsEarned)
}
