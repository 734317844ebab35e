package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"toolhire-pricing/internal/credit"
	"toolhire-pricing/internal/domain"
	"toolhire-pricing/internal/logger"
)

// Engine composes the price book, discount pipeline, late fee table
// and credit ledger into one quote operation.
type Engine struct {
	book     *PriceBook
	pipeline *Pipeline
	lateFees *LateFeeTable
	ledger   *credit.Ledger
}

// NewEngine wires the pricing collaborators. Every dependency is
// required; assembly fails fast on a missing one.
func NewEngine(book *PriceBook, pipeline *Pipeline, lateFees *LateFeeTable, ledger *credit.Ledger) (*Engine, error) {
	switch {
	case book == nil:
		return nil, fmt.Errorf("%w: price book", domain.ErrNilDependency)
	case pipeline == nil:
		return nil, fmt.Errorf("%w: discount pipeline", domain.ErrNilDependency)
	case lateFees == nil:
		return nil, fmt.Errorf("%w: late fee table", domain.ErrNilDependency)
	case ledger == nil:
		return nil, fmt.Errorf("%w: credit ledger", domain.ErrNilDependency)
	}
	return &Engine{book: book, pipeline: pipeline, lateFees: lateFees, ledger: ledger}, nil
}

// QuoteAndApply prices a rental: base price through the discount
// pipeline, plus delivery, insurance and late fees; earned credits are
// booked into the ledger as a side effect. The rental's lifecycle
// state is not touched.
func (e *Engine) QuoteAndApply(rental *domain.Rental, weekendDelivery bool, insurance domain.InsurancePlan, late *time.Duration) domain.RentalSummary {
	basePrice := e.book.BasePrice(rental.Tier, rental.Window)

	ctx := Context{
		Membership:     rental.Membership,
		Tier:           rental.Tier,
		Window:         rental.Window,
		Price:          basePrice,
		StartUTC:       rental.StartUTC,
		EndUTC:         rental.EndUTC,
		CleanReturn:    rental.CleanReturn,
		EarlyReturn:    rental.EarlyReturn,
		WeekendPackage: rental.Window == domain.WindowWeekend,
		Season:         rental.StartUTC.Month().String(),
	}
	discounted := e.pipeline.Apply(ctx)

	delivery := domain.MoneyZero
	if weekendDelivery {
		delivery = deliveryCostFor(rental.Membership, 4.5)
	}
	insuranceCost := insuranceCostPerDay(insurance).Mul(windowDays(rental.Window))

	earned := discounted.CreditsEarned.Add(e.book.BaseCredits(rental.Tier))
	spent := domain.CreditsZero

	lateFee := domain.MoneyZero
	if late != nil {
		dayRate := e.book.BasePrice(rental.Tier, domain.WindowDay)
		lateFee = e.lateFees.Calculate(rental.Membership, *late, dayRate)
	}

	final := discounted.PriceAfter.Add(delivery).Add(insuranceCost).Add(lateFee)

	if earned > 0 {
		e.ledger.Earn(earned, "Rental bonuses")
	}

	logger.Debug("Quote computed",
		"rental_id", rental.ID,
		"base", basePrice.String(),
		"final", final.String(),
		"earned_credits", earned.Int())

	return domain.RentalSummary{
		RentalID:      rental.ID,
		Membership:    rental.Membership,
		Tier:          rental.Tier,
		Window:        rental.Window,
		BasePrice:     basePrice,
		FinalPrice:    final,
		EarnedCredits: earned,
		SpentCredits:  spent,
		LateFee:       lateFee,
		InsuranceCost: insuranceCost,
		DeliveryCost:  delivery,
	}
}

// deliveryCostFor is a flat weekend delivery fee per membership level.
// The distance parameter is accepted but deliberately unused: the
// current contract charges by membership only, independent of route.
func deliveryCostFor(level domain.MembershipLevel, distanceKm float64) domain.Money {
	_ = distanceKm
	switch level {
	case domain.MembershipPayAsYouGo:
		return domain.NewMoney(15)
	case domain.MembershipBasic:
		return domain.NewMoney(12)
	case domain.MembershipPlus:
		return domain.NewMoney(8)
	case domain.MembershipPro:
		return domain.NewMoney(5)
	case domain.MembershipContractor:
		return domain.MoneyZero
	default:
		return domain.MoneyZero
	}
}

func insuranceCostPerDay(plan domain.InsurancePlan) domain.Money {
	switch plan {
	case domain.InsuranceStandard:
		return domain.NewMoney(5)
	case domain.InsurancePremium:
		return domain.NewMoney(10)
	case domain.InsuranceProfi:
		return domain.NewMoney(15)
	default:
		return domain.MoneyZero
	}
}

// windowDays is the contractual day count billed per window, used for
// insurance.
func windowDays(w domain.TimeWindow) decimal.Decimal {
	switch w {
	case domain.WindowFourHours:
		return decimal.NewFromFloat(0.5)
	case domain.WindowWeekend:
		return decimal.NewFromInt(2)
	case domain.WindowWeek:
		return decimal.NewFromInt(7)
	default:
		return decimal.NewFromInt(1)
	}
}
