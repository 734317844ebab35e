// Package pricing holds the rental pricing core: base price lookup,
// the discount pipeline, late fee bands, and the engine composing them.
package pricing

import (
	"toolhire-pricing/internal/domain"
)

type priceKey struct {
	tier   domain.ToolTier
	window domain.TimeWindow
}

// PriceBook resolves base prices and base credit grants from the tool
// rate table. Built once; lookups never fail — a missing (tier, window)
// pair degrades to zero rather than aborting the quote.
type PriceBook struct {
	prices  map[priceKey]domain.Money
	credits map[domain.ToolTier]domain.Credits
}

// NewPriceBook indexes the tool rows by tier and window.
func NewPriceBook(rows []domain.ToolRow) *PriceBook {
	b := &PriceBook{
		prices:  make(map[priceKey]domain.Money),
		credits: make(map[domain.ToolTier]domain.Credits),
	}
	for _, r := range rows {
		b.prices[priceKey{r.Tier, domain.WindowFourHours}] = r.Price4h
		b.prices[priceKey{r.Tier, domain.WindowDay}] = r.PriceDay
		b.prices[priceKey{r.Tier, domain.WindowWeekend}] = r.PriceWeekend
		b.prices[priceKey{r.Tier, domain.WindowWeek}] = r.PriceWeek
		b.credits[r.Tier] = r.BaseCredits
	}
	return b
}

// BasePrice returns the table price for a tier and window, zero if the
// pair is not in the table.
func (b *PriceBook) BasePrice(tier domain.ToolTier, window domain.TimeWindow) domain.Money {
	return b.prices[priceKey{tier, window}]
}

// BaseCredits returns the tier's base credit grant, zero if unknown.
func (b *PriceBook) BaseCredits(tier domain.ToolTier) domain.Credits {
	return b.credits[tier]
}
