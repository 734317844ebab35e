package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toolhire-pricing/internal/domain"
)

func TestPriceBookLookups(t *testing.T) {
	book := NewPriceBook(testToolRows())

	t.Run("Known tier and window", func(t *testing.T) {
		assert.Equal(t, "£45", book.BasePrice(domain.Tier3, domain.WindowWeekend).String())
		assert.Equal(t, "£28", book.BasePrice(domain.Tier3, domain.WindowDay).String())
		assert.Equal(t, domain.Credits(20), book.BaseCredits(domain.Tier3))
	})

	t.Run("Missing tier degrades to zero", func(t *testing.T) {
		assert.True(t, book.BasePrice(domain.Tier4, domain.WindowDay).IsZero())
		assert.Equal(t, domain.CreditsZero, book.BaseCredits(domain.Tier4))
	})

	t.Run("Empty book", func(t *testing.T) {
		empty := NewPriceBook(nil)
		assert.True(t, empty.BasePrice(domain.Tier1, domain.WindowDay).IsZero())
	})
}
