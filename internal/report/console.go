// Package report renders pricing results for the console. It only
// formats; all computation happens in the pricing core.
package report

import (
	"fmt"
	"io"

	"toolhire-pricing/internal/credit"
	"toolhire-pricing/internal/domain"
)

// WriteSummary renders a rental summary in the fixed console layout.
func WriteSummary(w io.Writer, s domain.RentalSummary) {
	fmt.Fprintln(w, "---- Rental Summary ----")
	fmt.Fprintf(w, "Rental: %s\n", s.RentalID)
	fmt.Fprintf(w, "Member: %s  Tier: %s  Window: %s\n", s.Membership, s.Tier, s.Window)
	fmt.Fprintf(w, "Base: %s  Final: %s\n", s.BasePrice, s.FinalPrice)
	fmt.Fprintf(w, "Credits +%d  -%d\n", s.EarnedCredits.Int(), s.SpentCredits.Int())
	fmt.Fprintf(w, "Late: %s  Insurance: %s  Delivery: %s\n", s.LateFee, s.InsuranceCost, s.DeliveryCost)
	fmt.Fprintln(w, "------------------------")
}

// WriteLedger renders the credit balance and every ledger line.
func WriteLedger(w io.Writer, l *credit.Ledger) {
	fmt.Fprintf(w, "Balance: %d\n", l.Balance().Int())
	lines := l.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(w, "Ledger empty - no credit operations executed.")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
