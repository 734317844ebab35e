// Package credit implements the loyalty credit ledger: one running
// balance plus an append-only history of earn/spend lines.
package credit

import (
	"fmt"
	"sync"

	"toolhire-pricing/internal/domain"
)

// Ledger tracks a credit balance. The balance only moves through Earn
// and Spend; history lines are appended, never rewritten. A mutex
// guards the pair so a scheduled grant can share the ledger with the
// pricing engine.
type Ledger struct {
	mu      sync.Mutex
	balance domain.Credits
	lines   []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Earn adds credits to the balance and records a "+N - reason" line.
func (l *Ledger) Earn(amount domain.Credits, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = l.balance.Add(amount)
	l.lines = append(l.lines, fmt.Sprintf("+%d - %s", amount.Int(), reason))
}

// Spend removes up to amount from the balance. Overdraw is clamped:
// the actual spend is min(amount, balance), and the recorded line
// reflects what was actually removed.
func (l *Ledger) Spend(amount domain.Credits, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	spend := amount
	if spend > l.balance {
		spend = l.balance
	}
	l.balance = l.balance.Sub(spend)
	l.lines = append(l.lines, fmt.Sprintf("-%d - %s", spend.Int(), reason))
}

// Balance returns the current balance.
func (l *Ledger) Balance() domain.Credits {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Lines returns a copy of the ledger history in append order.
func (l *Ledger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
