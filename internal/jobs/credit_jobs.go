package jobs

import (
	"toolhire-pricing/internal/domain"
	"toolhire-pricing/internal/logger"
)

// GrantMonthlyCredits earns the configured membership level's monthly
// credit allowance into the ledger. A level with no membership row, or
// a zero allowance, grants nothing.
func (jr *JobRunner) GrantMonthlyCredits() {
	jr.runWithRecovery("GrantMonthlyCredits", func() {
		level := domain.ParseMembershipLevel(jr.config.Scheduler.MembershipLevel)

		var allowance domain.Credits
		for _, m := range jr.memberships {
			if m.Level == level {
				allowance = m.MonthlyCredits
				break
			}
		}
		if allowance == 0 {
			logger.Info("No monthly credits configured for level", "level", level.String())
			return
		}

		jr.ledger.Earn(allowance, "Monthly membership credits")
		logger.Info("Granted monthly credits",
			"level", level.String(),
			"credits", allowance.Int(),
			"balance", jr.ledger.Balance().Int())
	})
}
