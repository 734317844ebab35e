package repository

import (
	"toolhire-pricing/internal/domain"
)

// RateSource provides the five parsed rate tables the pricing core is
// built from. Implementations own all file I/O; the core never reads
// files itself.
type RateSource interface {
	Memberships() ([]domain.MembershipRow, error)
	Tools() ([]domain.ToolRow, error)
	Seasons() ([]domain.SeasonRow, error)
	TimeWindows() ([]domain.TimeWindowRow, error)
	LateFees() ([]domain.LateFeeRow, error)
}
