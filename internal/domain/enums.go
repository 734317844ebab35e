package domain

import "strings"

// MembershipLevel is the customer's membership tier. The set is closed;
// rate tables are keyed by it.
type MembershipLevel int

const (
	MembershipPayAsYouGo MembershipLevel = iota
	MembershipBasic
	MembershipPlus
	MembershipPro
	MembershipContractor
)

func (l MembershipLevel) String() string {
	switch l {
	case MembershipPayAsYouGo:
		return "PayAsYouGo"
	case MembershipBasic:
		return "Basic"
	case MembershipPlus:
		return "Plus"
	case MembershipPro:
		return "Pro"
	case MembershipContractor:
		return "Contractor"
	default:
		return "Unknown"
	}
}

// ParseMembershipLevel maps a rate-table label to a level. Unrecognized
// labels fall back to pay-as-you-go, matching the ingestion policy of
// degrading rather than failing.
func ParseMembershipLevel(s string) MembershipLevel {
	switch strings.TrimSpace(s) {
	case "Pay-as-you-go", "PayAsYouGo":
		return MembershipPayAsYouGo
	case "DIY Basic", "Basic":
		return MembershipBasic
	case "DIY Plus", "Plus":
		return MembershipPlus
	case "Pro":
		return MembershipPro
	case "Contractor":
		return MembershipContractor
	default:
		return MembershipPayAsYouGo
	}
}

// MembershipLevels lists all levels in rate-table column order.
var MembershipLevels = []MembershipLevel{
	MembershipPayAsYouGo,
	MembershipBasic,
	MembershipPlus,
	MembershipPro,
	MembershipContractor,
}

// ToolTier is the tool price category, Tier1 (cheapest) through Tier5.
type ToolTier int

const (
	Tier1 ToolTier = iota + 1
	Tier2
	Tier3
	Tier4
	Tier5
)

func (t ToolTier) String() string {
	switch t {
	case Tier1:
		return "Tier1"
	case Tier2:
		return "Tier2"
	case Tier3:
		return "Tier3"
	case Tier4:
		return "Tier4"
	case Tier5:
		return "Tier5"
	default:
		return "Unknown"
	}
}

// ParseToolTier recognizes a "Tier N" substring in a category label.
// Anything else is treated as the top tier, same as the source tables.
func ParseToolTier(s string) ToolTier {
	switch {
	case strings.Contains(s, "Tier 1"):
		return Tier1
	case strings.Contains(s, "Tier 2"):
		return Tier2
	case strings.Contains(s, "Tier 3"):
		return Tier3
	case strings.Contains(s, "Tier 4"):
		return Tier4
	default:
		return Tier5
	}
}

// TimeWindow is the booked rental duration class.
type TimeWindow int

const (
	WindowFourHours TimeWindow = iota
	WindowDay
	WindowWeekend
	WindowWeek
)

func (w TimeWindow) String() string {
	switch w {
	case WindowFourHours:
		return "FourHours"
	case WindowDay:
		return "Day"
	case WindowWeekend:
		return "Weekend"
	case WindowWeek:
		return "Week"
	default:
		return "Unknown"
	}
}

// InsurancePlan is the optional damage cover selected for a rental.
type InsurancePlan int

const (
	InsuranceBasic InsurancePlan = iota
	InsuranceStandard
	InsurancePremium
	InsuranceProfi
)

func (p InsurancePlan) String() string {
	switch p {
	case InsuranceBasic:
		return "Basic"
	case InsuranceStandard:
		return "Standard"
	case InsurancePremium:
		return "Premium"
	case InsuranceProfi:
		return "Profi"
	default:
		return "Unknown"
	}
}
