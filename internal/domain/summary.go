package domain

import "github.com/google/uuid"

// RentalSummary is the immutable result of pricing one rental. It is
// produced once per quote and handed to presentation unchanged.
type RentalSummary struct {
	RentalID      uuid.UUID
	Membership    MembershipLevel
	Tier          ToolTier
	Window        TimeWindow
	BasePrice     Money
	FinalPrice    Money
	EarnedCredits Credits
	SpentCredits  Credits
	LateFee       Money
	InsuranceCost Money
	DeliveryCost  Money
}
