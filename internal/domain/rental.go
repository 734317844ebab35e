package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RentalState is the lifecycle position of a rental. Transitions are
// strictly linear: Reserved -> Active -> Returned -> Inspected -> Closed.
type RentalState int

const (
	StateReserved RentalState = iota
	StateActive
	StateReturned
	StateInspected
	StateClosed
)

func (s RentalState) String() string {
	switch s {
	case StateReserved:
		return "Reserved"
	case StateActive:
		return "Active"
	case StateReturned:
		return "Returned"
	case StateInspected:
		return "Inspected"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

type lifecycleOp int

const (
	opActivate lifecycleOp = iota
	opReturn
	opInspect
	opClose
)

func (o lifecycleOp) String() string {
	switch o {
	case opActivate:
		return "activate"
	case opReturn:
		return "return"
	case opInspect:
		return "inspect"
	case opClose:
		return "close"
	default:
		return "unknown"
	}
}

// transitions holds the single legal operation per state. Anything not
// in the table is an invalid transition.
var transitions = map[RentalState]map[lifecycleOp]RentalState{
	StateReserved:  {opActivate: StateActive},
	StateActive:    {opReturn: StateReturned},
	StateReturned:  {opInspect: StateInspected},
	StateInspected: {opClose: StateClosed},
}

// Rental is one rental request. Identity is fixed at construction;
// state moves only through the lifecycle operations below.
type Rental struct {
	ID         uuid.UUID
	Membership MembershipLevel
	Tier       ToolTier
	Window     TimeWindow
	StartUTC   time.Time
	EndUTC     time.Time

	// CleanReturn is set by Inspect; EarlyReturn is fixed at creation.
	CleanReturn bool
	EarlyReturn bool

	state            RentalState
	inspectionPassed bool
}

// NewRental creates a rental in the Reserved state.
func NewRental(m MembershipLevel, t ToolTier, w TimeWindow, startUTC, endUTC time.Time, earlyReturn bool) *Rental {
	return &Rental{
		ID:          uuid.New(),
		Membership:  m,
		Tier:        t,
		Window:      w,
		StartUTC:    startUTC,
		EndUTC:      endUTC,
		EarlyReturn: earlyReturn,
		state:       StateReserved,
	}
}

// State returns the current lifecycle state.
func (r *Rental) State() RentalState {
	return r.state
}

func (r *Rental) transition(op lifecycleOp) error {
	next, ok := transitions[r.state][op]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s rental", ErrInvalidTransition, op, r.state)
	}
	r.state = next
	return nil
}

// Activate moves Reserved -> Active.
func (r *Rental) Activate() error {
	return r.transition(opActivate)
}

// Return moves Active -> Returned.
func (r *Rental) Return() error {
	return r.transition(opReturn)
}

// Inspect moves Returned -> Inspected and records the inspection
// outcome. The clean flag feeds the behavior bonus stage.
func (r *Rental) Inspect(passed, clean bool) error {
	if err := r.transition(opInspect); err != nil {
		return err
	}
	r.inspectionPassed = passed
	r.CleanReturn = clean
	return nil
}

// Close moves Inspected -> Closed. A failed inspection blocks closing
// permanently; the rental stays Inspected.
func (r *Rental) Close() error {
	if r.state == StateInspected && !r.inspectionPassed {
		return fmt.Errorf("%w: rental %s cannot be closed", ErrInspectionFailed, r.ID)
	}
	return r.transition(opClose)
}
