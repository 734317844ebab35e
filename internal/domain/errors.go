package domain

import "errors"

var (
	// ErrInvalidTransition reports a lifecycle operation called outside
	// the single state it is legal in.
	ErrInvalidTransition = errors.New("invalid rental state transition")

	// ErrInspectionFailed reports a Close on a rental whose inspection
	// did not pass. The rental stays Inspected.
	ErrInspectionFailed = errors.New("inspection failed")

	// ErrNilDependency reports a missing collaborator at assembly time.
	ErrNilDependency = errors.New("nil dependency")
)
