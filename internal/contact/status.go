package contact

// Status is the lifecycle of the workflow's submit control.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	}
	return "unknown"
}

// OutcomeKind classifies one Submit call.
type OutcomeKind int

const (
	// OutcomePending is returned when another submission is still in flight.
	OutcomePending OutcomeKind = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePending:
		return "pending"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the transient result of a Submit call.
type Outcome struct {
	Kind OutcomeKind
	// Err is set for OutcomeFailed: *ValidationError, ErrVerificationMissing,
	// ErrVerificationRejected or *DeliveryError.
	Err error
}

func (o Outcome) Succeeded() bool { return o.Kind == OutcomeSucceeded }
func (o Outcome) Failed() bool    { return o.Kind == OutcomeFailed }
func (o Outcome) Pending() bool   { return o.Kind == OutcomePending }

func succeeded() Outcome       { return Outcome{Kind: OutcomeSucceeded} }
func failed(err error) Outcome { return Outcome{Kind: OutcomeFailed, Err: err} }
func stillPending() Outcome    { return Outcome{Kind: OutcomePending} }
