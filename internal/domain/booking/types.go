package booking

import "fmt"

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusDeposited      Status = "deposited"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusPaymentFail    Status = "payment_fail"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusDeposited, StatusCompleted, StatusCancelled, StatusPaymentFail:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// transitions is the single source of truth for every status change.
// All mutating operations consult it, so illegal transitions are
// rejected uniformly instead of per call site.
var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusDeposited, StatusCompleted, StatusCancelled, StatusPaymentFail},
	StatusDeposited:      {StatusCompleted, StatusCancelled, StatusPaymentFail},
	StatusPaymentFail:    {StatusPendingPayment, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IllegalTransitionError names the rejected edge so callers can report
// exactly which transition was attempted.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
