// Package allocation implements the cascading commission split used to
// divide a task's payment among its assignment list.
//
// The split is order-significant. The first assignment "employs" the rest:
// its percentage carves the apprentice pool out of the gross payment, every
// subsequent assignment takes its percentage of whatever the pool still holds
// after the assignments before it, and the first assignment keeps the pool's
// leftovers. Whatever never entered the pool is the master remainder.
//
// All amounts are integer minor units (centavos). Because the first
// assignment's earning is defined as a remainder rather than a product, the
// results always reconcile exactly: sum(earnings) + master remainder ==
// payment, with no rounding drift.
package allocation

import "errors"

var (
	ErrNoAssignments     = errors.New("assignment list must not be empty")
	ErrNegativePayment   = errors.New("payment must not be negative")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
)

// Assignment is one ordered {participant, percentage} entry.
type Assignment struct {
	ParticipantID string
	Percentage    int64
}

// Earning is the computed share for one assignment, in list order.
type Earning struct {
	ParticipantID string
	Amount        int64
}

// Result carries the per-assignment earnings plus the portion of the payment
// that was never allocated to any assignment (the master's take).
type Result struct {
	Earnings        []Earning
	MasterRemainder int64
}

// Split runs the cascade for payment over assignments.
//
// Preconditions are validated before any arithmetic: payment >= 0, at least
// one assignment, every percentage in [0,100]. A violation returns an error
// and a zero Result; callers must not apply partial output.
func Split(payment int64, assignments []Assignment) (Result, error) {
	if len(assignments) == 0 {
		return Result{}, ErrNoAssignments
	}
	if payment < 0 {
		return Result{}, ErrNegativePayment
	}
	for _, a := range assignments {
		if a.Percentage < 0 || a.Percentage > 100 {
			return Result{}, ErrInvalidPercentage
		}
	}

	pool := payment * assignments[0].Percentage / 100

	earnings := make([]Earning, len(assignments))
	remaining := pool
	for i := 1; i < len(assignments); i++ {
		share := remaining * assignments[i].Percentage / 100
		earnings[i] = Earning{ParticipantID: assignments[i].ParticipantID, Amount: share}
		remaining -= share
	}
	// The funding participant keeps whatever the later entries left behind.
	earnings[0] = Earning{ParticipantID: assignments[0].ParticipantID, Amount: remaining}

	return Result{Earnings: earnings, MasterRemainder: payment - pool}, nil
}

// Total is the sum of all allocated earnings. Total(r) + r.MasterRemainder
// always equals the payment Split was called with.
func Total(r Result) int64 {
	var sum int64
	for _, e := range r.Earnings {
		sum += e.Amount
	}
	return sum
}
