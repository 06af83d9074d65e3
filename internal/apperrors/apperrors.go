// Package apperrors defines the structured error kinds the planning engine
// and its callers use to report failures.
package apperrors

import "fmt"

// Kind classifies a PlanError into one of the four categories the engine
// recognizes.
type Kind string

const (
	// InvalidInput means the caller supplied a malformed request: a cycle
	// hour count outside [0, 70], a leg count other than two, a negative
	// distance or duration, or a location missing a name or coordinate.
	InvalidInput Kind = "INVALID_INPUT"

	// InfeasibleTrip means the requested trip cannot be completed under
	// any sequence of HOS interruptions, even after restarts.
	InfeasibleTrip Kind = "INFEASIBLE_TRIP"

	// InternalInconsistency means a simulation invariant was violated at
	// a checkpoint. It indicates a bug in the engine, not a bad request.
	InternalInconsistency Kind = "INTERNAL_INCONSISTENCY"

	// Bounded means a runaway-loop guard tripped: the driving loop failed
	// to make progress within its iteration budget.
	Bounded Kind = "BOUNDED"
)

// PlanError is the structured error every engine and validation failure is
// reported as.
type PlanError struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *PlanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a key/value pair of diagnostic context and returns
// the same error for chaining.
func (e *PlanError) WithDetail(key string, value interface{}) *PlanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New builds a PlanError of the given kind with no wrapped cause.
func New(kind Kind, message string) *PlanError {
	return &PlanError{Kind: kind, Message: message, Details: make(map[string]interface{})}
}

// Wrap builds a PlanError of the given kind around an existing error.
func Wrap(kind Kind, message string, err error) *PlanError {
	return &PlanError{Kind: kind, Message: message, Err: err, Details: make(map[string]interface{})}
}

// Invalid is a convenience constructor for the common InvalidInput case,
// recording the offending field and value.
func Invalid(field string, value interface{}, message string) *PlanError {
	return New(InvalidInput, message).WithDetail("field", field).WithDetail("value", value)
}

// Infeasible is a convenience constructor for InfeasibleTrip.
func Infeasible(message string) *PlanError {
	return New(InfeasibleTrip, message)
}

// Inconsistent is a convenience constructor for InternalInconsistency,
// naming the invariant that failed.
func Inconsistent(invariant, message string) *PlanError {
	return New(InternalInconsistency, message).WithDetail("invariant", invariant)
}

// IterationBudgetExceeded reports a Bounded error for a driving loop that
// failed to terminate within budget.
func IterationBudgetExceeded(budget int) *PlanError {
	return New(Bounded, "driving loop exceeded iteration budget").WithDetail("budget", budget)
}
