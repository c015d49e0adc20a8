package diagnostics

import (
	"fmt"
)

// PlanWarning represents a non-fatal warning emitted while linting a plan.
type PlanWarning struct {
	message string
	span    Span
}

// NewPlanWarning creates a new PlanWarning with the given message and span.
func NewPlanWarning(message string, span Span) PlanWarning {
	return PlanWarning{
		message: message,
		span:    span,
	}
}

// NewUnknownEntityWarning creates a warning for an operation targeting an entity
// that does not exist in the live database.
func NewUnknownEntityWarning(entity string, span Span) PlanWarning {
	return NewPlanWarning(fmt.Sprintf("Entity \"%s\" does not exist in the target database.", entity), span)
}

// NewUnknownFieldWarning creates a warning for an operation targeting a field
// that does not exist in the live database.
func NewUnknownFieldWarning(entity, field string, span Span) PlanWarning {
	return NewPlanWarning(fmt.Sprintf("Field \"%s.%s\" does not exist in the target database.", entity, field), span)
}

// NewFieldExistsWarning creates a warning for adding a field that already exists.
func NewFieldExistsWarning(entity, field string, span Span) PlanWarning {
	return NewPlanWarning(fmt.Sprintf("Field \"%s.%s\" already exists in the target database.", entity, field), span)
}

// NewVerifySkippedWarning creates a warning for a database check that could not run.
func NewVerifySkippedWarning(reason string, span Span) PlanWarning {
	return NewPlanWarning(fmt.Sprintf("Database verification skipped: %s.", reason), span)
}

// Message returns the warning message.
func (w PlanWarning) Message() string {
	return w.message
}

// Span returns the warning span.
func (w PlanWarning) Span() Span {
	return w.span
}
