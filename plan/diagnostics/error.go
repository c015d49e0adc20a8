package diagnostics

import (
	"fmt"
	"io"
)

// PlanError represents a validation or parser error in a migration plan.
type PlanError struct {
	span    Span
	message string
}

// NewPlanError creates a new PlanError with the given message and span.
func NewPlanError(message string, span Span) PlanError {
	return PlanError{
		message: message,
		span:    span,
	}
}

// NewUnknownKindError creates an error for an unrecognized operation kind.
func NewUnknownKindError(kind string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("\"%s\" is not a known operation kind.", kind), span)
}

// NewMissingFieldError creates an error for an operation kind that requires a field target.
func NewMissingFieldError(kind, entity string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("Operation \"%s\" on \"%s\" requires a field target (use entity.field).", kind, entity), span)
}

// NewUnexpectedFieldError creates an error for an operation kind that forbids a field target.
func NewUnexpectedFieldError(kind, entity, field string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("Operation \"%s\" targets the whole entity \"%s\" and does not take a field (\"%s\" given).", kind, entity, field), span)
}

// NewMissingRenameTargetError creates an error for a rename without a new name.
func NewMissingRenameTargetError(entity, field string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("rename-column on \"%s.%s\" requires a new name (use -> newname).", entity, field), span)
}

// NewUnexpectedRenameTargetError creates an error for a rename arrow on a non-rename kind.
func NewUnexpectedRenameTargetError(kind string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("Operation \"%s\" does not take a rename target.", kind), span)
}

// NewEmptyPlanError creates an error for a plan without operations.
func NewEmptyPlanError(planName string, span Span) PlanError {
	return NewPlanError(fmt.Sprintf("Plan \"%s\" contains no operations.", planName), span)
}

// Message returns the error message.
func (e PlanError) Message() string {
	return e.message
}

// Span returns the error span.
func (e PlanError) Span() Span {
	return e.span
}

// Error implements the error interface.
func (e PlanError) Error() string {
	return e.message
}

// WriteTo writes the plain error message to a writer.
func (e PlanError) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "error: %s\n", e.message)
	return int64(n), err
}
