package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a Failure so callers can tell "not found" apart from a
// broken store or a rejected state transition without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindIllegalTransition
	KindConnection
	KindTransaction
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIllegalTransition:
		return "illegal_transition"
	case KindConnection:
		return "connection"
	case KindTransaction:
		return "transaction"
	case KindConstraint:
		return "constraint_violation"
	default:
		return "unknown"
	}
}

// Failure is a wrapper for error messages carrying the error kind and an
// optional underlying cause.
type Failure struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.Cause
}

// Validation returns a new Failure for malformed input or invalid entity fields.
func Validation(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validationf returns a new validation Failure with a formatted message.
func Validationf(format string, args ...any) error {
	return &Failure{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound returns a new Failure for a missing row, with message set from the entity name.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// IllegalTransition returns a new Failure for a booking lifecycle precondition violation.
func IllegalTransition(msg string) error {
	return &Failure{
		Kind:    KindIllegalTransition,
		Message: msg,
	}
}

// Connection returns a new Failure for an unreachable store.
func Connection(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Kind:    KindConnection,
		Message: "store unreachable: " + err.Error(),
		Cause:   err,
	}
}

// Transaction returns a new Failure for a commit or rollback error.
func Transaction(msg string, err error) error {
	return &Failure{
		Kind:    KindTransaction,
		Message: msg,
		Cause:   err,
	}
}

// Conflict returns a new Failure for a domain-level booking conflict, the
// same kind the store's exclusion constraint surfaces.
func Conflict(msg string) error {
	return &Failure{
		Kind:    KindConstraint,
		Message: msg,
	}
}

// Constraint returns a new Failure for a uniqueness or exclusion violation
// surfaced by the store.
func Constraint(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Kind:    KindConstraint,
		Message: err.Error(),
		Cause:   err,
	}
}

// KindOf returns the kind of an error interface, KindUnknown when the error
// does not wrap a Failure.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsKind reports whether err wraps a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNotFound reports whether err represents a missing row.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsValidation reports whether err represents rejected input.
func IsValidation(err error) bool {
	return IsKind(err, KindValidation)
}
