package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrValueIsRequired         = errors.New("value is required")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrReferencedEntityMissing = errors.New("referenced entity missing")
	ErrUnknownUser             = errors.New("unknown user")
	ErrEmptyOrder              = errors.New("order must contain at least one item")
)

// ObjectNotFoundError reports that the object identified by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateTransitionError reports an operation attempted from a status that does not allow it.
// Allowed lists the statuses the operation may start from.
type InvalidStateTransitionError struct {
	Operation string
	Current   string
	Allowed   []string
}

func NewInvalidStateTransitionError(operation string, current string, allowed ...string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation: operation,
		Current:   current,
		Allowed:   allowed,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s (allowed from: %s)",
		ErrInvalidStateTransition, e.Operation, e.Current, strings.Join(e.Allowed, ", "))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ReferencedEntityMissingError reports a reference that no longer resolves, e.g. an order
// item pointing at a product that was removed between load and hydration.
type ReferencedEntityMissingError struct {
	Entity string
	ID     any
}

func NewReferencedEntityMissingError(entity string, id any) *ReferencedEntityMissingError {
	return &ReferencedEntityMissingError{
		Entity: entity,
		ID:     id,
	}
}

func (e *ReferencedEntityMissingError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrReferencedEntityMissing, e.Entity, sanitize(e.ID))
}

func (e *ReferencedEntityMissingError) Unwrap() error {
	return ErrReferencedEntityMissing
}

// UnknownUserError reports an acting principal that does not resolve to a user.
type UnknownUserError struct {
	Username string
}

func NewUnknownUserError(username string) *UnknownUserError {
	return &UnknownUserError{Username: username}
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownUser, sanitize(e.Username))
}

func (e *UnknownUserError) Unwrap() error {
	return ErrUnknownUser
}

func sanitize(value any) string {
	s := fmt.Sprintf("%s", value)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
