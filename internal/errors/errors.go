package errors

import (
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error caught before any write
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvariantViolationError represents a terminal business-rule violation.
// Retrying without a state change cannot succeed, and since nothing was
// partially written there is never a rollback to attempt.
type InvariantViolationError struct {
	Rule    string
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvariantViolationError
func (e *InvariantViolationError) Is(target error) bool {
	t, ok := target.(*InvariantViolationError)
	if !ok {
		return false
	}
	return e.Rule == t.Rule
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// PersistenceError represents a transient storage failure: the store is
// unreachable, a deadline fired, or a race was detected via a unique
// constraint. Safe to retry after re-reading current state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence failure during %s", e.Op)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() comparison for PersistenceError regardless of cause
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}

// CompensationError reports a failed compensating write together with the
// original failure that triggered it, so operators can reconcile orphaned
// rows. Neither error is swallowed.
type CompensationError struct {
	Original     error
	Compensation error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("operation failed (%v) and compensating rollback also failed (%v)", e.Original, e.Compensation)
}

func (e *CompensationError) Unwrap() error {
	return e.Original
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrFamilyNotFound       = &NotFoundError{Entity: "family"}
	ErrAssetNotFound        = &NotFoundError{Entity: "asset"}
	ErrTransactionNotFound  = &NotFoundError{Entity: "transaction"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email in the organization"}
)

// Family lifecycle invariant violations
var (
	ErrAlreadyInFamily = &InvariantViolationError{
		Rule:    "already_in_family",
		Message: "you are already in a family",
	}
	ErrNotInFamily = &InvariantViolationError{
		Rule:    "not_in_family",
		Message: "you are not in a family",
	}
	ErrInvalidInviteCode = &InvariantViolationError{
		Rule:    "invalid_invite_code",
		Message: "invalid invite code",
	}
	ErrCreatorCannotLeaveWithMembers = &InvariantViolationError{
		Rule:    "creator_cannot_leave_with_members",
		Message: "the family creator cannot leave while other members remain",
	}
	ErrCodeGenerationExhausted = &InvariantViolationError{
		Rule:    "code_generation_exhausted",
		Message: "could not generate a unique invite code",
	}
)

// Authentication Errors
var (
	ErrUnauthorized = &AuthenticationError{Message: "unauthorized"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
)
