package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "family"}
		assert.Equal(t, "family not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "family"}
		err2 := &NotFoundError{Entity: "family"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "family"}
		err2 := &NotFoundError{Entity: "asset"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrFamilyNotFound, ErrFamilyNotFound))
		assert.False(t, errors.Is(ErrFamilyNotFound, ErrUserNotFound))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email in the organization"}
		assert.Equal(t, "user already exists with this email in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "user", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "user", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_date", Message: "required"}
		assert.Equal(t, "validation error: start_date - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "required"}
		assert.Equal(t, "validation error: required", err.Error())
	})
}

func TestInvariantViolationError(t *testing.T) {
	t.Run("comparison is by rule, not message", func(t *testing.T) {
		err := &InvariantViolationError{Rule: "already_in_family", Message: "different wording"}
		assert.True(t, errors.Is(err, ErrAlreadyInFamily))
		assert.False(t, errors.Is(err, ErrNotInFamily))
	})

	t.Run("predefined family lifecycle errors are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInvalidInviteCode, ErrCodeGenerationExhausted))
		assert.False(t, errors.Is(ErrCreatorCannotLeaveWithMembers, ErrAlreadyInFamily))
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &PersistenceError{Op: "create family", Err: cause}

	t.Run("Error message carries op and cause", func(t *testing.T) {
		assert.Equal(t, "persistence failure during create family: connection reset", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("matches any other persistence error", func(t *testing.T) {
		other := &PersistenceError{Op: "delete family"}
		assert.True(t, errors.Is(err, other))
	})

	t.Run("wrapped matches too", func(t *testing.T) {
		wrapped := fmt.Errorf("leave: %w", err)
		assert.True(t, errors.Is(wrapped, &PersistenceError{}))
	})
}

func TestCompensationError(t *testing.T) {
	original := &PersistenceError{Op: "assign family to creator", Err: errors.New("timeout")}
	compensation := errors.New("delete failed")
	err := &CompensationError{Original: original, Compensation: compensation}

	t.Run("message carries both failures", func(t *testing.T) {
		assert.Contains(t, err.Error(), "timeout")
		assert.Contains(t, err.Error(), "delete failed")
	})

	t.Run("Unwrap exposes the original failure", func(t *testing.T) {
		assert.True(t, errors.Is(err, &PersistenceError{}))
	})
}
