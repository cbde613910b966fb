package handlers

import (
	"errors"
	"net/http"

	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// retryableMessage is what clients see for transient storage failures. Raw
// storage error text goes to the logs only.
const retryableMessage = "a temporary error occurred, please retry"

// respondWithError maps service errors onto HTTP statuses.
// Invariant violations surface verbatim (they are actionable); persistence
// failures are logged in full and answered with a generic retryable message.
func respondWithError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var authErr *apperrors.AuthenticationError
	var notFoundErr *apperrors.NotFoundError
	var existsErr *apperrors.AlreadyExistsError
	var invariantErr *apperrors.InvariantViolationError
	var persistenceErr *apperrors.PersistenceError
	var compensationErr *apperrors.CompensationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &existsErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invariantErr):
		switch {
		case errors.Is(err, apperrors.ErrInvalidInviteCode):
			// Indistinguishable from "not found", including for codes that
			// exist in another organization.
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCodeGenerationExhausted):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		}
	case errors.As(err, &compensationErr):
		logger.New().WithField("error", err.Error()).Error("compensating rollback failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": retryableMessage})
	case errors.As(err, &persistenceErr):
		logger.New().WithField("error", err.Error()).Error("persistence failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": retryableMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
