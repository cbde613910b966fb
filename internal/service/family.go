package service

import (
	"errors"
	"fmt"
	"strings"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/database/models"
	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/invite"
	"family-finance-backend/internal/logger"
	"family-finance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyService orchestrates the family membership lifecycle: create, join
// and leave are multi-write operations against the membership store. The
// create path writes the family row first and the caller's family_id second;
// if the second write fails the family row is deleted again so no memberless
// family survives a partial failure.
type FamilyService struct {
	familyRepo repository.FamilyRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	codes      CodeGenerator
	validator  *validator.Validate
	log        *logger.Logger
}

// NewFamilyService creates a new family service
func NewFamilyService(familyRepo repository.FamilyRepositoryInterface, userRepo repository.UserRepositoryInterface, codes CodeGenerator, validator *validator.Validate) *FamilyService {
	return &FamilyService{
		familyRepo: familyRepo,
		userRepo:   userRepo,
		codes:      codes,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateFamilyRequest represents the request to create a family
type CreateFamilyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// JoinFamilyRequest represents the request to join a family by invite code
type JoinFamilyRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=6,alphanum"`
}

// FamilyMemberResponse represents one member in a family response
type FamilyMemberResponse struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	Role        models.UserRole `json:"role"`
}

// FamilyResponse represents the response for family operations
type FamilyResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organization_id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description,omitempty"`
	InviteCode     string                 `json:"invite_code"`
	CreatedByID    uuid.UUID              `json:"created_by_id"`
	Members        []FamilyMemberResponse `json:"members"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// Create creates a family for an unaffiliated caller and makes them its creator.
func (s *FamilyService) Create(principal *auth.Principal, req *CreateFamilyRequest) (*FamilyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	user, err := s.loadCaller(principal)
	if err != nil {
		return nil, err
	}
	if user.IsInFamily() {
		return nil, apperrors.ErrAlreadyInFamily
	}

	code, err := s.generateUniqueCode(principal.OrganizationID)
	if err != nil {
		return nil, err
	}

	family := &models.Family{
		OrganizationID: principal.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		InviteCode:     code,
		CreatedByID:    principal.UserID,
	}
	if err := s.familyRepo.Create(family); err != nil {
		// A concurrent create may have claimed the same code; the unique
		// index reports it here and the caller can simply retry.
		return nil, &apperrors.PersistenceError{Op: "create family", Err: err}
	}

	if err := s.userRepo.AssignFamily(principal.UserID, family.ID); err != nil {
		original := &apperrors.PersistenceError{Op: "assign family to creator", Err: err}

		// Compensating rollback: without it the failed second write would
		// leave a family row that no user references.
		if delErr := s.familyRepo.Delete(family.ID); delErr != nil {
			s.log.WithFields(map[string]interface{}{
				"family_id":          family.ID,
				"original_error":     err.Error(),
				"compensation_error": delErr.Error(),
			}).Error("failed to roll back family creation; orphaned family row needs reconciliation")
			return nil, &apperrors.CompensationError{Original: original, Compensation: delErr}
		}
		return nil, original
	}

	return s.toResponse(family)
}

// Join affiliates an unaffiliated caller with the family behind the invite code.
// Codes are organization-scoped: a code that exists only in another tenant is
// indistinguishable from a code that exists nowhere.
func (s *FamilyService) Join(principal *auth.Principal, req *JoinFamilyRequest) (*FamilyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	user, err := s.loadCaller(principal)
	if err != nil {
		return nil, err
	}
	if user.IsInFamily() {
		return nil, apperrors.ErrAlreadyInFamily
	}

	code := strings.ToUpper(req.InviteCode)
	family, err := s.familyRepo.GetByInviteCode(principal.OrganizationID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInviteCode
		}
		return nil, &apperrors.PersistenceError{Op: "look up invite code", Err: err}
	}

	if err := s.userRepo.AssignFamily(principal.UserID, family.ID); err != nil {
		// RowsAffected == 0 (reported as record-not-found) means another
		// session affiliated this user between our read and the update.
		// Retryable: the caller re-reads state and sees AlreadyInFamily.
		return nil, &apperrors.PersistenceError{Op: "assign family to joiner", Err: err}
	}

	return s.toResponse(family)
}

// Leave removes the caller from their family. A creator may only leave once
// no other members remain, and leaving as the last creator deletes the family.
func (s *FamilyService) Leave(principal *auth.Principal) error {
	user, err := s.loadCaller(principal)
	if err != nil {
		return err
	}
	if !user.IsInFamily() {
		return apperrors.ErrNotInFamily
	}
	familyID := *user.FamilyID

	family, err := s.familyRepo.GetByID(familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The family row is already gone; clear the stale reference.
			if clearErr := s.userRepo.ClearFamily(principal.UserID); clearErr != nil {
				return &apperrors.PersistenceError{Op: "clear stale family reference", Err: clearErr}
			}
			return nil
		}
		return &apperrors.PersistenceError{Op: "load family", Err: err}
	}

	isCreator := family.IsCreator(principal.UserID)
	if isCreator {
		others, err := s.userRepo.CountByFamilyIDExcluding(familyID, principal.UserID)
		if err != nil {
			return &apperrors.PersistenceError{Op: "count family members", Err: err}
		}
		if others > 0 {
			return apperrors.ErrCreatorCannotLeaveWithMembers
		}
	}

	if err := s.userRepo.ClearFamily(principal.UserID); err != nil {
		return &apperrors.PersistenceError{Op: "clear family membership", Err: err}
	}

	if isCreator {
		// Re-check after the update: a join that slipped in between the
		// count and the clear keeps the family alive.
		remaining, err := s.userRepo.CountByFamilyIDExcluding(familyID, principal.UserID)
		if err != nil {
			return &apperrors.PersistenceError{Op: "recount family members", Err: err}
		}
		if remaining == 0 {
			if err := s.familyRepo.Delete(familyID); err != nil {
				s.log.WithField("family_id", familyID).Errorf("failed to delete empty family: %v", err)
				return &apperrors.PersistenceError{Op: "delete empty family", Err: err}
			}
		}
	}

	return nil
}

// GetCurrent returns the caller's family with its derived member list, or nil
// when the caller is unaffiliated.
func (s *FamilyService) GetCurrent(principal *auth.Principal) (*FamilyResponse, error) {
	user, err := s.loadCaller(principal)
	if err != nil {
		return nil, err
	}
	if !user.IsInFamily() {
		return nil, nil
	}

	family, err := s.familyRepo.GetByID(*user.FamilyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &apperrors.PersistenceError{Op: "load family", Err: err}
	}

	return s.toResponse(family)
}

func (s *FamilyService) loadCaller(principal *auth.Principal) (*models.User, error) {
	user, err := s.userRepo.GetByID(principal.OrganizationID, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load caller", Err: err}
	}
	return user, nil
}

// generateUniqueCode draws codes until one is free within the organization,
// giving up after invite.MaxAttempts draws.
func (s *FamilyService) generateUniqueCode(orgID uuid.UUID) (string, error) {
	for attempt := 0; attempt < invite.MaxAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}

		_, err = s.familyRepo.GetByInviteCode(orgID, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", &apperrors.PersistenceError{Op: "check invite code uniqueness", Err: err}
		}
		// Code is taken in this organization; draw again.
	}
	return "", apperrors.ErrCodeGenerationExhausted
}

func (s *FamilyService) toResponse(family *models.Family) (*FamilyResponse, error) {
	members, err := s.userRepo.GetByFamilyID(family.ID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load family members", Err: err}
	}

	memberResponses := make([]FamilyMemberResponse, 0, len(members))
	for _, m := range members {
		memberResponses = append(memberResponses, FamilyMemberResponse{
			ID:          m.ID,
			Email:       m.Email,
			DisplayName: m.DisplayName,
			Role:        m.Role,
		})
	}

	return &FamilyResponse{
		ID:             family.ID,
		OrganizationID: family.OrganizationID,
		Name:           family.Name,
		Description:    family.Description,
		InviteCode:     family.InviteCode,
		CreatedByID:    family.CreatedByID,
		Members:        memberResponses,
		CreatedAt:      family.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      family.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
