package service_test

import (
	"errors"
	"testing"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/database/models"
	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/mocks"
	"family-finance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FamilyServiceTestSuite defines the test suite for FamilyService
type FamilyServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockFamilyRepo *mocks.MockFamilyRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockCodes      *mocks.MockCodeGenerator
	familyService  *service.FamilyService
	validator      *validator.Validate

	principal *auth.Principal
	caller    *models.User
}

// SetupTest sets up the test suite
func (suite *FamilyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFamilyRepo = mocks.NewMockFamilyRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCodes = mocks.NewMockCodeGenerator(suite.ctrl)
	suite.validator = validator.New()

	suite.familyService = service.NewFamilyService(suite.mockFamilyRepo, suite.mockUserRepo, suite.mockCodes, suite.validator)

	suite.principal = &auth.Principal{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "caller@test.com",
		Role:           "MEMBER",
	}
	suite.caller = &models.User{
		BaseModel:      models.BaseModel{ID: suite.principal.UserID},
		OrganizationID: suite.principal.OrganizationID,
		Email:          suite.principal.Email,
		DisplayName:    "Caller",
		Role:           models.UserRoleMember,
	}
}

// TearDownTest cleans up after each test
func (suite *FamilyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FamilyServiceTestSuite) expectLoadCaller(user *models.User) {
	suite.mockUserRepo.EXPECT().
		GetByID(suite.principal.OrganizationID, suite.principal.UserID).
		Return(user, nil).
		Times(1)
}

func (suite *FamilyServiceTestSuite) affiliatedCaller(familyID uuid.UUID) *models.User {
	user := *suite.caller
	user.FamilyID = &familyID
	return &user
}

// TestCreateFamily tests the happy path: family row first, membership second
func (suite *FamilyServiceTestSuite) TestCreateFamily() {
	req := &service.CreateFamilyRequest{Name: "The Does", Description: "Family budget"}
	familyID := uuid.New()

	suite.expectLoadCaller(suite.caller)

	suite.mockCodes.EXPECT().Generate().Return("AB12CD", nil).Times(1)
	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockFamilyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(family *models.Family) error {
			assert.Equal(suite.T(), suite.principal.OrganizationID, family.OrganizationID)
			assert.Equal(suite.T(), suite.principal.UserID, family.CreatedByID)
			assert.Equal(suite.T(), "AB12CD", family.InviteCode)
			family.ID = familyID
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().
		AssignFamily(suite.principal.UserID, familyID).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByFamilyID(familyID).
		Return([]models.User{*suite.affiliatedCaller(familyID)}, nil).
		Times(1)

	response, err := suite.familyService.Create(suite.principal, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), familyID, response.ID)
	assert.Equal(suite.T(), "The Does", response.Name)
	assert.Equal(suite.T(), "AB12CD", response.InviteCode)
	assert.Equal(suite.T(), suite.principal.UserID, response.CreatedByID)
	assert.Len(suite.T(), response.Members, 1)
	assert.Equal(suite.T(), suite.principal.UserID, response.Members[0].ID)
}

// TestCreateFamilyValidationError tests that an empty name fails before any write
func (suite *FamilyServiceTestSuite) TestCreateFamilyValidationError() {
	req := &service.CreateFamilyRequest{Name: ""}

	response, err := suite.familyService.Create(suite.principal, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

// TestCreateFamilyAlreadyInFamily tests that an affiliated caller cannot create
func (suite *FamilyServiceTestSuite) TestCreateFamilyAlreadyInFamily() {
	req := &service.CreateFamilyRequest{Name: "The Does"}

	suite.expectLoadCaller(suite.affiliatedCaller(uuid.New()))

	response, err := suite.familyService.Create(suite.principal, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInFamily)
}

// TestCreateFamilyCodeCollisionRetries tests that a taken code triggers a redraw
func (suite *FamilyServiceTestSuite) TestCreateFamilyCodeCollisionRetries() {
	req := &service.CreateFamilyRequest{Name: "The Does"}
	familyID := uuid.New()
	taken := &models.Family{BaseModel: models.BaseModel{ID: uuid.New()}, InviteCode: "TAKEN1"}

	suite.expectLoadCaller(suite.caller)

	gomock.InOrder(
		suite.mockCodes.EXPECT().Generate().Return("TAKEN1", nil),
		suite.mockFamilyRepo.EXPECT().
			GetByInviteCode(suite.principal.OrganizationID, "TAKEN1").
			Return(taken, nil),
		suite.mockCodes.EXPECT().Generate().Return("FREE22", nil),
		suite.mockFamilyRepo.EXPECT().
			GetByInviteCode(suite.principal.OrganizationID, "FREE22").
			Return(nil, gorm.ErrRecordNotFound),
	)

	suite.mockFamilyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(family *models.Family) error {
			assert.Equal(suite.T(), "FREE22", family.InviteCode)
			family.ID = familyID
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().AssignFamily(suite.principal.UserID, familyID).Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByFamilyID(familyID).Return([]models.User{}, nil).Times(1)

	response, err := suite.familyService.Create(suite.principal, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "FREE22", response.InviteCode)
}

// TestCreateFamilyCodeGenerationExhausted tests giving up after repeated collisions
func (suite *FamilyServiceTestSuite) TestCreateFamilyCodeGenerationExhausted() {
	req := &service.CreateFamilyRequest{Name: "The Does"}
	taken := &models.Family{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.expectLoadCaller(suite.caller)

	suite.mockCodes.EXPECT().Generate().Return("TAKEN1", nil).Times(5)
	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "TAKEN1").
		Return(taken, nil).
		Times(5)

	response, err := suite.familyService.Create(suite.principal, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCodeGenerationExhausted)
}

// TestCreateFamilyRollsBackOnAssignFailure tests the compensating delete
func (suite *FamilyServiceTestSuite) TestCreateFamilyRollsBackOnAssignFailure() {
	req := &service.CreateFamilyRequest{Name: "The Does"}
	familyID := uuid.New()

	suite.expectLoadCaller(suite.caller)

	suite.mockCodes.EXPECT().Generate().Return("AB12CD", nil).Times(1)
	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockFamilyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(family *models.Family) error {
			family.ID = familyID
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().
		AssignFamily(suite.principal.UserID, familyID).
		Return(errors.New("connection reset")).
		Times(1)

	// The family row must be deleted again so no memberless family survives
	suite.mockFamilyRepo.EXPECT().
		Delete(familyID).
		Return(nil).
		Times(1)

	response, err := suite.familyService.Create(suite.principal, req)

	assert.Nil(suite.T(), response)
	var persistenceErr *apperrors.PersistenceError
	assert.ErrorAs(suite.T(), err, &persistenceErr)
	var compensationErr *apperrors.CompensationError
	assert.False(suite.T(), errors.As(err, &compensationErr))
}

// TestCreateFamilyCompensationFailure tests that both errors surface when the rollback fails too
func (suite *FamilyServiceTestSuite) TestCreateFamilyCompensationFailure() {
	req := &service.CreateFamilyRequest{Name: "The Does"}
	familyID := uuid.New()

	suite.expectLoadCaller(suite.caller)

	suite.mockCodes.EXPECT().Generate().Return("AB12CD", nil).Times(1)
	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockFamilyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(family *models.Family) error {
			family.ID = familyID
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().
		AssignFamily(suite.principal.UserID, familyID).
		Return(errors.New("connection reset")).
		Times(1)
	suite.mockFamilyRepo.EXPECT().
		Delete(familyID).
		Return(errors.New("still unreachable")).
		Times(1)

	response, err := suite.familyService.Create(suite.principal, req)

	assert.Nil(suite.T(), response)
	var compensationErr *apperrors.CompensationError
	assert.ErrorAs(suite.T(), err, &compensationErr)
	assert.Contains(suite.T(), compensationErr.Original.Error(), "connection reset")
	assert.Contains(suite.T(), compensationErr.Compensation.Error(), "still unreachable")
}

// TestJoinFamily tests joining via an invite code
func (suite *FamilyServiceTestSuite) TestJoinFamily() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		Name:           "The Does",
		InviteCode:     "AB12CD",
		CreatedByID:    uuid.New(),
	}

	suite.expectLoadCaller(suite.caller)

	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(family, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		AssignFamily(suite.principal.UserID, familyID).
		Return(nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByFamilyID(familyID).
		Return([]models.User{*suite.affiliatedCaller(familyID)}, nil).
		Times(1)

	response, err := suite.familyService.Join(suite.principal, &service.JoinFamilyRequest{InviteCode: "AB12CD"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), familyID, response.ID)
	assert.Len(suite.T(), response.Members, 1)
}

// TestJoinFamilyNormalizesCase tests that lowercase input matches the stored code
func (suite *FamilyServiceTestSuite) TestJoinFamilyNormalizesCase() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		Name:           "The Does",
		InviteCode:     "AB12CD",
	}

	suite.expectLoadCaller(suite.caller)

	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(family, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().AssignFamily(suite.principal.UserID, familyID).Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByFamilyID(familyID).Return([]models.User{}, nil).Times(1)

	response, err := suite.familyService.Join(suite.principal, &service.JoinFamilyRequest{InviteCode: "ab12cd"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), familyID, response.ID)
}

// TestJoinFamilyInvalidCode tests that an unknown code maps to the invite-code error
func (suite *FamilyServiceTestSuite) TestJoinFamilyInvalidCode() {
	suite.expectLoadCaller(suite.caller)

	// A code that only exists in another organization comes back not-found
	// here too, so cross-tenant probing is indistinguishable from a typo.
	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "ZZ99ZZ").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.familyService.Join(suite.principal, &service.JoinFamilyRequest{InviteCode: "ZZ99ZZ"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidInviteCode)
}

// TestJoinFamilyAlreadyInFamily tests that an affiliated caller cannot join
func (suite *FamilyServiceTestSuite) TestJoinFamilyAlreadyInFamily() {
	suite.expectLoadCaller(suite.affiliatedCaller(uuid.New()))

	response, err := suite.familyService.Join(suite.principal, &service.JoinFamilyRequest{InviteCode: "AB12CD"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInFamily)
}

// TestJoinFamilyLostRace tests the concurrent-affiliation window between read and update
func (suite *FamilyServiceTestSuite) TestJoinFamilyLostRace() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		InviteCode:     "AB12CD",
	}

	suite.expectLoadCaller(suite.caller)

	suite.mockFamilyRepo.EXPECT().
		GetByInviteCode(suite.principal.OrganizationID, "AB12CD").
		Return(family, nil).
		Times(1)
	// Conditional update matched zero rows: someone else affiliated the user first
	suite.mockUserRepo.EXPECT().
		AssignFamily(suite.principal.UserID, familyID).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.familyService.Join(suite.principal, &service.JoinFamilyRequest{InviteCode: "AB12CD"})

	assert.Nil(suite.T(), response)
	var persistenceErr *apperrors.PersistenceError
	assert.ErrorAs(suite.T(), err, &persistenceErr)
}

// TestLeaveFamilyNotInFamily tests leaving while unaffiliated
func (suite *FamilyServiceTestSuite) TestLeaveFamilyNotInFamily() {
	suite.expectLoadCaller(suite.caller)

	err := suite.familyService.Leave(suite.principal)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotInFamily)
}

// TestLeaveFamilyAsMember tests that a non-creator just clears membership
func (suite *FamilyServiceTestSuite) TestLeaveFamilyAsMember() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		CreatedByID:    uuid.New(), // someone else
	}

	suite.expectLoadCaller(suite.affiliatedCaller(familyID))

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(family, nil).Times(1)
	suite.mockUserRepo.EXPECT().ClearFamily(suite.principal.UserID).Return(nil).Times(1)

	err := suite.familyService.Leave(suite.principal)

	assert.NoError(suite.T(), err)
}

// TestLeaveFamilyCreatorWithMembers tests the creator-leaves-last rule
func (suite *FamilyServiceTestSuite) TestLeaveFamilyCreatorWithMembers() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		CreatedByID:    suite.principal.UserID,
	}

	suite.expectLoadCaller(suite.affiliatedCaller(familyID))

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(family, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		CountByFamilyIDExcluding(familyID, suite.principal.UserID).
		Return(int64(2), nil).
		Times(1)

	err := suite.familyService.Leave(suite.principal)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCreatorCannotLeaveWithMembers)
}

// TestLeaveFamilyCreatorAlone tests that leaving as the sole creator deletes the family
func (suite *FamilyServiceTestSuite) TestLeaveFamilyCreatorAlone() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		CreatedByID:    suite.principal.UserID,
	}

	suite.expectLoadCaller(suite.affiliatedCaller(familyID))

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(family, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		CountByFamilyIDExcluding(familyID, suite.principal.UserID).
		Return(int64(0), nil).
		Times(2) // before and after the clear
	suite.mockUserRepo.EXPECT().ClearFamily(suite.principal.UserID).Return(nil).Times(1)
	suite.mockFamilyRepo.EXPECT().Delete(familyID).Return(nil).Times(1)

	err := suite.familyService.Leave(suite.principal)

	assert.NoError(suite.T(), err)
}

// TestLeaveFamilyCreatorConcurrentJoin tests that a join landing between the
// count and the clear keeps the family alive
func (suite *FamilyServiceTestSuite) TestLeaveFamilyCreatorConcurrentJoin() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		CreatedByID:    suite.principal.UserID,
	}

	suite.expectLoadCaller(suite.affiliatedCaller(familyID))

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(family, nil).Times(1)
	gomock.InOrder(
		suite.mockUserRepo.EXPECT().
			CountByFamilyIDExcluding(familyID, suite.principal.UserID).
			Return(int64(0), nil),
		suite.mockUserRepo.EXPECT().
			ClearFamily(suite.principal.UserID).
			Return(nil),
		suite.mockUserRepo.EXPECT().
			CountByFamilyIDExcluding(familyID, suite.principal.UserID).
			Return(int64(1), nil),
	)
	// No familyRepo.Delete expectation: the family must survive

	err := suite.familyService.Leave(suite.principal)

	assert.NoError(suite.T(), err)
}

// TestLeaveFamilyStaleReference tests clearing a reference to a deleted family
func (suite *FamilyServiceTestSuite) TestLeaveFamilyStaleReference() {
	familyID := uuid.New()

	suite.expectLoadCaller(suite.affiliatedCaller(familyID))

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().ClearFamily(suite.principal.UserID).Return(nil).Times(1)

	err := suite.familyService.Leave(suite.principal)

	assert.NoError(suite.T(), err)
}

// TestGetCurrentFamilyUnaffiliated tests the nil result for an unaffiliated caller
func (suite *FamilyServiceTestSuite) TestGetCurrentFamilyUnaffiliated() {
	suite.expectLoadCaller(suite.caller)

	response, err := suite.familyService.GetCurrent(suite.principal)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestGetCurrentFamily tests loading the caller's family with its member list
func (suite *FamilyServiceTestSuite) TestGetCurrentFamily() {
	familyID := uuid.New()
	family := &models.Family{
		BaseModel:      models.BaseModel{ID: familyID},
		OrganizationID: suite.principal.OrganizationID,
		Name:           "The Does",
		InviteCode:     "AB12CD",
		CreatedByID:    suite.principal.UserID,
	}
	member := *suite.affiliatedCaller(familyID)
	other := models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.principal.OrganizationID,
		Email:          "other@test.com",
		DisplayName:    "Other",
		Role:           models.UserRoleMember,
		FamilyID:       &familyID,
	}

	suite.expectLoadCaller(&member)

	suite.mockFamilyRepo.EXPECT().GetByID(familyID).Return(family, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByFamilyID(familyID).Return([]models.User{member, other}, nil).Times(1)

	response, err := suite.familyService.GetCurrent(suite.principal)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), familyID, response.ID)
	assert.Len(suite.T(), response.Members, 2)
	assert.Equal(suite.T(), "other@test.com", response.Members[1].Email)
}

// TestFamilyServiceTestSuite runs the test suite
func TestFamilyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FamilyServiceTestSuite))
}
