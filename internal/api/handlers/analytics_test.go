package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/mocks"
	"family-finance-backend/internal/service"
	"family-finance-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalyticsHandlerTestSuite defines the test suite for AnalyticsHandler
type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockAnalyticsService *mocks.MockAnalyticsServiceInterface
	handler              *AnalyticsHandler
	httpSuite            *testutils.HTTPTestSuite
	principal            *auth.Principal
}

// SetupTest sets up the test suite
func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnalyticsService = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)

	suite.handler = NewAnalyticsHandler(suite.mockAnalyticsService)

	suite.principal = &auth.Principal{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
	}

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, suite.principal)
		c.Next()
	})
	v1.GET("/analytics/summary", suite.handler.GetSummary)
}

// TearDownTest cleans up after each test
func (suite *AnalyticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetSummary tests the summary endpoint with both dates
func (suite *AnalyticsHandlerTestSuite) TestGetSummary() {
	expectedResponse := &service.SummaryResponse{
		TotalIncome:       1000,
		TotalExpenses:     400,
		NetIncome:         600,
		CategoryBreakdown: map[string]float64{"Groceries": 400},
		MonthlyTrend: map[string]service.MonthlyTotals{
			"2025-03": {Income: 1000, Expenses: 400},
		},
	}

	suite.mockAnalyticsService.EXPECT().
		Summarize(suite.principal, gomock.Any()).
		DoAndReturn(func(_ *auth.Principal, req *service.SummaryRequest) (*service.SummaryResponse, error) {
			assert.Equal(suite.T(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), req.StartDate)
			assert.Equal(suite.T(), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), req.EndDate)
			assert.Nil(suite.T(), req.AssetID)
			assert.False(suite.T(), req.SignedCategories)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/analytics/summary?start_date=2025-03-01&end_date=2025-03-31", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.SummaryResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 600.0, response.NetIncome)
	assert.Equal(suite.T(), 400.0, response.CategoryBreakdown["Groceries"])
}

// TestGetSummaryWithAssetFilter tests that asset_id and signed_categories are forwarded
func (suite *AnalyticsHandlerTestSuite) TestGetSummaryWithAssetFilter() {
	assetID := uuid.New()

	suite.mockAnalyticsService.EXPECT().
		Summarize(suite.principal, gomock.Any()).
		DoAndReturn(func(_ *auth.Principal, req *service.SummaryRequest) (*service.SummaryResponse, error) {
			assert.NotNil(suite.T(), req.AssetID)
			assert.Equal(suite.T(), assetID, *req.AssetID)
			assert.True(suite.T(), req.SignedCategories)
			return &service.SummaryResponse{}, nil
		}).
		Times(1)

	url := fmt.Sprintf("/api/v1/analytics/summary?start_date=2025-03-01&end_date=2025-03-31&asset_id=%s&signed_categories=true", assetID)
	recorder := suite.httpSuite.MakeRequest("GET", url, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetSummaryMissingDates tests that absent dates fail before the service runs
func (suite *AnalyticsHandlerTestSuite) TestGetSummaryMissingDates() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/analytics/summary", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "start_date")
}

// TestGetSummaryMalformedDate tests the date format guard
func (suite *AnalyticsHandlerTestSuite) TestGetSummaryMalformedDate() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/analytics/summary?start_date=2025-03-01&end_date=March+31", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "end_date")
}

// TestGetSummaryBadAssetID tests the asset id guard
func (suite *AnalyticsHandlerTestSuite) TestGetSummaryBadAssetID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/analytics/summary?start_date=2025-03-01&end_date=2025-03-31&asset_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid asset ID")
}

// TestAnalyticsHandlerTestSuite runs the test suite
func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}
