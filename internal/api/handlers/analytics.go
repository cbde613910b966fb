package handlers

import (
	"net/http"
	"time"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsHandler handles HTTP requests for transaction analytics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSummary handles GET /analytics/summary
// @Summary Summarize transactions for a period
// @Description Compute income/expense totals, category breakdown, monthly trend and previous-period deltas for the caller's transactions.
// @Tags analytics
// @Produce json
// @Param start_date query string true "Period start (YYYY-MM-DD)"
// @Param end_date query string true "Period end (YYYY-MM-DD), inclusive"
// @Param asset_id query string false "Restrict to one asset (UUID)"
// @Param signed_categories query bool false "Sign expense amounts negatively in the category breakdown"
// @Success 200 {object} service.SummaryResponse "Computed summary"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	req := &service.SummaryRequest{
		StartDate:        startDate,
		EndDate:          endDate,
		SignedCategories: c.Query("signed_categories") == "true",
	}

	if assetIDStr := c.Query("asset_id"); assetIDStr != "" {
		assetID, err := uuid.Parse(assetIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
			return
		}
		req.AssetID = &assetID
	}

	summary, err := h.analyticsService.Summarize(principal, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
