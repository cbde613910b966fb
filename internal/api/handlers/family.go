package handlers

import (
	"net/http"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FamilyHandler handles HTTP requests for family lifecycle operations
type FamilyHandler struct {
	familyService service.FamilyServiceInterface
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService service.FamilyServiceInterface) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
	}
}

// CreateFamily handles POST /families
// @Summary Create a family
// @Description Create a family and make the caller its creator. Fails if the caller already belongs to one.
// @Tags families
// @Accept json
// @Produce json
// @Param family body service.CreateFamilyRequest true "Family data"
// @Success 201 {object} service.FamilyResponse "Successfully created family"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Caller already in a family"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /families [post]
func (h *FamilyHandler) CreateFamily(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req service.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	family, err := h.familyService.Create(principal, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, family)
}

// JoinFamily handles POST /families/join
// @Summary Join a family by invite code
// @Description Affiliate the caller with the family behind the invite code. Codes are scoped to the caller's organization.
// @Tags families
// @Accept json
// @Produce json
// @Param join body service.JoinFamilyRequest true "Invite code"
// @Success 200 {object} service.FamilyResponse "Joined family"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Invalid invite code"
// @Failure 409 {object} map[string]interface{} "Caller already in a family"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /families/join [post]
func (h *FamilyHandler) JoinFamily(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req service.JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	family, err := h.familyService.Join(principal, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, family)
}

// LeaveFamily handles POST /families/leave
// @Summary Leave the current family
// @Description Remove the caller from their family. The creator can only leave once no other members remain; the family is then deleted.
// @Tags families
// @Produce json
// @Success 200 {object} map[string]interface{} "Left family"
// @Failure 409 {object} map[string]interface{} "Not in a family, or creator with remaining members"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /families/leave [post]
func (h *FamilyHandler) LeaveFamily(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.familyService.Leave(principal); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCurrentFamily handles GET /families/current
// @Summary Get the caller's current family
// @Description Return the caller's family with its member list, or null when unaffiliated.
// @Tags families
// @Produce json
// @Success 200 {object} service.FamilyResponse "Current family or null"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /families/current [get]
func (h *FamilyHandler) GetCurrentFamily(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	family, err := h.familyService.GetCurrent(principal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"family": family})
}
