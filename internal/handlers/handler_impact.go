package handlers

import (
	"net/http"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// impactHandler handles HTTP requests for impact records.
type impactHandler struct {
	impactService portssvc.ImpactSvcFacade
}

func newImpactHandler(is portssvc.ImpactSvcFacade) *impactHandler {
	return &impactHandler{impactService: is}
}

// registerImpactRoutes registers impact record routes beneath a club group.
func registerImpactRoutes(rg *gin.RouterGroup, impactService portssvc.ImpactSvcFacade) {
	h := newImpactHandler(impactService)

	impacts := rg.Group("/impacts")
	{
		impacts.POST("", h.createImpact)
		impacts.GET("", h.listImpacts)
		impacts.GET("/:impactID", h.getImpact)
		impacts.PUT("/:impactID", h.updateImpact)
		impacts.DELETE("/:impactID", h.deleteImpact)
		impacts.POST("/:impactID/publish", h.publishImpact)
		impacts.GET("/:impactID/can-finalize", h.canFinalize)
		impacts.POST("/:impactID/finalize", h.finalizeImpact)
	}
}

// createImpact godoc
// @Summary Create an impact record
// @Description Creates a draft impact record for an event or a campaign
// @Tags impacts
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impact body dto.CreateImpactRequest true "Impact record details"
// @Success 201 {object} dto.ImpactResponse
// @Failure 400 {object} map[string]string "Invalid input or club-level scope"
// @Failure 404 {object} map[string]string "Scope target not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts [post]
func (h *impactHandler) createImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.CreateImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.impactService.CreateImpact(c.Request.Context(), clubID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create impact record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToImpactResponse(record))
}

// listImpacts godoc
// @Summary List impact records for a scope
// @Description Lists impact records for the event or campaign given in the query
// @Tags impacts
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   eventID query string false "Event ID"
// @Param   campaignID query string false "Campaign ID"
// @Success 200 {array} dto.ImpactResponse
// @Failure 409 {object} map[string]string "Both eventID and campaignID given"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts [get]
func (h *impactHandler) listImpacts(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var eventID, campaignID *string
	if v := c.Query("eventID"); v != "" {
		eventID = &v
	}
	if v := c.Query("campaignID"); v != "" {
		campaignID = &v
	}
	scope, err := domain.NewScope(eventID, campaignID)
	if err != nil {
		respondServiceError(c, err, "Failed to list impact records")
		return
	}

	records, err := h.impactService.ListImpactsByScope(c.Request.Context(), clubID, scope, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list impact records")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactResponses(records))
}

// getImpact godoc
// @Summary Get an impact record
// @Tags impacts
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Success 200 {object} dto.ImpactResponse
// @Failure 404 {object} map[string]string "Impact record not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID} [get]
func (h *impactHandler) getImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.impactService.GetImpactByID(c.Request.Context(), clubID, impactID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve impact record")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactResponse(record))
}

// updateImpact godoc
// @Summary Update an impact record
// @Description Updates a draft impact record; only the creator may edit it
// @Tags impacts
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Param   impact body dto.UpdateImpactRequest true "Fields to update"
// @Success 200 {object} dto.ImpactResponse
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Record is not a draft"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID} [put]
func (h *impactHandler) updateImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	var req dto.UpdateImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.impactService.UpdateImpact(c.Request.Context(), clubID, impactID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update impact record")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactResponse(record))
}

// deleteImpact godoc
// @Summary Delete an impact record
// @Description Deletes a draft impact record; only the creator may delete it
// @Tags impacts
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Success 204 "Record deleted"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Record is not a draft"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID} [delete]
func (h *impactHandler) deleteImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.impactService.DeleteImpact(c.Request.Context(), clubID, impactID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete impact record")
		return
	}

	c.Status(http.StatusNoContent)
}

// publishImpact godoc
// @Summary Publish an impact record
// @Description Publishes a draft once it carries enough evidence; clears the scope's pending status
// @Tags impacts
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Success 200 {object} dto.ImpactResponse
// @Failure 400 {object} map[string]string "Evidence requirements not met"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Record is not a draft"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID}/publish [post]
func (h *impactHandler) publishImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.impactService.PublishImpact(c.Request.Context(), clubID, impactID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to publish impact record")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactResponse(record))
}

// canFinalize godoc
// @Summary Check whether an impact record can be finalized
// @Description Scores the scope's published records and reports what is missing
// @Tags impacts
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Success 200 {object} dto.CanFinalizeResponse
// @Failure 404 {object} map[string]string "Impact record not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID}/can-finalize [get]
func (h *impactHandler) canFinalize(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.impactService.CanMarkAsFinal(c.Request.Context(), clubID, impactID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to check finalization status")
		return
	}

	c.JSON(http.StatusOK, result)
}

// finalizeImpact godoc
// @Summary Finalize an impact record
// @Description Marks a published record as the scope's final report when the aggregate proof score passes
// @Tags impacts
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   impactID path string true "Impact record ID"
// @Success 200 {object} dto.ImpactResponse
// @Failure 400 {object} map[string]string "Aggregate proof score too low"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Record not published or scope already has a final report"
// @Security BearerAuth
// @Router /clubs/{clubID}/impacts/{impactID}/finalize [post]
func (h *impactHandler) finalizeImpact(c *gin.Context) {
	clubID := c.Param("clubID")
	impactID := c.Param("impactID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.impactService.MarkAsFinal(c.Request.Context(), clubID, impactID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to finalize impact record")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactResponse(record))
}
