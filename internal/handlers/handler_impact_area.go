package handlers

import (
	"net/http"

	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// impactAreaHandler handles HTTP requests for impact area reference data.
type impactAreaHandler struct {
	areaService portssvc.ImpactAreaSvcFacade
}

func newImpactAreaHandler(as portssvc.ImpactAreaSvcFacade) *impactAreaHandler {
	return &impactAreaHandler{areaService: as}
}

func registerImpactAreaRoutes(rg *gin.RouterGroup, areaService portssvc.ImpactAreaSvcFacade) {
	h := newImpactAreaHandler(areaService)

	areas := rg.Group("/impact-areas")
	{
		areas.POST("", h.createImpactArea)
		areas.GET("", h.listImpactAreas)
		areas.GET("/:areaID", h.getImpactArea)
	}
}

// createImpactArea godoc
// @Summary Create an impact area
// @Tags impact-areas
// @Accept  json
// @Produce  json
// @Param   area body dto.CreateImpactAreaRequest true "Impact area details"
// @Success 201 {object} dto.ImpactAreaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /impact-areas [post]
func (h *impactAreaHandler) createImpactArea(c *gin.Context) {
	var req dto.CreateImpactAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	area, err := h.areaService.CreateImpactArea(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create impact area")
		return
	}

	c.JSON(http.StatusCreated, dto.ToImpactAreaResponse(area))
}

// listImpactAreas godoc
// @Summary List impact areas
// @Tags impact-areas
// @Produce  json
// @Success 200 {array} dto.ImpactAreaResponse
// @Security BearerAuth
// @Router /impact-areas [get]
func (h *impactAreaHandler) listImpactAreas(c *gin.Context) {
	areas, err := h.areaService.ListImpactAreas(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list impact areas")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactAreaResponses(areas))
}

// getImpactArea godoc
// @Summary Get an impact area
// @Tags impact-areas
// @Produce  json
// @Param   areaID path string true "Impact area ID"
// @Success 200 {object} dto.ImpactAreaResponse
// @Failure 404 {object} map[string]string "Impact area not found"
// @Security BearerAuth
// @Router /impact-areas/{areaID} [get]
func (h *impactAreaHandler) getImpactArea(c *gin.Context) {
	area, err := h.areaService.GetImpactAreaByID(c.Request.Context(), c.Param("areaID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve impact area")
		return
	}

	c.JSON(http.StatusOK, dto.ToImpactAreaResponse(area))
}
