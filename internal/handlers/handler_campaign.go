package handlers

import (
	"net/http"

	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// campaignHandler handles HTTP requests related to campaigns.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(cs portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: cs}
}

// registerCampaignRoutes registers campaign routes beneath a club group.
func registerCampaignRoutes(rg *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.createCampaign)
		campaigns.GET("", h.listCampaigns)
		campaigns.GET("/:campaignID", h.getCampaign)
		campaigns.POST("/:campaignID/publish", h.publishCampaign)
	}
}

// createCampaign godoc
// @Summary Create a campaign
// @Description Creates a draft campaign; activation is a separate, trust-gated step
// @Tags campaigns
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), clubID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create campaign")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// listCampaigns godoc
// @Summary List a club's campaigns
// @Tags campaigns
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {array} dto.CampaignResponse
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context(), clubID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list campaigns")
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponses(campaigns))
}

// getCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   campaignID path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} map[string]string "Campaign not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/campaigns/{campaignID} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	clubID := c.Param("clubID")
	campaignID := c.Param("campaignID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), clubID, campaignID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve campaign")
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// publishCampaign godoc
// @Summary Publish a campaign
// @Description Activates a draft campaign; blocked while the club has outstanding or overdue impact reports
// @Tags campaigns
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   campaignID path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 403 {object} map[string]string "Blocked by the trust gate"
// @Failure 404 {object} map[string]string "Campaign not found"
// @Failure 409 {object} map[string]string "Campaign is not a draft"
// @Security BearerAuth
// @Router /clubs/{clubID}/campaigns/{campaignID}/publish [post]
func (h *campaignHandler) publishCampaign(c *gin.Context) {
	clubID := c.Param("clubID")
	campaignID := c.Param("campaignID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.PublishCampaign(c.Request.Context(), clubID, campaignID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to publish campaign")
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}
