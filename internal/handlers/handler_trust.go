package handlers

import (
	"net/http"

	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// trustHandler exposes the club trust gate as read-only endpoints.
type trustHandler struct {
	trustService portssvc.TrustSvcFacade
}

func newTrustHandler(ts portssvc.TrustSvcFacade) *trustHandler {
	return &trustHandler{trustService: ts}
}

// registerTrustRoutes registers trust status routes beneath a club group.
func registerTrustRoutes(rg *gin.RouterGroup, trustService portssvc.TrustSvcFacade) {
	h := newTrustHandler(trustService)

	rg.GET("/trust-status", h.getTrustStatus)
	rg.GET("/outstanding-impact-reports", h.listOutstanding)
}

// getTrustStatus godoc
// @Summary Get a club's trust status
// @Description Reports the club's outstanding impact obligations and whether it may publish campaigns
// @Tags trust
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {object} dto.TrustStatusResponse
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/trust-status [get]
func (h *trustHandler) getTrustStatus(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.trustService.CheckTrustStatus(c.Request.Context(), clubID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to check trust status")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrustStatusResponse(*status))
}

// listOutstanding godoc
// @Summary List events with outstanding impact reports
// @Description Lists ended events inside the reporting window that still owe a published impact report
// @Tags trust
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {array} dto.EventResponse
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/outstanding-impact-reports [get]
func (h *trustHandler) listOutstanding(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.trustService.GetOutstandingImpactReports(c.Request.Context(), clubID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list outstanding impact reports")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}
