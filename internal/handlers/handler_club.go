package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clubHandler handles HTTP requests related to clubs and membership.
type clubHandler struct {
	clubService portssvc.ClubSvcFacade
}

func newClubHandler(cs portssvc.ClubSvcFacade) *clubHandler {
	return &clubHandler{clubService: cs}
}

// registerClubRoutes registers club routes and mounts the club-scoped
// sub-resources (events, campaigns, finances, impact) beneath them.
func registerClubRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newClubHandler(services.Club)

	clubs := rg.Group("/clubs")
	{
		clubs.POST("", h.createClub)
		clubs.GET("", h.listMyClubs)
		clubs.GET("/:clubID", h.getClub)
		clubs.GET("/:clubID/members", h.listMembers)
		clubs.POST("/:clubID/members", h.addMember)
	}

	club := clubs.Group("/:clubID")
	registerEventRoutes(club, services.Event)
	registerCampaignRoutes(club, services.Campaign)
	RegisterFinanceRoutes(club, services.Finance)
	registerImpactRoutes(club, services.Impact)
	registerTrustRoutes(club, services.Trust)
}

// createClub godoc
// @Summary Create a new club
// @Description Creates a club with the caller as its admin
// @Tags clubs
// @Accept  json
// @Produce  json
// @Param   club body dto.CreateClubRequest true "Club details"
// @Success 201 {object} dto.ClubResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /clubs [post]
func (h *clubHandler) createClub(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	club, err := h.clubService.CreateClub(c.Request.Context(), req.Name, req.Description, userID)
	if err != nil {
		logger.Error("Failed to create club", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create club"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToClubResponse(club))
}

// listMyClubs godoc
// @Summary List the caller's clubs
// @Tags clubs
// @Produce  json
// @Success 200 {array} dto.ClubResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /clubs [get]
func (h *clubHandler) listMyClubs(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	clubs, err := h.clubService.ListUserClubs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clubs"})
		return
	}

	responses := make([]dto.ClubResponse, len(clubs))
	for i := range clubs {
		responses[i] = dto.ToClubResponse(&clubs[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getClub godoc
// @Summary Get a club
// @Tags clubs
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {object} dto.ClubResponse
// @Failure 404 {object} map[string]string "Club not found"
// @Security BearerAuth
// @Router /clubs/{clubID} [get]
func (h *clubHandler) getClub(c *gin.Context) {
	clubID := c.Param("clubID")

	club, err := h.clubService.FindClubByID(c.Request.Context(), clubID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve club"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClubResponse(club))
}

// listMembers godoc
// @Summary List club members
// @Tags clubs
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {array} dto.ClubMemberResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /clubs/{clubID}/members [get]
func (h *clubHandler) listMembers(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.clubService.ListClubMembers(c.Request.Context(), clubID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClubMemberResponses(members))
}

// addMember godoc
// @Summary Add a member to a club
// @Description Adds a user to the club with a role; admin only
// @Tags clubs
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   member body dto.AddClubMemberRequest true "Member details"
// @Success 204 "Member added"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a club admin"
// @Security BearerAuth
// @Router /clubs/{clubID}/members [post]
func (h *clubHandler) addMember(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.AddClubMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.clubService.AddUserToClub(c.Request.Context(), userID, req.UserID, clubID, req.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
