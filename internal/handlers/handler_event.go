package handlers

import (
	"net/http"

	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers event routes beneath a club group.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:eventID", h.getEvent)
		events.POST("/:eventID/end", h.endEvent)
	}
}

// createEvent godoc
// @Summary Create an event
// @Description Creates a fundraising event, optionally attached to a campaign
// @Tags events
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a club member"
// @Failure 404 {object} map[string]string "Campaign not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), clubID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List a club's events
// @Tags events
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {array} dto.EventResponse
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), clubID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// getEvent godoc
// @Summary Get an event
// @Tags events
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	clubID := c.Param("clubID")
	eventID := c.Param("eventID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), clubID, eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// endEvent godoc
// @Summary End an event
// @Description Marks an event as ended; the club then owes an impact report for it
// @Tags events
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event already ended or cancelled"
// @Security BearerAuth
// @Router /clubs/{clubID}/events/{eventID}/end [post]
func (h *eventHandler) endEvent(c *gin.Context) {
	clubID := c.Param("clubID")
	eventID := c.Param("eventID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.eventService.EndEvent(c.Request.Context(), clubID, eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to end event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
