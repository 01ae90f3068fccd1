package handlers

import (
	"context"
	"net/http"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financeHandler handles HTTP requests for the club ledger.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// RegisterFinanceRoutes registers ledger routes beneath a club group.
func RegisterFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finances := rg.Group("/finances")
	{
		finances.POST("/income", h.createIncome)
		finances.PUT("/income/:entryID", h.updateIncome)
		finances.DELETE("/income/:entryID", h.deleteIncome)
		finances.POST("/expenses", h.createExpense)
		finances.PUT("/expenses/:entryID", h.updateExpense)
		finances.DELETE("/expenses/:entryID", h.deleteExpense)
		finances.GET("/entries", h.listEntries)
		finances.GET("/summary", h.getSummary)
		finances.POST("/events/:eventID/recalculate", h.recalculateEvent)
		finances.POST("/campaigns/:campaignID/recalculate", h.recalculateCampaign)
	}
}

// createIncome godoc
// @Summary Record an income entry
// @Description Records income against the club, an event, or a campaign, and recomputes the affected rollups
// @Tags finances
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   entry body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Scope target not found"
// @Failure 409 {object} map[string]string "Entry references both an event and a campaign"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/income [post]
func (h *financeHandler) createIncome(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.financeService.CreateIncome(c.Request.Context(), clubID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record income")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// createExpense godoc
// @Summary Record an expense entry
// @Tags finances
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   entry body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Scope target not found"
// @Failure 409 {object} map[string]string "Entry references both an event and a campaign"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/expenses [post]
func (h *financeHandler) createExpense(c *gin.Context) {
	clubID := c.Param("clubID")
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.financeService.CreateExpense(c.Request.Context(), clubID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

func (h *financeHandler) updateEntry(
	c *gin.Context,
	update func(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error),
	fallback string,
) {
	clubID := c.Param("clubID")
	entryID := c.Param("entryID")
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := update(c.Request.Context(), clubID, entryID, req, userID)
	if err != nil {
		respondServiceError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

func (h *financeHandler) deleteEntry(
	c *gin.Context,
	del func(ctx context.Context, clubID, entryID string, userID string) error,
	fallback string,
) {
	clubID := c.Param("clubID")
	entryID := c.Param("entryID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := del(c.Request.Context(), clubID, entryID, userID); err != nil {
		respondServiceError(c, err, fallback)
		return
	}

	c.Status(http.StatusNoContent)
}

// updateIncome godoc
// @Summary Update an income entry
// @Description Updates the mutable fields of an income entry; scope is immutable
// @Tags finances
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/income/{entryID} [put]
func (h *financeHandler) updateIncome(c *gin.Context) {
	h.updateEntry(c, h.financeService.UpdateIncome, "Failed to update income")
}

// updateExpense godoc
// @Summary Update an expense entry
// @Tags finances
// @Accept  json
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/expenses/{entryID} [put]
func (h *financeHandler) updateExpense(c *gin.Context) {
	h.updateEntry(c, h.financeService.UpdateExpense, "Failed to update expense")
}

// deleteIncome godoc
// @Summary Delete an income entry
// @Tags finances
// @Param   clubID path string true "Club ID"
// @Param   entryID path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/income/{entryID} [delete]
func (h *financeHandler) deleteIncome(c *gin.Context) {
	h.deleteEntry(c, h.financeService.DeleteIncome, "Failed to delete income")
}

// deleteExpense godoc
// @Summary Delete an expense entry
// @Tags finances
// @Param   clubID path string true "Club ID"
// @Param   entryID path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/expenses/{entryID} [delete]
func (h *financeHandler) deleteExpense(c *gin.Context) {
	h.deleteEntry(c, h.financeService.DeleteExpense, "Failed to delete expense")
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists a club's ledger entries newest first, with keyset pagination
// @Tags finances
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   kind query string false "Filter by kind (INCOME or EXPENSE)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/entries [get]
func (h *financeHandler) listEntries(c *gin.Context) {
	clubID := c.Param("clubID")
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, err := h.financeService.ListEntries(c.Request.Context(), clubID, userID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, page)
}

// getSummary godoc
// @Summary Get the club financial summary
// @Description Computes the club-wide totals and breakdowns from the live ledger
// @Tags finances
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Success 200 {object} dto.ClubSummaryResponse
// @Failure 403 {object} map[string]string "Not a club member"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	clubID := c.Param("clubID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.financeService.GetClubFinancialSummary(c.Request.Context(), clubID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToClubSummaryResponse(summary))
}

// recalculateEvent godoc
// @Summary Recalculate an event's financials
// @Description Resums the event's rollup from its live entries; repairs any staleness
// @Tags finances
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   eventID path string true "Event ID"
// @Success 200 {object} domain.EventRollup
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/events/{eventID}/recalculate [post]
func (h *financeHandler) recalculateEvent(c *gin.Context) {
	clubID := c.Param("clubID")
	eventID := c.Param("eventID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rollup, err := h.financeService.RecalculateEventFinancials(c.Request.Context(), clubID, eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to recalculate event financials")
		return
	}

	c.JSON(http.StatusOK, rollup)
}

// recalculateCampaign godoc
// @Summary Recalculate a campaign's financials
// @Tags finances
// @Produce  json
// @Param   clubID path string true "Club ID"
// @Param   campaignID path string true "Campaign ID"
// @Success 200 {object} domain.CampaignRollup
// @Failure 404 {object} map[string]string "Campaign not found"
// @Security BearerAuth
// @Router /clubs/{clubID}/finances/campaigns/{campaignID}/recalculate [post]
func (h *financeHandler) recalculateCampaign(c *gin.Context) {
	clubID := c.Param("clubID")
	campaignID := c.Param("campaignID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rollup, err := h.financeService.RecalculateCampaignFinancials(c.Request.Context(), clubID, campaignID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to recalculate campaign financials")
		return
	}

	c.JSON(http.StatusOK, rollup)
}
