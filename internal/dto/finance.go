package dto

import (
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScopeRef carries the nullable, mutually exclusive scope identifiers used on
// the wire. Absence of both means club-level.
type ScopeRef struct {
	EventID    *string `json:"eventID"`
	CampaignID *string `json:"campaignID"`
}

// CreateIncomeRequest defines the data needed to record an income entry.
type CreateIncomeRequest struct {
	ScopeRef
	Source        string          `json:"source" binding:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date          time.Time       `json:"date" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
}

// CreateExpenseRequest defines the data needed to record an expense entry.
type CreateExpenseRequest struct {
	ScopeRef
	Category      string             `json:"category" binding:"required"`
	Description   string             `json:"description"`
	Amount        decimal.Decimal    `json:"amount" binding:"required,gt=0"`
	Date          time.Time          `json:"date" binding:"required"`
	Vendor        *string            `json:"vendor"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	Status        domain.EntryStatus `json:"status" binding:"omitempty,oneof=PENDING PAID"`
}

// UpdateEntryRequest defines the data allowed for updating a ledger entry.
// Pointers distinguish omitted fields from zero values. The entry's scope is
// immutable; move money by deleting and recreating the entry.
type UpdateEntryRequest struct {
	Source        *string             `json:"source"`
	Category      *string             `json:"category"`
	Description   *string             `json:"description"`
	Amount        *decimal.Decimal    `json:"amount" binding:"omitempty,gt=0"`
	Date          *time.Time          `json:"date"`
	Vendor        *string             `json:"vendor"`
	PaymentMethod *string             `json:"paymentMethod"`
	Status        *domain.EntryStatus `json:"status"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string             `json:"entryID"`
	ClubID        string             `json:"clubID"`
	EventID       *string            `json:"eventID,omitempty"`
	CampaignID    *string            `json:"campaignID,omitempty"`
	Kind          domain.EntryKind   `json:"kind"`
	Amount        decimal.Decimal    `json:"amount"`
	Category      string             `json:"category,omitempty"`
	Source        string             `json:"source,omitempty"`
	Description   string             `json:"description"`
	Vendor        *string            `json:"vendor,omitempty"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        domain.EntryStatus `json:"status"`
	Date          time.Time          `json:"date"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ListEntriesParams defines query parameters for listing ledger entries.
type ListEntriesParams struct {
	Kind      *domain.EntryKind `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	Limit     int               `form:"limit,default=20"`
	NextToken *string           `form:"nextToken"`
}

// ListEntriesResponse wraps a page of ledger entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:       e.EntryID,
		ClubID:        e.ClubID,
		Kind:          e.Kind,
		Amount:        e.Amount,
		Category:      e.Category,
		Source:        e.Source,
		Description:   e.Description,
		Vendor:        e.Vendor,
		PaymentMethod: e.PaymentMethod,
		Status:        e.Status,
		Date:          e.EntryDate,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
	switch e.Scope.Level {
	case domain.ScopeEvent:
		id := e.Scope.EventID
		resp.EventID = &id
	case domain.ScopeCampaign:
		id := e.Scope.CampaignID
		resp.CampaignID = &id
	}
	return resp
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

// EventRollupResponse defines the data returned after an event recompute.
type EventRollupResponse struct {
	EventID       string          `json:"eventID"`
	ActualAmount  decimal.Decimal `json:"actualAmount"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// CampaignRollupResponse defines the data returned after a campaign recompute.
type CampaignRollupResponse struct {
	CampaignID         string          `json:"campaignID"`
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	ProgressPercentage int             `json:"progressPercentage"`
}
