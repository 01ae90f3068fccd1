package services

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/dto"
)

// FinanceSvcFacade is the ledger entry store: income/expense CRUD with scope
// resolution, synchronous rollup triggering, and the club summary read.
type FinanceSvcFacade interface {
	CreateIncome(ctx context.Context, clubID string, req dto.CreateIncomeRequest, creatorUserID string) (*domain.LedgerEntry, error)
	CreateExpense(ctx context.Context, clubID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.LedgerEntry, error)
	UpdateIncome(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error)
	UpdateExpense(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error)
	DeleteIncome(ctx context.Context, clubID, entryID string, userID string) error
	DeleteExpense(ctx context.Context, clubID, entryID string, userID string) error
	ListEntries(ctx context.Context, clubID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// RecalculateEventFinancials is the manual repair trigger for an event.
	RecalculateEventFinancials(ctx context.Context, clubID, eventID string, userID string) (*domain.EventRollup, error)
	// RecalculateCampaignFinancials is the manual repair trigger for a campaign.
	RecalculateCampaignFinancials(ctx context.Context, clubID, campaignID string, userID string) (*domain.CampaignRollup, error)
	// GetClubFinancialSummary computes the club-wide summary on read.
	GetClubFinancialSummary(ctx context.Context, clubID string, userID string) (*domain.ClubSummary, error)
}

// RollupSvcFacade recomputes denormalized financial rollups. Every recompute
// is a full absolute resummation over the live entry set.
type RollupSvcFacade interface {
	RecomputeEvent(ctx context.Context, eventID string, actingUserID string) (*domain.EventRollup, error)
	RecomputeCampaign(ctx context.Context, campaignID string, actingUserID string) (*domain.CampaignRollup, error)
	// RecomputeForScope applies the trigger rule after an entry mutation:
	// event scope recomputes the event then its parent campaign (if any);
	// campaign scope recomputes only the campaign; club scope is a no-op
	// because the club summary is derived on read.
	RecomputeForScope(ctx context.Context, scope domain.Scope, actingUserID string) error
}
