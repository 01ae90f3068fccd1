package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/google/uuid"
)

// financeService implements the FinanceSvcFacade interface. It owns ledger
// entry CRUD, scope resolution and the synchronous rollup trigger that fires
// after every entry mutation.
type financeService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	eventRepo    portsrepo.EventReader
	campaignRepo portsrepo.CampaignReader
	summaryRepo  portsrepo.SummaryRepositoryFacade
	rollupSvc    portssvc.RollupSvcFacade
}

// NewFinanceService creates a new finance service with the provided dependencies
func NewFinanceService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	eventRepo portsrepo.EventReader,
	campaignRepo portsrepo.CampaignReader,
	summaryRepo portsrepo.SummaryRepositoryFacade,
	rollupSvc portssvc.RollupSvcFacade,
	authorizer portssvc.ClubAuthorizerSvc,
) portssvc.FinanceSvcFacade {
	return &financeService{
		BaseService:  BaseService{ClubAuthorizer: authorizer},
		ledgerRepo:   ledgerRepo,
		eventRepo:    eventRepo,
		campaignRepo: campaignRepo,
		summaryRepo:  summaryRepo,
		rollupSvc:    rollupSvc,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// resolveScope builds and verifies the scope for a new entry: dual binding is
// a conflict, and a referenced event or campaign must exist and belong to the
// club. Records of other clubs read as not found rather than forbidden.
func (s *financeService) resolveScope(ctx context.Context, clubID string, ref dto.ScopeRef) (domain.Scope, error) {
	scope, err := domain.NewScope(ref.EventID, ref.CampaignID)
	if err != nil {
		return domain.Scope{}, err
	}

	switch scope.Level {
	case domain.ScopeEvent:
		event, err := s.eventRepo.FindEventByID(ctx, scope.EventID)
		if err != nil {
			return domain.Scope{}, err
		}
		if event.ClubID != clubID {
			return domain.Scope{}, apperrors.NewNotFoundError("event not found")
		}
	case domain.ScopeCampaign:
		campaign, err := s.campaignRepo.FindCampaignByID(ctx, scope.CampaignID)
		if err != nil {
			return domain.Scope{}, err
		}
		if campaign.ClubID != clubID {
			return domain.Scope{}, apperrors.NewNotFoundError("campaign not found")
		}
	}
	return scope, nil
}

// CreateIncome records an income entry and synchronously recomputes the
// rollups its scope feeds.
func (s *financeService) CreateIncome(ctx context.Context, clubID string, req dto.CreateIncomeRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	scope, err := s.resolveScope(ctx, clubID, req.ScopeRef)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		ClubID:        clubID,
		Scope:         scope,
		Kind:          domain.Income,
		Amount:        req.Amount,
		Source:        req.Source,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.EntryPaid,
		EntryDate:     req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save income entry",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	if err := s.rollupSvc.RecomputeForScope(ctx, scope, creatorUserID); err != nil {
		// The entry is committed; the rollup is stale until the next
		// mutation or a manual recalculate.
		s.LogError(ctx, err, "Rollup recompute failed after income creation",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("club_id", clubID),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// CreateExpense records an expense entry and synchronously recomputes the
// rollups its scope feeds.
func (s *financeService) CreateExpense(ctx context.Context, clubID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	scope, err := s.resolveScope(ctx, clubID, req.ScopeRef)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.EntryPaid
	}

	now := time.Now()
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		ClubID:        clubID,
		Scope:         scope,
		Kind:          domain.Expense,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Vendor:        req.Vendor,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		EntryDate:     req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save expense entry",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	if err := s.rollupSvc.RecomputeForScope(ctx, scope, creatorUserID); err != nil {
		s.LogError(ctx, err, "Rollup recompute failed after expense creation",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("club_id", clubID),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// UpdateIncome updates an income entry in place. The entry's scope is
// immutable; moving money between scopes is delete and recreate.
func (s *financeService) UpdateIncome(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	return s.updateEntry(ctx, clubID, entryID, domain.Income, req, userID)
}

// UpdateExpense updates an expense entry in place.
func (s *financeService) UpdateExpense(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	return s.updateEntry(ctx, clubID, entryID, domain.Expense, req, userID)
}

func (s *financeService) updateEntry(ctx context.Context, clubID, entryID string, kind domain.EntryKind, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	entry, err := s.findClubEntry(ctx, clubID, entryID, kind)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
		}
		entry.Amount = *req.Amount
	}
	if req.Source != nil && kind == domain.Income {
		entry.Source = *req.Source
	}
	if req.Category != nil && kind == domain.Expense {
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Date != nil {
		entry.EntryDate = *req.Date
	}
	if req.Vendor != nil {
		entry.Vendor = req.Vendor
	}
	if req.PaymentMethod != nil {
		entry.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update ledger entry",
			slog.String("entry_id", entryID))
		return nil, err
	}

	if err := s.rollupSvc.RecomputeForScope(ctx, entry.Scope, userID); err != nil {
		s.LogError(ctx, err, "Rollup recompute failed after entry update",
			slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// DeleteIncome removes an income entry and recomputes its scope.
func (s *financeService) DeleteIncome(ctx context.Context, clubID, entryID string, userID string) error {
	return s.deleteEntry(ctx, clubID, entryID, domain.Income, userID)
}

// DeleteExpense removes an expense entry and recomputes its scope.
func (s *financeService) DeleteExpense(ctx context.Context, clubID, entryID string, userID string) error {
	return s.deleteEntry(ctx, clubID, entryID, domain.Expense, userID)
}

func (s *financeService) deleteEntry(ctx context.Context, clubID, entryID string, kind domain.EntryKind, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return err
	}

	entry, err := s.findClubEntry(ctx, clubID, entryID, kind)
	if err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger entry",
			slog.String("entry_id", entryID))
		return err
	}

	if err := s.rollupSvc.RecomputeForScope(ctx, entry.Scope, userID); err != nil {
		s.LogError(ctx, err, "Rollup recompute failed after entry deletion",
			slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Ledger entry deleted",
		slog.String("entry_id", entryID),
		slog.String("club_id", clubID))
	return nil
}

// findClubEntry loads an entry and verifies club ownership and kind. A kind
// mismatch reads as not found so income endpoints cannot touch expenses.
func (s *financeService) findClubEntry(ctx context.Context, clubID, entryID string, kind domain.EntryKind) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger entry",
				slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.ClubID != clubID || entry.Kind != kind {
		return nil, apperrors.NewNotFoundError("entry not found")
	}
	return entry, nil
}

// ListEntries returns a page of the club's entries, newest first.
func (s *financeService) ListEntries(ctx context.Context, clubID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByClub(ctx, clubID, params.Kind, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries",
			slog.String("club_id", clubID))
		return nil, err
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// RecalculateEventFinancials is the manual repair trigger for an event rollup.
func (s *financeService) RecalculateEventFinancials(ctx context.Context, clubID, eventID string, userID string) (*domain.EventRollup, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.ClubID != clubID {
		return nil, apperrors.NewNotFoundError("event not found")
	}

	return s.rollupSvc.RecomputeEvent(ctx, eventID, userID)
}

// RecalculateCampaignFinancials is the manual repair trigger for a campaign rollup.
func (s *financeService) RecalculateCampaignFinancials(ctx context.Context, clubID, campaignID string, userID string) (*domain.CampaignRollup, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.ClubID != clubID {
		return nil, apperrors.NewNotFoundError("campaign not found")
	}

	return s.rollupSvc.RecomputeCampaign(ctx, campaignID, userID)
}

// GetClubFinancialSummary computes the club-wide summary on read from the
// live entry set and the current event and campaign rollups. Nothing here is
// persisted, so the summary can never drift from the ledger.
func (s *financeService) GetClubFinancialSummary(ctx context.Context, clubID string, userID string) (*domain.ClubSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.SumEntriesForClub(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum club entries",
			slog.String("club_id", clubID))
		return nil, err
	}

	incomeBySource, err := s.summaryRepo.GetIncomeBySource(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load income breakdown",
			slog.String("club_id", clubID))
		return nil, err
	}

	expensesByCategory, err := s.summaryRepo.GetExpensesByCategory(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expense breakdown",
			slog.String("club_id", clubID))
		return nil, err
	}

	campaigns, err := s.campaignRepo.ListCampaignsByClub(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list campaigns for summary",
			slog.String("club_id", clubID))
		return nil, err
	}

	events, err := s.eventRepo.ListEventsByClub(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events for summary",
			slog.String("club_id", clubID))
		return nil, err
	}

	summary := &domain.ClubSummary{
		ClubID:             clubID,
		TotalIncome:        totals.Income,
		TotalExpenses:      totals.Expenses,
		NetProfit:          totals.Net(),
		IncomeBySource:     incomeBySource,
		ExpensesByCategory: expensesByCategory,
	}
	for i := range campaigns {
		c := &campaigns[i]
		summary.CampaignPerformance = append(summary.CampaignPerformance, domain.CampaignPerformance{
			CampaignID:         c.CampaignID,
			Name:               c.Name,
			TargetAmount:       c.TargetAmount,
			TotalRaised:        c.TotalRaised,
			TotalProfit:        c.TotalProfit,
			ProgressPercentage: c.ProgressPercentage,
		})
	}
	for i := range events {
		e := &events[i]
		summary.EventPerformance = append(summary.EventPerformance, domain.EventPerformance{
			EventID:      e.EventID,
			Name:         e.Name,
			ActualAmount: e.ActualAmount,
			NetProfit:    e.NetProfit,
		})
	}
	return summary, nil
}
