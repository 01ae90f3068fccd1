package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rollupService implements the RollupSvcFacade interface. Every recompute is
// a full resummation of the live entry set; nothing is ever applied as an
// incremental delta, so repeated recomputes of an unchanged ledger are
// idempotent and a recompute after any interleaving converges to the same
// values.
type rollupService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerSummer
	eventRepo    portsrepo.EventRepositoryFacade
	campaignRepo portsrepo.CampaignRepositoryFacade
}

// NewRollupService creates a new rollup service with the provided dependencies
func NewRollupService(
	ledgerRepo portsrepo.LedgerSummer,
	eventRepo portsrepo.EventRepositoryFacade,
	campaignRepo portsrepo.CampaignRepositoryFacade,
) portssvc.RollupSvcFacade {
	return &rollupService{
		ledgerRepo:   ledgerRepo,
		eventRepo:    eventRepo,
		campaignRepo: campaignRepo,
	}
}

var _ portssvc.RollupSvcFacade = (*rollupService)(nil)

// RecomputeEvent resums all event-scoped entries and overwrites the event's
// rollup columns.
func (s *rollupService) RecomputeEvent(ctx context.Context, eventID string, actingUserID string) (*domain.EventRollup, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.SumEntriesForEvent(ctx, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries for event",
			slog.String("event_id", eventID))
		return nil, err
	}

	rollup := domain.EventRollup{
		ActualAmount:  totals.Income,
		TotalExpenses: totals.Expenses,
		NetProfit:     totals.Net(),
	}

	if err := s.eventRepo.UpdateEventRollup(ctx, event.EventID, rollup, actingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to write event rollup",
			slog.String("event_id", eventID))
		return nil, err
	}

	s.LogDebug(ctx, "Event rollup recomputed",
		slog.String("event_id", eventID),
		slog.String("actual_amount", rollup.ActualAmount.String()),
		slog.String("net_profit", rollup.NetProfit.String()))
	return &rollup, nil
}

// RecomputeCampaign resums campaign-scoped entries, adds the current child
// event rollup columns, and overwrites the campaign's rollup columns.
func (s *rollupService) RecomputeCampaign(ctx context.Context, campaignID string, actingUserID string) (*domain.CampaignRollup, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	direct, err := s.ledgerRepo.SumEntriesForCampaign(ctx, campaignID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries for campaign",
			slog.String("campaign_id", campaignID))
		return nil, err
	}

	fromEvents, err := s.eventRepo.SumEventRollups(ctx, campaignID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum child event rollups",
			slog.String("campaign_id", campaignID))
		return nil, err
	}

	raised := direct.Income.Add(fromEvents.Income)
	expenses := direct.Expenses.Add(fromEvents.Expenses)
	rollup := domain.CampaignRollup{
		TotalRaised:        raised,
		TotalExpenses:      expenses,
		TotalProfit:        raised.Sub(expenses),
		ProgressPercentage: progressPercentage(raised, campaign.TargetAmount),
	}

	if err := s.campaignRepo.UpdateCampaignRollup(ctx, campaign.CampaignID, rollup, actingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to write campaign rollup",
			slog.String("campaign_id", campaignID))
		return nil, err
	}

	s.LogDebug(ctx, "Campaign rollup recomputed",
		slog.String("campaign_id", campaignID),
		slog.String("total_raised", rollup.TotalRaised.String()),
		slog.Int("progress_percentage", rollup.ProgressPercentage))
	return &rollup, nil
}

// RecomputeForScope applies the trigger rule after an entry mutation: event
// scope recomputes the event then its parent campaign (if any); campaign
// scope recomputes only the campaign; club scope is a no-op because the club
// summary is derived on read. The two-step cascade is not transactional; a
// failure between the steps leaves the campaign stale until the next entry
// mutation or a manual recalculate repairs it.
func (s *rollupService) RecomputeForScope(ctx context.Context, scope domain.Scope, actingUserID string) error {
	switch scope.Level {
	case domain.ScopeEvent:
		if _, err := s.RecomputeEvent(ctx, scope.EventID, actingUserID); err != nil {
			return err
		}
		event, err := s.eventRepo.FindEventByID(ctx, scope.EventID)
		if err != nil {
			return err
		}
		if event.CampaignID != nil && *event.CampaignID != "" {
			if _, err := s.RecomputeCampaign(ctx, *event.CampaignID, actingUserID); err != nil {
				return err
			}
		}
		return nil
	case domain.ScopeCampaign:
		_, err := s.RecomputeCampaign(ctx, scope.CampaignID, actingUserID)
		return err
	default:
		return nil
	}
}

// progressPercentage is round(raised/target*100), clamped to zero from below
// and deliberately not clamped from above so over-target campaigns read past
// 100. A zero target reads as zero progress.
func progressPercentage(raised, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}
	pct := raised.Div(target).Mul(decimal.NewFromInt(100)).Round(0)
	if pct.IsNegative() {
		return 0
	}
	return int(pct.IntPart())
}
