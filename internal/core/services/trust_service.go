package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
)

// trustService implements the TrustSvcFacade interface. Trust status is a
// pure projection over ended events still owing an impact report; nothing is
// persisted.
type trustService struct {
	BaseService
	eventRepo portsrepo.EventReader
	now       func() time.Time
}

// NewTrustService creates a new trust service with the provided dependencies
func NewTrustService(eventRepo portsrepo.EventReader, authorizer portssvc.ClubAuthorizerSvc) portssvc.TrustSvcFacade {
	return &trustService{
		BaseService: BaseService{ClubAuthorizer: authorizer},
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

var _ portssvc.TrustSvcFacade = (*trustService)(nil)

// CheckTrustStatus derives the club's campaign-publication eligibility from
// its outstanding impact reports within the trailing window.
func (s *trustService) CheckTrustStatus(ctx context.Context, clubID string, userID string) (*domain.TrustStatus, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	now := s.now()
	outstanding, err := s.eventRepo.ListOutstandingImpactEvents(ctx, clubID, domain.TrustWindowStart(now))
	if err != nil {
		s.LogError(ctx, err, "Failed to list outstanding impact events",
			slog.String("club_id", clubID))
		return nil, err
	}

	maxOverdue := 0
	for i := range outstanding {
		days := int(now.Sub(outstanding[i].EventDate).Hours() / 24)
		if days > maxOverdue {
			maxOverdue = days
		}
	}

	status := &domain.TrustStatus{
		OutstandingCount: len(outstanding),
		OverdueDays:      maxOverdue,
		CanCreateCampaign: len(outstanding) <= domain.TrustMaxOutstanding &&
			maxOverdue <= domain.TrustMaxOverdueDays,
	}

	s.LogDebug(ctx, "Trust status computed",
		slog.String("club_id", clubID),
		slog.Int("outstanding", status.OutstandingCount),
		slog.Int("overdue_days", status.OverdueDays),
		slog.Bool("can_create_campaign", status.CanCreateCampaign))
	return status, nil
}

// GetOutstandingImpactReports lists the ended events still owing a report
// within the trailing window.
func (s *trustService) GetOutstandingImpactReports(ctx context.Context, clubID string, userID string) ([]domain.Event, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListOutstandingImpactEvents(ctx, clubID, domain.TrustWindowStart(s.now()))
	if err != nil {
		s.LogError(ctx, err, "Failed to list outstanding impact events",
			slog.String("club_id", clubID))
		return nil, err
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}
