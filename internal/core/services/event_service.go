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
	"github.com/shopspring/decimal"
)

// eventService implements the EventSvcFacade interface
type eventService struct {
	BaseService
	eventRepo    portsrepo.EventRepositoryFacade
	campaignRepo portsrepo.CampaignReader
}

// NewEventService creates a new event service with the provided dependencies
func NewEventService(
	eventRepo portsrepo.EventRepositoryFacade,
	campaignRepo portsrepo.CampaignReader,
	authorizer portssvc.ClubAuthorizerSvc,
) portssvc.EventSvcFacade {
	return &eventService{
		BaseService:  BaseService{ClubAuthorizer: authorizer},
		eventRepo:    eventRepo,
		campaignRepo: campaignRepo,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent creates a new event, optionally attached to a campaign of the
// same club. Rollup columns start at zero.
func (s *eventService) CreateEvent(ctx context.Context, clubID string, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.CampaignID != nil && *req.CampaignID != "" {
		campaign, err := s.campaignRepo.FindCampaignByID(ctx, *req.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign.ClubID != clubID {
			// Existence of other clubs' campaigns is not revealed.
			return nil, apperrors.NewNotFoundError("campaign not found")
		}
	}

	now := time.Now()
	event := domain.Event{
		EventID:       uuid.NewString(),
		ClubID:        clubID,
		CampaignID:    req.CampaignID,
		Name:          req.Name,
		Description:   req.Description,
		EventDate:     req.EventDate,
		Status:        domain.EventUpcoming,
		ImpactStatus:  domain.ImpactPending,
		ActualAmount:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetProfit:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event",
			slog.String("event_id", event.EventID))
		return nil, err
	}

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.EventID),
		slog.String("club_id", clubID))
	return &event, nil
}

// GetEventByID retrieves an event, verifying club ownership
func (s *eventService) GetEventByID(ctx context.Context, clubID, eventID string, userID string) (*domain.Event, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find event",
				slog.String("event_id", eventID))
		}
		return nil, err
	}
	if event.ClubID != clubID {
		return nil, apperrors.NewNotFoundError("event not found")
	}
	return event, nil
}

// ListEvents retrieves all events of a club
func (s *eventService) ListEvents(ctx context.Context, clubID string, userID string) ([]domain.Event, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListEventsByClub(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events",
			slog.String("club_id", clubID))
		return nil, err
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// EndEvent marks an event as ended. From this point the club owes an impact
// report for it and the trust gate starts counting.
func (s *eventService) EndEvent(ctx context.Context, clubID, eventID string, userID string) (*domain.Event, error) {
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

	switch event.Status {
	case domain.EventEnded:
		return nil, apperrors.NewConflictError("event has already ended")
	case domain.EventCancelled:
		return nil, apperrors.NewConflictError("cancelled events cannot be ended")
	}

	now := time.Now()
	if err := s.eventRepo.UpdateEventStatus(ctx, eventID, domain.EventEnded, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to end event",
			slog.String("event_id", eventID))
		return nil, err
	}

	event.Status = domain.EventEnded
	event.LastUpdatedAt = now
	event.LastUpdatedBy = userID

	s.LogInfo(ctx, "Event ended, impact report now owed",
		slog.String("event_id", eventID),
		slog.String("club_id", clubID))
	return event, nil
}
