package services

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/dto"
)

// EventSvcFacade manages fundraising events.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, clubID string, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error)
	GetEventByID(ctx context.Context, clubID, eventID string, userID string) (*domain.Event, error)
	ListEvents(ctx context.Context, clubID string, userID string) ([]domain.Event, error)
	// EndEvent marks an event as ended, starting its impact reporting clock.
	EndEvent(ctx context.Context, clubID, eventID string, userID string) (*domain.Event, error)
}

// CampaignSvcFacade manages fundraising campaigns. Publication is gated by
// the club's trust status.
type CampaignSvcFacade interface {
	CreateCampaign(ctx context.Context, clubID string, req dto.CreateCampaignRequest, creatorUserID string) (*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, clubID, campaignID string, userID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, clubID string, userID string) ([]domain.Campaign, error)
	// PublishCampaign activates a draft campaign if the trust gate allows it.
	PublishCampaign(ctx context.Context, clubID, campaignID string, userID string) (*domain.Campaign, error)
}
