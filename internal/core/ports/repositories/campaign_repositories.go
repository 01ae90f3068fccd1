package repositories

import (
	"context"
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// CampaignReader defines read operations for campaign data.
type CampaignReader interface {
	FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaignsByClub(ctx context.Context, clubID string) ([]domain.Campaign, error)
}

// CampaignWriter defines write operations for campaign data.
type CampaignWriter interface {
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus, updatedBy string, updatedAt time.Time) error
	UpdateCampaignImpactStatus(ctx context.Context, campaignID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error
	// UpdateCampaignRollup overwrites the denormalized rollup columns in place.
	UpdateCampaignRollup(ctx context.Context, campaignID string, rollup domain.CampaignRollup, updatedBy string, updatedAt time.Time) error
}

// CampaignRepositoryFacade combines all campaign repository interfaces.
type CampaignRepositoryFacade interface {
	CampaignReader
	CampaignWriter
}
