package services

import (
	"context"
	"errors"
	"fmt"
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

// campaignService implements the CampaignSvcFacade interface. Publication is
// gated by the club's trust status.
type campaignService struct {
	BaseService
	campaignRepo portsrepo.CampaignRepositoryFacade
	trustSvc     portssvc.TrustSvcFacade
}

// NewCampaignService creates a new campaign service with the provided dependencies
func NewCampaignService(
	campaignRepo portsrepo.CampaignRepositoryFacade,
	trustSvc portssvc.TrustSvcFacade,
	authorizer portssvc.ClubAuthorizerSvc,
) portssvc.CampaignSvcFacade {
	return &campaignService{
		BaseService:  BaseService{ClubAuthorizer: authorizer},
		campaignRepo: campaignRepo,
		trustSvc:     trustSvc,
	}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

// CreateCampaign creates a new draft campaign. Drafts are always allowed; the
// trust gate applies at publication.
func (s *campaignService) CreateCampaign(ctx context.Context, clubID string, req dto.CreateCampaignRequest, creatorUserID string) (*domain.Campaign, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.TargetAmount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("target amount must not be negative")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationFailedError("end date must not precede start date")
	}

	now := time.Now()
	campaign := domain.Campaign{
		CampaignID:         uuid.NewString(),
		ClubID:             clubID,
		Name:               req.Name,
		Description:        req.Description,
		TargetAmount:       req.TargetAmount,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             domain.CampaignDraft,
		ImpactStatus:       domain.ImpactPending,
		TotalRaised:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		TotalProfit:        decimal.Zero,
		ProgressPercentage: 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		s.LogError(ctx, err, "Failed to save campaign",
			slog.String("campaign_id", campaign.CampaignID))
		return nil, err
	}

	s.LogInfo(ctx, "Campaign created",
		slog.String("campaign_id", campaign.CampaignID),
		slog.String("club_id", clubID))
	return &campaign, nil
}

// GetCampaignByID retrieves a campaign, verifying club ownership
func (s *campaignService) GetCampaignByID(ctx context.Context, clubID, campaignID string, userID string) (*domain.Campaign, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find campaign",
				slog.String("campaign_id", campaignID))
		}
		return nil, err
	}
	if campaign.ClubID != clubID {
		return nil, apperrors.NewNotFoundError("campaign not found")
	}
	return campaign, nil
}

// ListCampaigns retrieves all campaigns of a club
func (s *campaignService) ListCampaigns(ctx context.Context, clubID string, userID string) ([]domain.Campaign, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.ListCampaignsByClub(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list campaigns",
			slog.String("club_id", clubID))
		return nil, err
	}
	if campaigns == nil {
		return []domain.Campaign{}, nil
	}
	return campaigns, nil
}

// PublishCampaign activates a draft campaign. Publication is refused while
// the club has too many outstanding impact reports or any report overdue
// beyond the grace period.
func (s *campaignService) PublishCampaign(ctx context.Context, clubID, campaignID string, userID string) (*domain.Campaign, error) {
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
	if campaign.Status != domain.CampaignDraft {
		return nil, apperrors.NewConflictError("only draft campaigns can be published")
	}

	trust, err := s.trustSvc.CheckTrustStatus(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	if !trust.CanCreateCampaign {
		s.LogInfo(ctx, "Campaign publication blocked by trust gate",
			slog.String("club_id", clubID),
			slog.Int("outstanding", trust.OutstandingCount),
			slog.Int("overdue_days", trust.OverdueDays))
		return nil, apperrors.NewForbiddenError(fmt.Sprintf(
			"club has %d outstanding impact reports (max %d) with the oldest %d days overdue (max %d)",
			trust.OutstandingCount, domain.TrustMaxOutstanding,
			trust.OverdueDays, domain.TrustMaxOverdueDays))
	}

	now := time.Now()
	if err := s.campaignRepo.UpdateCampaignStatus(ctx, campaignID, domain.CampaignActive, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to publish campaign",
			slog.String("campaign_id", campaignID))
		return nil, err
	}

	campaign.Status = domain.CampaignActive
	campaign.LastUpdatedAt = now
	campaign.LastUpdatedBy = userID

	s.LogInfo(ctx, "Campaign published",
		slog.String("campaign_id", campaignID),
		slog.String("club_id", clubID))
	return campaign, nil
}
