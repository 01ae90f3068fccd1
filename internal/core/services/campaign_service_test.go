package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/core/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TrustService ---
type MockTrustService struct {
	mock.Mock
}

var _ portssvc.TrustSvcFacade = (*MockTrustService)(nil)

func (m *MockTrustService) CheckTrustStatus(ctx context.Context, clubID string, userID string) (*domain.TrustStatus, error) {
	args := m.Called(ctx, clubID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrustStatus), args.Error(1)
}

func (m *MockTrustService) GetOutstandingImpactReports(ctx context.Context, clubID string, userID string) ([]domain.Event, error) {
	args := m.Called(ctx, clubID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// --- Test Suite ---
type CampaignServiceTestSuite struct {
	suite.Suite
	mockCampaigns  *MockCampaignRepository
	mockTrust      *MockTrustService
	mockAuthorizer *MockClubAuthorizer
	service        portssvc.CampaignSvcFacade
	ctx            context.Context
	clubID         string
	userID         string
}

func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.mockCampaigns = new(MockCampaignRepository)
	suite.mockTrust = new(MockTrustService)
	suite.mockAuthorizer = new(MockClubAuthorizer)
	suite.service = services.NewCampaignService(suite.mockCampaigns, suite.mockTrust, suite.mockAuthorizer)
	suite.ctx = context.Background()
	suite.clubID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.clubID, mock.Anything).Return(nil).Maybe()
}

func (suite *CampaignServiceTestSuite) draftCampaign() *domain.Campaign {
	return &domain.Campaign{
		CampaignID:   uuid.NewString(),
		ClubID:       suite.clubID,
		Name:         "New Minibus",
		TargetAmount: decimal.NewFromInt(5000),
		StartDate:    time.Now(),
		Status:       domain.CampaignDraft,
	}
}

func (suite *CampaignServiceTestSuite) TestCreateCampaignStartsAsDraft() {
	req := dto.CreateCampaignRequest{
		Name:         "New Minibus",
		TargetAmount: decimal.NewFromInt(5000),
		StartDate:    time.Now(),
	}
	suite.mockCampaigns.On("SaveCampaign", suite.ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignDraft && c.ImpactStatus == domain.ImpactPending &&
			c.TotalRaised.IsZero() && c.ProgressPercentage == 0
	})).Return(nil)

	campaign, err := suite.service.CreateCampaign(suite.ctx, suite.clubID, req, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.CampaignDraft, campaign.Status)
	suite.mockCampaigns.AssertExpectations(suite.T())
}

func (suite *CampaignServiceTestSuite) TestCreateCampaignRejectsNegativeTarget() {
	req := dto.CreateCampaignRequest{
		Name:         "Broken",
		TargetAmount: decimal.NewFromInt(-1),
		StartDate:    time.Now(),
	}

	_, err := suite.service.CreateCampaign(suite.ctx, suite.clubID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CampaignServiceTestSuite) TestCreateCampaignRejectsEndBeforeStart() {
	start := time.Now()
	end := start.AddDate(0, 0, -1)
	req := dto.CreateCampaignRequest{
		Name:         "Backwards",
		TargetAmount: decimal.NewFromInt(100),
		StartDate:    start,
		EndDate:      &end,
	}

	_, err := suite.service.CreateCampaign(suite.ctx, suite.clubID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CampaignServiceTestSuite) TestPublishActivatesDraft() {
	campaign := suite.draftCampaign()
	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaign.CampaignID).Return(campaign, nil)
	suite.mockTrust.On("CheckTrustStatus", suite.ctx, suite.clubID, suite.userID).
		Return(&domain.TrustStatus{CanCreateCampaign: true}, nil)
	suite.mockCampaigns.On("UpdateCampaignStatus", suite.ctx, campaign.CampaignID, domain.CampaignActive, suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	published, err := suite.service.PublishCampaign(suite.ctx, suite.clubID, campaign.CampaignID, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.CampaignActive, published.Status)
	suite.mockCampaigns.AssertExpectations(suite.T())
}

func (suite *CampaignServiceTestSuite) TestPublishBlockedByTrustGate() {
	campaign := suite.draftCampaign()
	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaign.CampaignID).Return(campaign, nil)
	suite.mockTrust.On("CheckTrustStatus", suite.ctx, suite.clubID, suite.userID).
		Return(&domain.TrustStatus{OutstandingCount: 3, OverdueDays: 12, CanCreateCampaign: false}, nil)

	_, err := suite.service.PublishCampaign(suite.ctx, suite.clubID, campaign.CampaignID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCampaigns.AssertNotCalled(suite.T(), "UpdateCampaignStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CampaignServiceTestSuite) TestPublishNonDraftIsConflict() {
	campaign := suite.draftCampaign()
	campaign.Status = domain.CampaignActive
	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaign.CampaignID).Return(campaign, nil)

	_, err := suite.service.PublishCampaign(suite.ctx, suite.clubID, campaign.CampaignID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTrust.AssertNotCalled(suite.T(), "CheckTrustStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CampaignServiceTestSuite) TestPublishOtherClubsCampaignIsNotFound() {
	campaign := suite.draftCampaign()
	campaign.ClubID = uuid.NewString()
	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaign.CampaignID).Return(campaign, nil)

	_, err := suite.service.PublishCampaign(suite.ctx, suite.clubID, campaign.CampaignID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
