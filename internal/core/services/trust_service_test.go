package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClubAuthorizer ---
type MockClubAuthorizer struct {
	mock.Mock
}

var _ portssvc.ClubAuthorizerSvc = (*MockClubAuthorizer)(nil)

func (m *MockClubAuthorizer) AuthorizeUserAction(ctx context.Context, userID, clubID string, requiredRole domain.UserClubRole) error {
	args := m.Called(ctx, userID, clubID, requiredRole)
	return args.Error(0)
}

// --- Test Suite ---
type TrustServiceTestSuite struct {
	suite.Suite
	mockEvents     *MockEventRepository
	mockAuthorizer *MockClubAuthorizer
	service        portssvc.TrustSvcFacade
	ctx            context.Context
	clubID         string
	userID         string
}

func (suite *TrustServiceTestSuite) SetupTest() {
	suite.mockEvents = new(MockEventRepository)
	suite.mockAuthorizer = new(MockClubAuthorizer)
	suite.service = services.NewTrustService(suite.mockEvents, suite.mockAuthorizer)
	suite.ctx = context.Background()
	suite.clubID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.clubID, domain.RoleReadOnly).Return(nil).Maybe()
}

// endedEvent builds an ended event whose event date lies daysAgo in the past.
func endedEvent(clubID string, daysAgo int) domain.Event {
	return domain.Event{
		EventID:      uuid.NewString(),
		ClubID:       clubID,
		EventDate:    time.Now().AddDate(0, 0, -daysAgo),
		Status:       domain.EventEnded,
		ImpactStatus: domain.ImpactPending,
	}
}

func (suite *TrustServiceTestSuite) TestCleanClubCanPublish() {
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.AnythingOfType("time.Time")).
		Return([]domain.Event{}, nil)

	status, err := suite.service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.Equal(0, status.OutstandingCount)
	suite.Equal(0, status.OverdueDays)
	suite.True(status.CanCreateCampaign)
}

func (suite *TrustServiceTestSuite) TestTwoRecentOutstandingStillAllowed() {
	outstanding := []domain.Event{
		endedEvent(suite.clubID, 5),
		endedEvent(suite.clubID, 12),
	}
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.AnythingOfType("time.Time")).
		Return(outstanding, nil)

	status, err := suite.service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.Equal(2, status.OutstandingCount)
	suite.True(status.CanCreateCampaign)
}

func (suite *TrustServiceTestSuite) TestThreeOutstandingBlocks() {
	outstanding := []domain.Event{
		endedEvent(suite.clubID, 3),
		endedEvent(suite.clubID, 8),
		endedEvent(suite.clubID, 15),
	}
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.AnythingOfType("time.Time")).
		Return(outstanding, nil)

	status, err := suite.service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.Equal(3, status.OutstandingCount)
	suite.False(status.CanCreateCampaign)
}

func (suite *TrustServiceTestSuite) TestSingleOverdueReportBlocks() {
	outstanding := []domain.Event{endedEvent(suite.clubID, 40)}
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.AnythingOfType("time.Time")).
		Return(outstanding, nil)

	status, err := suite.service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.Equal(1, status.OutstandingCount)
	suite.GreaterOrEqual(status.OverdueDays, 39)
	suite.False(status.CanCreateCampaign)
}

func (suite *TrustServiceTestSuite) TestWindowStartPassedToRepository() {
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.MatchedBy(func(start time.Time) bool {
		expected := time.Now().AddDate(0, 0, -domain.TrustWindowDays)
		return start.Sub(expected).Abs() < time.Minute
	})).Return([]domain.Event{}, nil)

	_, err := suite.service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *TrustServiceTestSuite) TestGetOutstandingImpactReports() {
	outstanding := []domain.Event{endedEvent(suite.clubID, 10)}
	suite.mockEvents.On("ListOutstandingImpactEvents", suite.ctx, suite.clubID, mock.AnythingOfType("time.Time")).
		Return(outstanding, nil)

	events, err := suite.service.GetOutstandingImpactReports(suite.ctx, suite.clubID, suite.userID)

	suite.NoError(err)
	suite.Len(events, 1)
}

func (suite *TrustServiceTestSuite) TestNonMemberDenied() {
	authorizer := new(MockClubAuthorizer)
	authorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.clubID, domain.RoleReadOnly).
		Return(apperrors.NewForbiddenError("user is not a member of this club"))
	service := services.NewTrustService(suite.mockEvents, authorizer)

	_, err := service.CheckTrustStatus(suite.ctx, suite.clubID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTrustServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrustServiceTestSuite))
}
