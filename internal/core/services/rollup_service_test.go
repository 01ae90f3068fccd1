package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerSummer ---
type MockLedgerSummer struct {
	mock.Mock
}

var _ portsrepo.LedgerSummer = (*MockLedgerSummer)(nil)

func (m *MockLedgerSummer) SumEntriesForEvent(ctx context.Context, eventID string) (domain.ScopeTotals, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(domain.ScopeTotals), args.Error(1)
}

func (m *MockLedgerSummer) SumEntriesForCampaign(ctx context.Context, campaignID string) (domain.ScopeTotals, error) {
	args := m.Called(ctx, campaignID)
	return args.Get(0).(domain.ScopeTotals), args.Error(1)
}

func (m *MockLedgerSummer) SumEntriesForClub(ctx context.Context, clubID string) (domain.ScopeTotals, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).(domain.ScopeTotals), args.Error(1)
}

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepositoryFacade = (*MockEventRepository)(nil)

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByClub(ctx context.Context, clubID string) ([]domain.Event, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByCampaign(ctx context.Context, campaignID string) ([]domain.Event, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SumEventRollups(ctx context.Context, campaignID string) (domain.ScopeTotals, error) {
	args := m.Called(ctx, campaignID)
	return args.Get(0).(domain.ScopeTotals), args.Error(1)
}

func (m *MockEventRepository) ListOutstandingImpactEvents(ctx context.Context, clubID string, windowStart time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, clubID, windowStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, eventID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventImpactStatus(ctx context.Context, eventID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, eventID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventRollup(ctx context.Context, eventID string, rollup domain.EventRollup, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, eventID, rollup, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CampaignRepository ---
type MockCampaignRepository struct {
	mock.Mock
}

var _ portsrepo.CampaignRepositoryFacade = (*MockCampaignRepository)(nil)

func (m *MockCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListCampaignsByClub(ctx context.Context, clubID string) ([]domain.Campaign, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, campaignID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaignImpactStatus(ctx context.Context, campaignID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, campaignID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaignRollup(ctx context.Context, campaignID string, rollup domain.CampaignRollup, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, campaignID, rollup, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type RollupServiceTestSuite struct {
	suite.Suite
	mockLedger    *MockLedgerSummer
	mockEvents    *MockEventRepository
	mockCampaigns *MockCampaignRepository
	service       portssvc.RollupSvcFacade
	ctx           context.Context
	userID        string
}

func (suite *RollupServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerSummer)
	suite.mockEvents = new(MockEventRepository)
	suite.mockCampaigns = new(MockCampaignRepository)
	suite.service = services.NewRollupService(suite.mockLedger, suite.mockEvents, suite.mockCampaigns)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *RollupServiceTestSuite) TestRecomputeEvent() {
	eventID := uuid.NewString()
	event := &domain.Event{EventID: eventID, ClubID: "club-1"}
	totals := domain.ScopeTotals{
		Income:   decimal.NewFromInt(500),
		Expenses: decimal.NewFromInt(180),
	}

	suite.mockEvents.On("FindEventByID", suite.ctx, eventID).Return(event, nil)
	suite.mockLedger.On("SumEntriesForEvent", suite.ctx, eventID).Return(totals, nil)
	suite.mockEvents.On("UpdateEventRollup", suite.ctx, eventID, mock.MatchedBy(func(r domain.EventRollup) bool {
		return r.ActualAmount.Equal(decimal.NewFromInt(500)) &&
			r.TotalExpenses.Equal(decimal.NewFromInt(180)) &&
			r.NetProfit.Equal(decimal.NewFromInt(320))
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	rollup, err := suite.service.RecomputeEvent(suite.ctx, eventID, suite.userID)

	suite.NoError(err)
	suite.True(rollup.NetProfit.Equal(decimal.NewFromInt(320)))
	suite.mockEvents.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *RollupServiceTestSuite) TestRecomputeEventIsIdempotent() {
	eventID := uuid.NewString()
	event := &domain.Event{EventID: eventID}
	totals := domain.ScopeTotals{Income: decimal.NewFromInt(100), Expenses: decimal.NewFromInt(40)}

	suite.mockEvents.On("FindEventByID", suite.ctx, eventID).Return(event, nil)
	suite.mockLedger.On("SumEntriesForEvent", suite.ctx, eventID).Return(totals, nil)
	suite.mockEvents.On("UpdateEventRollup", suite.ctx, eventID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	first, err := suite.service.RecomputeEvent(suite.ctx, eventID, suite.userID)
	suite.NoError(err)
	second, err := suite.service.RecomputeEvent(suite.ctx, eventID, suite.userID)
	suite.NoError(err)

	// The ledger did not change between the calls, so the absolute
	// resummation lands on identical values.
	suite.True(first.ActualAmount.Equal(second.ActualAmount))
	suite.True(first.TotalExpenses.Equal(second.TotalExpenses))
	suite.True(first.NetProfit.Equal(second.NetProfit))
}

func (suite *RollupServiceTestSuite) TestRecomputeCampaignCombinesDirectAndEventTotals() {
	campaignID := uuid.NewString()
	campaign := &domain.Campaign{
		CampaignID:   campaignID,
		TargetAmount: decimal.NewFromInt(1000),
	}
	direct := domain.ScopeTotals{Income: decimal.NewFromInt(300), Expenses: decimal.NewFromInt(50)}
	fromEvents := domain.ScopeTotals{Income: decimal.NewFromInt(450), Expenses: decimal.NewFromInt(100)}

	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaignID).Return(campaign, nil)
	suite.mockLedger.On("SumEntriesForCampaign", suite.ctx, campaignID).Return(direct, nil)
	suite.mockEvents.On("SumEventRollups", suite.ctx, campaignID).Return(fromEvents, nil)
	suite.mockCampaigns.On("UpdateCampaignRollup", suite.ctx, campaignID, mock.MatchedBy(func(r domain.CampaignRollup) bool {
		return r.TotalRaised.Equal(decimal.NewFromInt(750)) &&
			r.TotalExpenses.Equal(decimal.NewFromInt(150)) &&
			r.TotalProfit.Equal(decimal.NewFromInt(600)) &&
			r.ProgressPercentage == 75
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	rollup, err := suite.service.RecomputeCampaign(suite.ctx, campaignID, suite.userID)

	suite.NoError(err)
	suite.Equal(75, rollup.ProgressPercentage)
	suite.mockCampaigns.AssertExpectations(suite.T())
}

func (suite *RollupServiceTestSuite) TestRecomputeCampaignZeroTarget() {
	campaignID := uuid.NewString()
	campaign := &domain.Campaign{CampaignID: campaignID, TargetAmount: decimal.Zero}

	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaignID).Return(campaign, nil)
	suite.mockLedger.On("SumEntriesForCampaign", suite.ctx, campaignID).
		Return(domain.ScopeTotals{Income: decimal.NewFromInt(200), Expenses: decimal.Zero}, nil)
	suite.mockEvents.On("SumEventRollups", suite.ctx, campaignID).Return(domain.ScopeTotals{
		Income: decimal.Zero, Expenses: decimal.Zero,
	}, nil)
	suite.mockCampaigns.On("UpdateCampaignRollup", suite.ctx, campaignID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	rollup, err := suite.service.RecomputeCampaign(suite.ctx, campaignID, suite.userID)

	suite.NoError(err)
	suite.Equal(0, rollup.ProgressPercentage)
}

func (suite *RollupServiceTestSuite) TestRecomputeCampaignOverTargetExceedsHundred() {
	campaignID := uuid.NewString()
	campaign := &domain.Campaign{CampaignID: campaignID, TargetAmount: decimal.NewFromInt(100)}

	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaignID).Return(campaign, nil)
	suite.mockLedger.On("SumEntriesForCampaign", suite.ctx, campaignID).
		Return(domain.ScopeTotals{Income: decimal.NewFromInt(250), Expenses: decimal.Zero}, nil)
	suite.mockEvents.On("SumEventRollups", suite.ctx, campaignID).
		Return(domain.ScopeTotals{Income: decimal.Zero, Expenses: decimal.Zero}, nil)
	suite.mockCampaigns.On("UpdateCampaignRollup", suite.ctx, campaignID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	rollup, err := suite.service.RecomputeCampaign(suite.ctx, campaignID, suite.userID)

	suite.NoError(err)
	suite.Equal(250, rollup.ProgressPercentage)
}

func (suite *RollupServiceTestSuite) TestRecomputeForScopeEventCascadesToParentCampaign() {
	eventID := uuid.NewString()
	campaignID := uuid.NewString()
	event := &domain.Event{EventID: eventID, CampaignID: &campaignID}
	campaign := &domain.Campaign{CampaignID: campaignID, TargetAmount: decimal.NewFromInt(100)}

	suite.mockEvents.On("FindEventByID", suite.ctx, eventID).Return(event, nil)
	suite.mockLedger.On("SumEntriesForEvent", suite.ctx, eventID).
		Return(domain.ScopeTotals{Income: decimal.NewFromInt(10), Expenses: decimal.Zero}, nil)
	suite.mockEvents.On("UpdateEventRollup", suite.ctx, eventID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	suite.mockCampaigns.On("FindCampaignByID", suite.ctx, campaignID).Return(campaign, nil)
	suite.mockLedger.On("SumEntriesForCampaign", suite.ctx, campaignID).
		Return(domain.ScopeTotals{Income: decimal.Zero, Expenses: decimal.Zero}, nil)
	suite.mockEvents.On("SumEventRollups", suite.ctx, campaignID).
		Return(domain.ScopeTotals{Income: decimal.NewFromInt(10), Expenses: decimal.Zero}, nil)
	suite.mockCampaigns.On("UpdateCampaignRollup", suite.ctx, campaignID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	err := suite.service.RecomputeForScope(suite.ctx, domain.EventScope(eventID), suite.userID)

	suite.NoError(err)
	suite.mockCampaigns.AssertCalled(suite.T(), "UpdateCampaignRollup", suite.ctx, campaignID, mock.Anything, suite.userID, mock.Anything)
}

func (suite *RollupServiceTestSuite) TestRecomputeForScopeUnlinkedEventSkipsCampaign() {
	eventID := uuid.NewString()
	event := &domain.Event{EventID: eventID}

	suite.mockEvents.On("FindEventByID", suite.ctx, eventID).Return(event, nil)
	suite.mockLedger.On("SumEntriesForEvent", suite.ctx, eventID).
		Return(domain.ScopeTotals{Income: decimal.Zero, Expenses: decimal.Zero}, nil)
	suite.mockEvents.On("UpdateEventRollup", suite.ctx, eventID, mock.Anything, suite.userID, mock.Anything).Return(nil)

	err := suite.service.RecomputeForScope(suite.ctx, domain.EventScope(eventID), suite.userID)

	suite.NoError(err)
	suite.mockCampaigns.AssertNotCalled(suite.T(), "UpdateCampaignRollup", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RollupServiceTestSuite) TestRecomputeForScopeClubIsNoOp() {
	err := suite.service.RecomputeForScope(suite.ctx, domain.ClubScope(), suite.userID)

	suite.NoError(err)
	suite.mockLedger.AssertNotCalled(suite.T(), "SumEntriesForEvent", mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "SumEntriesForCampaign", mock.Anything, mock.Anything)
}

func TestRollupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RollupServiceTestSuite))
}
