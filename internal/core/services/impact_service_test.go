package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/core/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ImpactRepository ---
type MockImpactRepository struct {
	mock.Mock
}

var _ portsrepo.ImpactRepositoryFacade = (*MockImpactRepository)(nil)

func (m *MockImpactRepository) FindImpactByID(ctx context.Context, impactID string) (*domain.ImpactRecord, error) {
	args := m.Called(ctx, impactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImpactRecord), args.Error(1)
}

func (m *MockImpactRepository) ListImpactsByScope(ctx context.Context, scope domain.Scope, statuses []domain.ImpactRecordStatus) ([]domain.ImpactRecord, error) {
	args := m.Called(ctx, scope, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImpactRecord), args.Error(1)
}

func (m *MockImpactRepository) FindFinalForScope(ctx context.Context, scope domain.Scope) (*domain.ImpactRecord, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImpactRecord), args.Error(1)
}

func (m *MockImpactRepository) SaveImpact(ctx context.Context, record domain.ImpactRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockImpactRepository) UpdateImpact(ctx context.Context, record domain.ImpactRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockImpactRepository) DeleteImpact(ctx context.Context, impactID string) error {
	args := m.Called(ctx, impactID)
	return args.Error(0)
}

// --- Mock ImpactAreaRepository ---
type MockImpactAreaRepository struct {
	mock.Mock
}

var _ portsrepo.ImpactAreaRepositoryFacade = (*MockImpactAreaRepository)(nil)

func (m *MockImpactAreaRepository) SaveImpactArea(ctx context.Context, area domain.ImpactArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockImpactAreaRepository) FindImpactAreaByID(ctx context.Context, areaID string) (*domain.ImpactArea, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImpactArea), args.Error(1)
}

func (m *MockImpactAreaRepository) FindImpactAreasByIDs(ctx context.Context, areaIDs []string) (map[string]domain.ImpactArea, error) {
	args := m.Called(ctx, areaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ImpactArea), args.Error(1)
}

func (m *MockImpactAreaRepository) ListImpactAreas(ctx context.Context) ([]domain.ImpactArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImpactArea), args.Error(1)
}

// --- Test Suite ---
type ImpactServiceTestSuite struct {
	suite.Suite
	mockImpacts    *MockImpactRepository
	mockAreas      *MockImpactAreaRepository
	mockEvents     *MockEventRepository
	mockCampaigns  *MockCampaignRepository
	mockAuthorizer *MockClubAuthorizer
	service        portssvc.ImpactSvcFacade
	ctx            context.Context
	clubID         string
	userID         string
	eventID        string
	areaID         string
}

func (suite *ImpactServiceTestSuite) SetupTest() {
	suite.mockImpacts = new(MockImpactRepository)
	suite.mockAreas = new(MockImpactAreaRepository)
	suite.mockEvents = new(MockEventRepository)
	suite.mockCampaigns = new(MockCampaignRepository)
	suite.mockAuthorizer = new(MockClubAuthorizer)
	suite.service = services.NewImpactService(
		suite.mockImpacts, suite.mockAreas, suite.mockEvents, suite.mockCampaigns, suite.mockAuthorizer)
	suite.ctx = context.Background()
	suite.clubID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.eventID = uuid.NewString()
	suite.areaID = uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, mock.Anything, suite.clubID, mock.Anything).Return(nil).Maybe()
}

func (suite *ImpactServiceTestSuite) draftRecord() *domain.ImpactRecord {
	return &domain.ImpactRecord{
		ImpactID: uuid.NewString(),
		ClubID:   suite.clubID,
		Scope:    domain.EventScope(suite.eventID),
		Title:    "Food bank drive",
		Status:   domain.ImpactDraft,
		Proof: domain.Proof{
			Media: []domain.MediaItem{{URL: "https://example.org/1.jpg"}},
		},
		AuditFields: domain.AuditFields{CreatedBy: suite.userID},
	}
}

func (suite *ImpactServiceTestSuite) publishedRecord() *domain.ImpactRecord {
	record := suite.draftRecord()
	now := time.Now()
	record.Status = domain.ImpactPublished
	record.PublishedAt = &now
	return record
}

func (suite *ImpactServiceTestSuite) TestCreateImpactForcesDraft() {
	req := dto.CreateImpactRequest{
		ScopeRef:      dto.ScopeRef{EventID: &suite.eventID},
		ImpactAreaIDs: []string{suite.areaID},
		Title:         "Food bank drive",
		ImpactDate:    time.Now(),
		Proof:         dto.ProofInput{Media: []dto.MediaInput{{URL: "https://example.org/1.jpg"}}},
	}
	suite.mockEvents.On("FindEventByID", suite.ctx, suite.eventID).
		Return(&domain.Event{EventID: suite.eventID, ClubID: suite.clubID}, nil)
	suite.mockAreas.On("FindImpactAreasByIDs", suite.ctx, []string{suite.areaID}).
		Return(map[string]domain.ImpactArea{suite.areaID: {AreaID: suite.areaID}}, nil)
	suite.mockImpacts.On("SaveImpact", suite.ctx, mock.MatchedBy(func(r domain.ImpactRecord) bool {
		return r.Status == domain.ImpactDraft && !r.IsFinal && r.Scope.EventID == suite.eventID
	})).Return(nil)

	record, err := suite.service.CreateImpact(suite.ctx, suite.clubID, req, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.ImpactDraft, record.Status)
	suite.mockImpacts.AssertExpectations(suite.T())
}

func (suite *ImpactServiceTestSuite) TestCreateImpactRejectsClubScope() {
	req := dto.CreateImpactRequest{
		ImpactAreaIDs: []string{suite.areaID},
		Title:         "Unscoped",
		ImpactDate:    time.Now(),
		Proof:         dto.ProofInput{Media: []dto.MediaInput{{URL: "https://example.org/1.jpg"}}},
	}

	_, err := suite.service.CreateImpact(suite.ctx, suite.clubID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ImpactServiceTestSuite) TestCreateImpactRejectsUnknownArea() {
	req := dto.CreateImpactRequest{
		ScopeRef:      dto.ScopeRef{EventID: &suite.eventID},
		ImpactAreaIDs: []string{suite.areaID},
		Title:         "Food bank drive",
		ImpactDate:    time.Now(),
		Proof:         dto.ProofInput{Media: []dto.MediaInput{{URL: "https://example.org/1.jpg"}}},
	}
	suite.mockEvents.On("FindEventByID", suite.ctx, suite.eventID).
		Return(&domain.Event{EventID: suite.eventID, ClubID: suite.clubID}, nil)
	suite.mockAreas.On("FindImpactAreasByIDs", suite.ctx, []string{suite.areaID}).
		Return(map[string]domain.ImpactArea{}, nil)

	_, err := suite.service.CreateImpact(suite.ctx, suite.clubID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ImpactServiceTestSuite) TestUpdateByNonCreatorForbidden() {
	record := suite.draftRecord()
	record.CreatedBy = uuid.NewString()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	title := "Renamed"
	_, err := suite.service.UpdateImpact(suite.ctx, suite.clubID, record.ImpactID, dto.UpdateImpactRequest{Title: &title}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ImpactServiceTestSuite) TestUpdatePublishedRecordConflicts() {
	record := suite.publishedRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	title := "Renamed"
	_, err := suite.service.UpdateImpact(suite.ctx, suite.clubID, record.ImpactID, dto.UpdateImpactRequest{Title: &title}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ImpactServiceTestSuite) TestPublishWithoutEvidenceFails() {
	record := suite.draftRecord()
	record.Proof = domain.Proof{}
	record.Metrics = nil
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	_, err := suite.service.PublishImpact(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ImpactServiceTestSuite) TestPublishSpendWithoutReceiptFails() {
	record := suite.draftRecord()
	spent := decimal.NewFromInt(75)
	record.AmountSpent = &spent
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	_, err := suite.service.PublishImpact(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ImpactServiceTestSuite) TestPublishAdvancesPendingEventToInProgress() {
	record := suite.draftRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("UpdateImpact", suite.ctx, mock.MatchedBy(func(r domain.ImpactRecord) bool {
		return r.Status == domain.ImpactPublished && r.PublishedAt != nil
	})).Return(nil)
	suite.mockEvents.On("FindEventByID", suite.ctx, suite.eventID).
		Return(&domain.Event{EventID: suite.eventID, ClubID: suite.clubID, ImpactStatus: domain.ImpactPending}, nil)
	suite.mockEvents.On("UpdateEventImpactStatus", suite.ctx, suite.eventID, domain.ImpactInProgress, suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	published, err := suite.service.PublishImpact(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.ImpactPublished, published.Status)
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *ImpactServiceTestSuite) TestPublishKeepsCompletedEventStatus() {
	record := suite.draftRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("UpdateImpact", suite.ctx, mock.Anything).Return(nil)
	suite.mockEvents.On("FindEventByID", suite.ctx, suite.eventID).
		Return(&domain.Event{EventID: suite.eventID, ClubID: suite.clubID, ImpactStatus: domain.ImpactComplete}, nil)

	published, err := suite.service.PublishImpact(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.ImpactPublished, published.Status)
	suite.mockEvents.AssertNotCalled(suite.T(), "UpdateEventImpactStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// strongEvidence returns published records whose pooled evidence clears the
// finalization threshold.
func (suite *ImpactServiceTestSuite) strongEvidence(record domain.ImpactRecord) []domain.ImpactRecord {
	record.Proof = domain.Proof{
		Media: []domain.MediaItem{
			{URL: "https://example.org/1.jpg"},
			{URL: "https://example.org/2.jpg"},
			{URL: "https://example.org/3.jpg"},
		},
		Receipts: []string{"receipt-1"},
	}
	record.Metrics = []domain.ImpactMetric{{Milestone: "meals", Value: decimal.NewFromInt(120)}}
	return []domain.ImpactRecord{record}
}

func (suite *ImpactServiceTestSuite) TestMarkAsFinalSucceeds() {
	record := suite.publishedRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("FindFinalForScope", suite.ctx, record.Scope).
		Return(nil, apperrors.NewNotFoundError("no final record"))
	suite.mockImpacts.On("ListImpactsByScope", suite.ctx, record.Scope, []domain.ImpactRecordStatus{domain.ImpactPublished}).
		Return(suite.strongEvidence(*record), nil)
	suite.mockImpacts.On("UpdateImpact", suite.ctx, mock.MatchedBy(func(r domain.ImpactRecord) bool {
		return r.Status == domain.ImpactFinal && r.IsFinal
	})).Return(nil)
	suite.mockEvents.On("FindEventByID", suite.ctx, suite.eventID).
		Return(&domain.Event{EventID: suite.eventID, ClubID: suite.clubID, ImpactStatus: domain.ImpactInProgress}, nil)
	suite.mockEvents.On("UpdateEventImpactStatus", suite.ctx, suite.eventID, domain.ImpactComplete, suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	final, err := suite.service.MarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.NoError(err)
	suite.True(final.IsFinal)
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *ImpactServiceTestSuite) TestMarkAsFinalRejectsWeakEvidence() {
	record := suite.publishedRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("FindFinalForScope", suite.ctx, record.Scope).
		Return(nil, apperrors.NewNotFoundError("no final record"))
	suite.mockImpacts.On("ListImpactsByScope", suite.ctx, record.Scope, []domain.ImpactRecordStatus{domain.ImpactPublished}).
		Return([]domain.ImpactRecord{*record}, nil)

	_, err := suite.service.MarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockImpacts.AssertNotCalled(suite.T(), "UpdateImpact", mock.Anything, mock.Anything)
}

func (suite *ImpactServiceTestSuite) TestMarkAsFinalWithSiblingFinalConflicts() {
	record := suite.publishedRecord()
	sibling := suite.publishedRecord()
	sibling.IsFinal = true
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("FindFinalForScope", suite.ctx, record.Scope).Return(sibling, nil)

	_, err := suite.service.MarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ImpactServiceTestSuite) TestMarkAsFinalOnDraftConflicts() {
	record := suite.draftRecord()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	_, err := suite.service.MarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ImpactServiceTestSuite) TestCanMarkAsFinalReportsMissingEvidence() {
	record := suite.publishedRecord()
	record.Proof = domain.Proof{Media: []domain.MediaItem{{URL: "https://example.org/1.jpg"}}}
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)
	suite.mockImpacts.On("FindFinalForScope", suite.ctx, record.Scope).
		Return(nil, apperrors.NewNotFoundError("no final record"))
	suite.mockImpacts.On("ListImpactsByScope", suite.ctx, record.Scope, []domain.ImpactRecordStatus{domain.ImpactPublished}).
		Return([]domain.ImpactRecord{*record}, nil)

	resp, err := suite.service.CanMarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.NoError(err)
	suite.False(resp.Allowed)
	suite.NotNil(resp.Validation)
	suite.NotEmpty(resp.Validation.MissingElements)
}

func (suite *ImpactServiceTestSuite) TestCanMarkAsFinalDeniedForNonCreator() {
	record := suite.publishedRecord()
	record.CreatedBy = uuid.NewString()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	resp, err := suite.service.CanMarkAsFinal(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.NoError(err)
	suite.False(resp.Allowed)
	suite.mockImpacts.AssertNotCalled(suite.T(), "ListImpactsByScope", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImpactServiceTestSuite) TestCrossClubRecordReadsAsNotFound() {
	record := suite.draftRecord()
	record.ClubID = uuid.NewString()
	suite.mockImpacts.On("FindImpactByID", suite.ctx, record.ImpactID).Return(record, nil)

	_, err := suite.service.GetImpactByID(suite.ctx, suite.clubID, record.ImpactID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestImpactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImpactServiceTestSuite))
}
