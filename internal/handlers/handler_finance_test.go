package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/handlers"
	"github.com/clubraise/clubraise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FinanceService ---
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) CreateIncome(ctx context.Context, clubID string, req dto.CreateIncomeRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, clubID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockFinanceService) CreateExpense(ctx context.Context, clubID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, clubID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockFinanceService) UpdateIncome(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, clubID, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockFinanceService) UpdateExpense(ctx context.Context, clubID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, clubID, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockFinanceService) DeleteIncome(ctx context.Context, clubID, entryID string, userID string) error {
	args := m.Called(ctx, clubID, entryID, userID)
	return args.Error(0)
}
func (m *MockFinanceService) DeleteExpense(ctx context.Context, clubID, entryID string, userID string) error {
	args := m.Called(ctx, clubID, entryID, userID)
	return args.Error(0)
}
func (m *MockFinanceService) ListEntries(ctx context.Context, clubID string, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, clubID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockFinanceService) RecalculateEventFinancials(ctx context.Context, clubID, eventID string, userID string) (*domain.EventRollup, error) {
	args := m.Called(ctx, clubID, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRollup), args.Error(1)
}
func (m *MockFinanceService) RecalculateCampaignFinancials(ctx context.Context, clubID, campaignID string, userID string) (*domain.CampaignRollup, error) {
	args := m.Called(ctx, clubID, campaignID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CampaignRollup), args.Error(1)
}
func (m *MockFinanceService) GetClubFinancialSummary(ctx context.Context, clubID string, userID string) (*domain.ClubSummary, error) {
	args := m.Called(ctx, clubID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FinanceSvcFacade = (*MockFinanceService)(nil)

// --- Test Suite ---
type FinanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *FinanceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "clubraise-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFinanceService = new(MockFinanceService)

	// Mimic the club grouping used in production route registration
	club := suite.router.Group("/api/v1/clubs/:clubID")
	handlers.RegisterFinanceRoutes(club, suite.mockFinanceService)
}

func (suite *FinanceHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FinanceHandlerTestSuite) TestCreateIncome_Success() {
	clubID := uuid.NewString()
	userID := uuid.NewString()
	body := dto.CreateIncomeRequest{
		Source:        "Bake sale",
		Amount:        decimal.NewFromInt(150),
		Date:          time.Now().UTC(),
		PaymentMethod: "CASH",
	}
	created := &domain.LedgerEntry{
		EntryID: uuid.NewString(),
		ClubID:  clubID,
		Kind:    domain.Income,
		Amount:  decimal.NewFromInt(150),
		Status:  domain.EntryPaid,
	}

	suite.mockFinanceService.On("CreateIncome",
		mock.AnythingOfType("*context.valueCtx"),
		clubID,
		mock.MatchedBy(func(r dto.CreateIncomeRequest) bool {
			return r.Source == "Bake sale" && r.Amount.Equal(decimal.NewFromInt(150))
		}),
		userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/finances/income", clubID), userID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerEntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EntryID, resp.EntryID)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestCreateIncome_InvalidBody() {
	clubID := uuid.NewString()
	userID := uuid.NewString()
	// Missing required source, amount, date and payment method.
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/finances/income", clubID), userID, map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "CreateIncome", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestCreateIncome_MissingToken() {
	clubID := uuid.NewString()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/finances/income", clubID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *FinanceHandlerTestSuite) TestCreateIncome_DualScopeConflict() {
	clubID := uuid.NewString()
	userID := uuid.NewString()
	eventID := uuid.NewString()
	campaignID := uuid.NewString()
	body := dto.CreateIncomeRequest{
		ScopeRef:      dto.ScopeRef{EventID: &eventID, CampaignID: &campaignID},
		Source:        "Raffle",
		Amount:        decimal.NewFromInt(40),
		Date:          time.Now().UTC(),
		PaymentMethod: "CARD",
	}

	suite.mockFinanceService.On("CreateIncome",
		mock.AnythingOfType("*context.valueCtx"), clubID, mock.Anything, userID,
	).Return(nil, apperrors.NewConflictError("entry cannot reference both an event and a campaign")).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/finances/income", clubID), userID, body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FinanceHandlerTestSuite) TestDeleteExpense_NoContent() {
	clubID := uuid.NewString()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockFinanceService.On("DeleteExpense",
		mock.AnythingOfType("*context.valueCtx"), clubID, entryID, userID,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/clubs/%s/finances/expenses/%s", clubID, entryID), userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestListEntries_Success() {
	clubID := uuid.NewString()
	userID := uuid.NewString()
	limit := 10
	expected := &dto.ListEntriesResponse{
		Entries: []dto.LedgerEntryResponse{
			{EntryID: uuid.NewString(), ClubID: clubID, Kind: domain.Income, Amount: decimal.NewFromInt(100)},
			{EntryID: uuid.NewString(), ClubID: clubID, Kind: domain.Expense, Amount: decimal.NewFromInt(30)},
		},
	}

	suite.mockFinanceService.On("ListEntries",
		mock.AnythingOfType("*context.valueCtx"),
		clubID,
		userID,
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.Limit == limit
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/clubs/%s/finances/entries?limit=%d", clubID, limit)
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.Equal(expected.Entries[0].EntryID, resp.Entries[0].EntryID)
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestGetSummary_NotAMember() {
	clubID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockFinanceService.On("GetClubFinancialSummary",
		mock.AnythingOfType("*context.valueCtx"), clubID, userID,
	).Return(nil, apperrors.NewForbiddenError("user is not a member of this club")).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%s/finances/summary", clubID), userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Run Test Suite ---
func TestFinanceHandler(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
