package dto

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClubSummaryResponse defines the club-wide financial summary payload.
type ClubSummaryResponse struct {
	ClubID              string                       `json:"clubID"`
	TotalIncome         decimal.Decimal              `json:"totalIncome"`
	TotalExpenses       decimal.Decimal              `json:"totalExpenses"`
	NetProfit           decimal.Decimal              `json:"netProfit"`
	IncomeBySource      []domain.CategoryAmount      `json:"incomeBySource"`
	ExpensesByCategory  []domain.CategoryAmount      `json:"expensesByCategory"`
	CampaignPerformance []domain.CampaignPerformance `json:"campaignPerformance"`
	EventPerformance    []domain.EventPerformance    `json:"eventPerformance"`
}

// ToClubSummaryResponse converts a domain.ClubSummary to its response DTO.
func ToClubSummaryResponse(s *domain.ClubSummary) ClubSummaryResponse {
	return ClubSummaryResponse{
		ClubID:              s.ClubID,
		TotalIncome:         s.TotalIncome,
		TotalExpenses:       s.TotalExpenses,
		NetProfit:           s.NetProfit,
		IncomeBySource:      s.IncomeBySource,
		ExpensesByCategory:  s.ExpensesByCategory,
		CampaignPerformance: s.CampaignPerformance,
		EventPerformance:    s.EventPerformance,
	}
}

// TrustStatusResponse defines the trust gate payload.
type TrustStatusResponse struct {
	OutstandingCount  int  `json:"outstandingCount"`
	OverdueDays       int  `json:"overdueDays"`
	CanCreateCampaign bool `json:"canCreateCampaign"`
}

// ToTrustStatusResponse converts a domain.TrustStatus to its response DTO.
func ToTrustStatusResponse(s domain.TrustStatus) TrustStatusResponse {
	return TrustStatusResponse{
		OutstandingCount:  s.OutstandingCount,
		OverdueDays:       s.OverdueDays,
		CanCreateCampaign: s.CanCreateCampaign,
	}
}
