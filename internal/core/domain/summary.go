package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryAmount is a single row in a category or source breakdown.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CampaignPerformance summarizes one campaign for the club summary.
type CampaignPerformance struct {
	CampaignID         string          `json:"campaignID"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	ProgressPercentage int             `json:"progressPercentage"`
}

// EventPerformance summarizes one event for the club summary.
type EventPerformance struct {
	EventID      string          `json:"eventID"`
	Name         string          `json:"name"`
	ActualAmount decimal.Decimal `json:"actualAmount"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// ClubSummary is the derived club-wide financial picture. It is computed on
// read from the live entry set and the current event/campaign rollups, never
// stored.
type ClubSummary struct {
	ClubID              string                `json:"clubID"`
	TotalIncome         decimal.Decimal       `json:"totalIncome"`
	TotalExpenses       decimal.Decimal       `json:"totalExpenses"`
	NetProfit           decimal.Decimal       `json:"netProfit"`
	IncomeBySource      []CategoryAmount      `json:"incomeBySource"`
	ExpensesByCategory  []CategoryAmount      `json:"expensesByCategory"`
	CampaignPerformance []CampaignPerformance `json:"campaignPerformance"`
	EventPerformance    []EventPerformance    `json:"eventPerformance"`
}
