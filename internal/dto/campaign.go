package dto

import (
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCampaignRequest defines the data needed to create a campaign.
type CreateCampaignRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required,gte=0"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	EndDate      *time.Time      `json:"endDate"`
}

// CampaignResponse defines the data returned for a campaign.
type CampaignResponse struct {
	CampaignID         string                       `json:"campaignID"`
	ClubID             string                       `json:"clubID"`
	Name               string                       `json:"name"`
	Description        string                       `json:"description"`
	TargetAmount       decimal.Decimal              `json:"targetAmount"`
	StartDate          time.Time                    `json:"startDate"`
	EndDate            *time.Time                   `json:"endDate,omitempty"`
	Status             domain.CampaignStatus        `json:"status"`
	ImpactStatus       domain.ImpactReportingStatus `json:"impactStatus"`
	TotalRaised        decimal.Decimal              `json:"totalRaised"`
	TotalExpenses      decimal.Decimal              `json:"totalExpenses"`
	TotalProfit        decimal.Decimal              `json:"totalProfit"`
	ProgressPercentage int                          `json:"progressPercentage"`
}

// ToCampaignResponse converts a domain.Campaign to CampaignResponse.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:         c.CampaignID,
		ClubID:             c.ClubID,
		Name:               c.Name,
		Description:        c.Description,
		TargetAmount:       c.TargetAmount,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Status:             c.Status,
		ImpactStatus:       c.ImpactStatus,
		TotalRaised:        c.TotalRaised,
		TotalExpenses:      c.TotalExpenses,
		TotalProfit:        c.TotalProfit,
		ProgressPercentage: c.ProgressPercentage,
	}
}

// ToCampaignResponses converts a slice of campaigns.
func ToCampaignResponses(campaigns []domain.Campaign) []CampaignResponse {
	responses := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		responses[i] = ToCampaignResponse(&campaigns[i])
	}
	return responses
}
