package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus indicates the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// Campaign is a fundraising drive with a monetary target. Events roll up into
// their campaign; the rollup columns are denormalized and recomputed in place.
type Campaign struct {
	CampaignID         string                `json:"campaignID"` // Primary Key (e.g., UUID)
	ClubID             string                `json:"clubID"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	TargetAmount       decimal.Decimal       `json:"targetAmount"`
	StartDate          time.Time             `json:"startDate"`
	EndDate            *time.Time            `json:"endDate,omitempty"`
	Status             CampaignStatus        `json:"status"`
	ImpactStatus       ImpactReportingStatus `json:"impactStatus"`
	TotalRaised        decimal.Decimal       `json:"totalRaised"`
	TotalExpenses      decimal.Decimal       `json:"totalExpenses"`
	TotalProfit        decimal.Decimal       `json:"totalProfit"`
	ProgressPercentage int                   `json:"progressPercentage"`
	AuditFields
}

// CampaignRollup is the derived financial aggregate for one campaign:
// campaign-scoped entries plus the current rollups of its child events.
type CampaignRollup struct {
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	ProgressPercentage int             `json:"progressPercentage"`
}
