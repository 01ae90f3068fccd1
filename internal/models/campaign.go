package models

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

// Campaign represents a long-running fundraising goal that events and direct
// ledger entries contribute towards. Rollup columns are derived from linked
// event rollups plus campaign-scoped entries.
type Campaign struct {
	CampaignID   string          `db:"campaign_id"`
	ClubID       string          `db:"club_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      *time.Time      `db:"end_date"` // Nullable; open-ended campaigns allowed
	Status       CampaignStatus  `db:"status"`

	ImpactStatus ImpactReportingStatus `db:"impact_status"`

	TotalRaised        decimal.Decimal `db:"total_raised"`
	TotalExpenses      decimal.Decimal `db:"total_expenses"`
	TotalProfit        decimal.Decimal `db:"total_profit"`
	ProgressPercentage int             `db:"progress_percentage"`

	AuditFields
}
