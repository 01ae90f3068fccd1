package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus indicates the lifecycle state of a fundraising event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventUpcoming  EventStatus = "UPCOMING"
	EventEnded     EventStatus = "ENDED"
	EventCancelled EventStatus = "CANCELLED"
)

// ImpactReportingStatus tracks how far an event or campaign has come with its
// impact reporting obligation.
type ImpactReportingStatus string

const (
	ImpactPending    ImpactReportingStatus = "PENDING"
	ImpactInProgress ImpactReportingStatus = "IN_PROGRESS"
	ImpactComplete   ImpactReportingStatus = "COMPLETE"
)

// Event is a single fundraising occasion, optionally attached to a campaign.
// ActualAmount, TotalExpenses and NetProfit are denormalized rollup columns
// recomputed in place from the event-scoped ledger entries.
type Event struct {
	EventID       string                `json:"eventID"` // Primary Key (e.g., UUID)
	ClubID        string                `json:"clubID"`
	CampaignID    *string               `json:"campaignID,omitempty"` // Parent campaign, if any
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	EventDate     time.Time             `json:"eventDate"`
	Status        EventStatus           `json:"status"`
	ImpactStatus  ImpactReportingStatus `json:"impactStatus"`
	ActualAmount  decimal.Decimal       `json:"actualAmount"`
	TotalExpenses decimal.Decimal       `json:"totalExpenses"`
	NetProfit     decimal.Decimal       `json:"netProfit"`
	AuditFields
}

// EventRollup is the derived financial aggregate for one event.
type EventRollup struct {
	ActualAmount  decimal.Decimal `json:"actualAmount"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}
