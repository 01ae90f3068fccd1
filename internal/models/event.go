package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus indicates the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventUpcoming  EventStatus = "UPCOMING"
	EventEnded     EventStatus = "ENDED"
	EventCancelled EventStatus = "CANCELLED"
)

// ImpactReportingStatus tracks whether an ended event or completed campaign
// has had its impact reported and finalized.
type ImpactReportingStatus string

const (
	ImpactPending    ImpactReportingStatus = "PENDING"
	ImpactInProgress ImpactReportingStatus = "IN_PROGRESS"
	ImpactComplete   ImpactReportingStatus = "COMPLETE"
)

// Event represents a single fundraising occasion. The financial columns are a
// denormalized rollup recomputed from the ledger; they are never written
// directly by request handlers.
type Event struct {
	EventID     string      `db:"event_id"`
	ClubID      string      `db:"club_id"`
	CampaignID  *string     `db:"campaign_id"` // Nullable; set when the event funds a campaign
	Name        string      `db:"name"`
	Description string      `db:"description"`
	EventDate   time.Time   `db:"event_date"`
	Status      EventStatus `db:"status"`

	ImpactStatus ImpactReportingStatus `db:"impact_status"`

	ActualAmount  decimal.Decimal `db:"actual_amount"`
	TotalExpenses decimal.Decimal `db:"total_expenses"`
	NetProfit     decimal.Decimal `db:"net_profit"`

	AuditFields
}
