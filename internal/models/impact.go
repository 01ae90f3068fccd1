package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImpactRecordStatus is the lifecycle state of an impact record.
type ImpactRecordStatus string

const (
	ImpactRecordDraft     ImpactRecordStatus = "DRAFT"
	ImpactRecordPublished ImpactRecordStatus = "PUBLISHED"
	ImpactRecordFinal     ImpactRecordStatus = "FINAL"
)

// ImpactRecord is the row backing an impact report. Metrics and Proof are
// stored as JSONB documents; the mapping layer decodes them into domain types.
// event_id and campaign_id are mutually exclusive and exactly one is set.
type ImpactRecord struct {
	ImpactID   string  `db:"impact_id"`
	ClubID     string  `db:"club_id"`
	EventID    *string `db:"event_id"`
	CampaignID *string `db:"campaign_id"`

	Title       string             `db:"title"`
	Description string             `db:"description"`
	ImpactDate  time.Time          `db:"impact_date"`
	Location    *string            `db:"location"`
	Status      ImpactRecordStatus `db:"status"`
	AmountSpent *decimal.Decimal   `db:"amount_spent"`

	Metrics []byte `db:"metrics"` // JSONB array of impact metrics
	Proof   []byte `db:"proof"`   // JSONB proof document

	ImpactAreaIDs []string   `db:"impact_area_ids"`
	PublishedAt   *time.Time `db:"published_at"`
	IsFinal       bool       `db:"is_final"`
	AuditFields
}
