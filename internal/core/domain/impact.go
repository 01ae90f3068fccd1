package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImpactRecordStatus is the publication state of an impact record.
type ImpactRecordStatus string

const (
	ImpactDraft     ImpactRecordStatus = "DRAFT"
	ImpactPublished ImpactRecordStatus = "PUBLISHED"
	ImpactFinal     ImpactRecordStatus = "FINAL"
)

// ImpactMetric is one measured outcome reported by a club.
type ImpactMetric struct {
	Milestone string          `json:"milestone"`
	Value     decimal.Decimal `json:"value"` // Must be > 0 to count as a valid metric
	Unit      string          `json:"unit,omitempty"`
}

// Quote is a testimonial attached as proof.
type Quote struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
}

// MediaItem is a photo or video attached as proof.
type MediaItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Proof is the closed set of evidence attached to an impact record.
type Proof struct {
	Receipts []string    `json:"receipts"`
	Invoices []string    `json:"invoices"`
	Quotes   []Quote     `json:"quotes"`
	Media    []MediaItem `json:"media"`
}

// ImpactRecord documents the real-world impact of an event or campaign.
// It is created in DRAFT, becomes PUBLISHED after minimal validation, and at
// most one record per scope may be FINAL.
type ImpactRecord struct {
	ImpactID      string             `json:"impactID"` // Primary Key (e.g., UUID)
	ClubID        string             `json:"clubID"`
	Scope         Scope              `json:"scope"` // Event or campaign scope, never club-wide
	ImpactAreaIDs []string           `json:"impactAreaIDs"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ImpactDate    time.Time          `json:"impactDate"`
	Location      *string            `json:"location,omitempty"`
	Metrics       []ImpactMetric     `json:"metrics"`
	AmountSpent   *decimal.Decimal   `json:"amountSpent,omitempty"`
	Proof         Proof              `json:"proof"`
	Status        ImpactRecordStatus `json:"status"`
	PublishedAt   *time.Time         `json:"publishedAt,omitempty"`
	IsFinal       bool               `json:"isFinal"`
	AuditFields
}

// SpentAmount returns the reported spend, zero when absent.
func (r *ImpactRecord) SpentAmount() decimal.Decimal {
	if r.AmountSpent == nil {
		return decimal.Zero
	}
	return *r.AmountSpent
}

// ImpactArea is reference data: a category of impact a club can report against.
type ImpactArea struct {
	AreaID      string `json:"areaID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
