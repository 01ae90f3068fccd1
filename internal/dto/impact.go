package dto

import (
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/utils/proofscore"
	"github.com/shopspring/decimal"
)

// MetricInput is one reported metric on the wire.
type MetricInput struct {
	Milestone string          `json:"milestone" binding:"required"`
	Value     decimal.Decimal `json:"value" binding:"required"`
	Unit      string          `json:"unit"`
}

// QuoteInput is one testimonial on the wire.
type QuoteInput struct {
	Text        string `json:"text" binding:"required"`
	Attribution string `json:"attribution"`
}

// MediaInput is one media artifact on the wire.
type MediaInput struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}

// ProofInput is the evidence bundle on the wire.
type ProofInput struct {
	Receipts []string     `json:"receipts"`
	Invoices []string     `json:"invoices"`
	Quotes   []QuoteInput `json:"quotes"`
	Media    []MediaInput `json:"media" binding:"required,min=1"`
}

// CreateImpactRequest defines the data needed to create an impact record.
// Status is always forced to draft regardless of input.
type CreateImpactRequest struct {
	ScopeRef
	ImpactAreaIDs []string         `json:"impactAreaIDs" binding:"required,min=1,max=3"`
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description"`
	ImpactDate    time.Time        `json:"impactDate" binding:"required"`
	Location      *string          `json:"location"`
	Metrics       []MetricInput    `json:"metrics"`
	AmountSpent   *decimal.Decimal `json:"amountSpent"`
	Proof         ProofInput       `json:"proof" binding:"required"`
}

// UpdateImpactRequest defines the data allowed for updating a draft record.
type UpdateImpactRequest struct {
	ImpactAreaIDs []string         `json:"impactAreaIDs" binding:"omitempty,min=1,max=3"`
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	ImpactDate    *time.Time       `json:"impactDate"`
	Location      *string          `json:"location"`
	Metrics       []MetricInput    `json:"metrics"`
	AmountSpent   *decimal.Decimal `json:"amountSpent"`
	Proof         *ProofInput      `json:"proof"`
}

// ImpactResponse defines the data returned for an impact record.
type ImpactResponse struct {
	ImpactID      string                    `json:"impactID"`
	ClubID        string                    `json:"clubID"`
	EventID       *string                   `json:"eventID,omitempty"`
	CampaignID    *string                   `json:"campaignID,omitempty"`
	ImpactAreaIDs []string                  `json:"impactAreaIDs"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	ImpactDate    time.Time                 `json:"impactDate"`
	Location      *string                   `json:"location,omitempty"`
	Metrics       []domain.ImpactMetric     `json:"metrics"`
	AmountSpent   *decimal.Decimal          `json:"amountSpent,omitempty"`
	Proof         domain.Proof              `json:"proof"`
	Status        domain.ImpactRecordStatus `json:"status"`
	PublishedAt   *time.Time                `json:"publishedAt,omitempty"`
	IsFinal       bool                      `json:"isFinal"`
	CreatedAt     time.Time                 `json:"createdAt"`
	CreatedBy     string                    `json:"createdBy"`
}

// CanFinalizeResponse is the result of the finalization pre-check.
type CanFinalizeResponse struct {
	Allowed    bool               `json:"allowed"`
	Reason     string             `json:"reason,omitempty"`
	Validation *proofscore.Result `json:"validation,omitempty"`
}

// ToImpactResponse converts a domain.ImpactRecord to its response DTO.
func ToImpactResponse(r *domain.ImpactRecord) ImpactResponse {
	resp := ImpactResponse{
		ImpactID:      r.ImpactID,
		ClubID:        r.ClubID,
		ImpactAreaIDs: r.ImpactAreaIDs,
		Title:         r.Title,
		Description:   r.Description,
		ImpactDate:    r.ImpactDate,
		Location:      r.Location,
		Metrics:       r.Metrics,
		AmountSpent:   r.AmountSpent,
		Proof:         r.Proof,
		Status:        r.Status,
		PublishedAt:   r.PublishedAt,
		IsFinal:       r.IsFinal,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
	switch r.Scope.Level {
	case domain.ScopeEvent:
		id := r.Scope.EventID
		resp.EventID = &id
	case domain.ScopeCampaign:
		id := r.Scope.CampaignID
		resp.CampaignID = &id
	}
	return resp
}

// ToImpactResponses converts a slice of impact records.
func ToImpactResponses(records []domain.ImpactRecord) []ImpactResponse {
	responses := make([]ImpactResponse, len(records))
	for i := range records {
		responses[i] = ToImpactResponse(&records[i])
	}
	return responses
}

// ToDomainMetrics converts metric inputs to domain metrics.
func ToDomainMetrics(inputs []MetricInput) []domain.ImpactMetric {
	metrics := make([]domain.ImpactMetric, len(inputs))
	for i, in := range inputs {
		metrics[i] = domain.ImpactMetric{Milestone: in.Milestone, Value: in.Value, Unit: in.Unit}
	}
	return metrics
}

// ToDomainProof converts a proof input to the domain proof shape.
func ToDomainProof(in ProofInput) domain.Proof {
	proof := domain.Proof{
		Receipts: in.Receipts,
		Invoices: in.Invoices,
		Quotes:   make([]domain.Quote, len(in.Quotes)),
		Media:    make([]domain.MediaItem, len(in.Media)),
	}
	for i, q := range in.Quotes {
		proof.Quotes[i] = domain.Quote{Text: q.Text, Attribution: q.Attribution}
	}
	for i, m := range in.Media {
		proof.Media[i] = domain.MediaItem{URL: m.URL, Caption: m.Caption}
	}
	return proof
}
