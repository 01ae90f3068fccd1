package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelImpactRecord converts a domain ImpactRecord to a model ImpactRecord.
// Metrics and Proof are encoded into their JSONB documents here so the
// repository only deals in bytes.
func ToModelImpactRecord(d domain.ImpactRecord) (models.ImpactRecord, error) {
	metricsJSON, err := json.Marshal(d.Metrics)
	if err != nil {
		return models.ImpactRecord{}, fmt.Errorf("failed to marshal impact metrics: %w", err)
	}
	proofJSON, err := json.Marshal(d.Proof)
	if err != nil {
		return models.ImpactRecord{}, fmt.Errorf("failed to marshal impact proof: %w", err)
	}
	m := models.ImpactRecord{
		ImpactID:      d.ImpactID,
		ClubID:        d.ClubID,
		Title:         d.Title,
		Description:   d.Description,
		ImpactDate:    d.ImpactDate,
		Location:      d.Location,
		Status:        models.ImpactRecordStatus(d.Status),
		AmountSpent:   d.AmountSpent,
		Metrics:       metricsJSON,
		Proof:         proofJSON,
		ImpactAreaIDs: d.ImpactAreaIDs,
		PublishedAt:   d.PublishedAt,
		IsFinal:       d.IsFinal,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	switch d.Scope.Level {
	case domain.ScopeEvent:
		eventID := d.Scope.EventID
		m.EventID = &eventID
	case domain.ScopeCampaign:
		campaignID := d.Scope.CampaignID
		m.CampaignID = &campaignID
	}
	return m, nil
}

// ToDomainImpactRecord converts a model ImpactRecord to a domain ImpactRecord,
// decoding the JSONB metric and proof documents.
func ToDomainImpactRecord(m models.ImpactRecord) (domain.ImpactRecord, error) {
	var metrics []domain.ImpactMetric
	if len(m.Metrics) > 0 {
		if err := json.Unmarshal(m.Metrics, &metrics); err != nil {
			return domain.ImpactRecord{}, fmt.Errorf("failed to unmarshal impact metrics: %w", err)
		}
	}
	var proof domain.Proof
	if len(m.Proof) > 0 {
		if err := json.Unmarshal(m.Proof, &proof); err != nil {
			return domain.ImpactRecord{}, fmt.Errorf("failed to unmarshal impact proof: %w", err)
		}
	}
	scope := domain.ClubScope()
	if m.EventID != nil && *m.EventID != "" {
		scope = domain.EventScope(*m.EventID)
	} else if m.CampaignID != nil && *m.CampaignID != "" {
		scope = domain.CampaignScope(*m.CampaignID)
	}
	return domain.ImpactRecord{
		ImpactID:      m.ImpactID,
		ClubID:        m.ClubID,
		Scope:         scope,
		ImpactAreaIDs: m.ImpactAreaIDs,
		Title:         m.Title,
		Description:   m.Description,
		ImpactDate:    m.ImpactDate,
		Location:      m.Location,
		Metrics:       metrics,
		AmountSpent:   m.AmountSpent,
		Proof:         proof,
		Status:        domain.ImpactRecordStatus(m.Status),
		PublishedAt:   m.PublishedAt,
		IsFinal:       m.IsFinal,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainImpactRecordSlice converts a slice of model ImpactRecords to a slice of domain ImpactRecords
func ToDomainImpactRecordSlice(ms []models.ImpactRecord) ([]domain.ImpactRecord, error) {
	ds := make([]domain.ImpactRecord, len(ms))
	for i, m := range ms {
		d, err := ToDomainImpactRecord(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
