package mapping

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// The scope union flattens into the nullable event_id/campaign_id pair.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:       d.EntryID,
		ClubID:        d.ClubID,
		Kind:          models.EntryKind(d.Kind),
		Amount:        d.Amount,
		Category:      d.Category,
		Source:        d.Source,
		Description:   d.Description,
		Vendor:        d.Vendor,
		PaymentMethod: d.PaymentMethod,
		Status:        models.EntryStatus(d.Status),
		EntryDate:     d.EntryDate,
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
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
// Rows with both references set cannot be produced through the API; if one
// exists the event reference wins so reads stay total.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	scope := domain.ClubScope()
	if m.EventID != nil && *m.EventID != "" {
		scope = domain.EventScope(*m.EventID)
	} else if m.CampaignID != nil && *m.CampaignID != "" {
		scope = domain.CampaignScope(*m.CampaignID)
	}
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		ClubID:        m.ClubID,
		Scope:         scope,
		Kind:          domain.EntryKind(m.Kind),
		Amount:        m.Amount,
		Category:      m.Category,
		Source:        m.Source,
		Description:   m.Description,
		Vendor:        m.Vendor,
		PaymentMethod: m.PaymentMethod,
		Status:        domain.EntryStatus(m.Status),
		EntryDate:     m.EntryDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
