package mapping

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:       d.EventID,
		ClubID:        d.ClubID,
		CampaignID:    d.CampaignID,
		Name:          d.Name,
		Description:   d.Description,
		EventDate:     d.EventDate,
		Status:        models.EventStatus(d.Status),
		ImpactStatus:  models.ImpactReportingStatus(d.ImpactStatus),
		ActualAmount:  d.ActualAmount,
		TotalExpenses: d.TotalExpenses,
		NetProfit:     d.NetProfit,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:       m.EventID,
		ClubID:        m.ClubID,
		CampaignID:    m.CampaignID,
		Name:          m.Name,
		Description:   m.Description,
		EventDate:     m.EventDate,
		Status:        domain.EventStatus(m.Status),
		ImpactStatus:  domain.ImpactReportingStatus(m.ImpactStatus),
		ActualAmount:  m.ActualAmount,
		TotalExpenses: m.TotalExpenses,
		NetProfit:     m.NetProfit,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEventSlice converts a slice of model Events to a slice of domain Events
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
