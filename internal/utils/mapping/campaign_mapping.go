package mapping

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelCampaign converts a domain Campaign to a model Campaign
func ToModelCampaign(d domain.Campaign) models.Campaign {
	return models.Campaign{
		CampaignID:         d.CampaignID,
		ClubID:             d.ClubID,
		Name:               d.Name,
		Description:        d.Description,
		TargetAmount:       d.TargetAmount,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		Status:             models.CampaignStatus(d.Status),
		ImpactStatus:       models.ImpactReportingStatus(d.ImpactStatus),
		TotalRaised:        d.TotalRaised,
		TotalExpenses:      d.TotalExpenses,
		TotalProfit:        d.TotalProfit,
		ProgressPercentage: d.ProgressPercentage,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCampaign converts a model Campaign to a domain Campaign
func ToDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		CampaignID:         m.CampaignID,
		ClubID:             m.ClubID,
		Name:               m.Name,
		Description:        m.Description,
		TargetAmount:       m.TargetAmount,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Status:             domain.CampaignStatus(m.Status),
		ImpactStatus:       domain.ImpactReportingStatus(m.ImpactStatus),
		TotalRaised:        m.TotalRaised,
		TotalExpenses:      m.TotalExpenses,
		TotalProfit:        m.TotalProfit,
		ProgressPercentage: m.ProgressPercentage,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCampaignSlice converts a slice of model Campaigns to a slice of domain Campaigns
func ToDomainCampaignSlice(ms []models.Campaign) []domain.Campaign {
	ds := make([]domain.Campaign, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCampaign(m)
	}
	return ds
}
