package mapping

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelImpactArea converts a domain ImpactArea to a model ImpactArea
func ToModelImpactArea(d domain.ImpactArea) models.ImpactArea {
	return models.ImpactArea{
		AreaID:      d.AreaID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainImpactArea converts a model ImpactArea to a domain ImpactArea
func ToDomainImpactArea(m models.ImpactArea) domain.ImpactArea {
	return domain.ImpactArea{
		AreaID:      m.AreaID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainImpactAreaSlice converts a slice of model ImpactAreas to a slice of domain ImpactAreas
func ToDomainImpactAreaSlice(ms []models.ImpactArea) []domain.ImpactArea {
	ds := make([]domain.ImpactArea, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImpactArea(m)
	}
	return ds
}
