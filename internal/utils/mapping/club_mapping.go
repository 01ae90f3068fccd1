package mapping

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/models"
)

// ToModelClub converts a domain Club to a model Club
func ToModelClub(d domain.Club) models.Club {
	return models.Club{
		ClubID:      d.ClubID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClub converts a model Club to a domain Club
func ToDomainClub(m models.Club) domain.Club {
	return domain.Club{
		ClubID:      m.ClubID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClubSlice converts a slice of model Clubs to a slice of domain Clubs
func ToDomainClubSlice(ms []models.Club) []domain.Club {
	ds := make([]domain.Club, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClub(m)
	}
	return ds
}

// ToDomainUserClub converts a model UserClub to a domain UserClub
func ToDomainUserClub(m models.UserClub) domain.UserClub {
	return domain.UserClub{
		UserID:   m.UserID,
		UserName: m.UserName,
		ClubID:   m.ClubID,
		Role:     domain.UserClubRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToDomainUserClubSlice converts a slice of model UserClubs to a slice of domain UserClubs
func ToDomainUserClubSlice(ms []models.UserClub) []domain.UserClub {
	ds := make([]domain.UserClub, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserClub(m)
	}
	return ds
}
