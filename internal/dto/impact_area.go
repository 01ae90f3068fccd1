package dto

import (
	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// CreateImpactAreaRequest defines the data needed to create an impact area.
type CreateImpactAreaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ImpactAreaResponse defines the data returned for an impact area.
type ImpactAreaResponse struct {
	AreaID      string `json:"areaID"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToImpactAreaResponse converts a domain.ImpactArea to its response DTO.
func ToImpactAreaResponse(a *domain.ImpactArea) ImpactAreaResponse {
	return ImpactAreaResponse{
		AreaID:      a.AreaID,
		Name:        a.Name,
		Description: a.Description,
	}
}

// ToImpactAreaResponses converts a slice of impact areas.
func ToImpactAreaResponses(areas []domain.ImpactArea) []ImpactAreaResponse {
	responses := make([]ImpactAreaResponse, len(areas))
	for i := range areas {
		responses[i] = ToImpactAreaResponse(&areas[i])
	}
	return responses
}
