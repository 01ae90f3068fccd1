package dto

import (
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// CreateClubRequest defines the data needed to create a club.
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ClubResponse defines the data returned for a club.
type ClubResponse struct {
	ClubID      string    `json:"clubID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddClubMemberRequest defines the data needed to add a member to a club.
type AddClubMemberRequest struct {
	UserID string              `json:"userID" binding:"required"`
	Role   domain.UserClubRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// ClubMemberResponse defines the data returned for a club membership.
type ClubMemberResponse struct {
	UserID   string              `json:"userID"`
	UserName string              `json:"userName"`
	Role     domain.UserClubRole `json:"role"`
	JoinedAt time.Time           `json:"joinedAt"`
}

// ToClubResponse converts a domain.Club to ClubResponse.
func ToClubResponse(c *domain.Club) ClubResponse {
	return ClubResponse{
		ClubID:      c.ClubID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToClubMemberResponses converts club memberships to response DTOs.
func ToClubMemberResponses(members []domain.UserClub) []ClubMemberResponse {
	responses := make([]ClubMemberResponse, len(members))
	for i, m := range members {
		responses[i] = ClubMemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}
	return responses
}
