package services

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// ClubReaderSvc defines read operations for club data.
type ClubReaderSvc interface {
	// FindClubByID retrieves a specific club by its ID.
	FindClubByID(ctx context.Context, clubID string) (*domain.Club, error)

	// ListUserClubs retrieves the clubs a user belongs to.
	ListUserClubs(ctx context.Context, userID string) ([]domain.Club, error)

	// ListClubMembers retrieves all users and their roles for a club.
	// Only members of the club can access this data.
	ListClubMembers(ctx context.Context, clubID string, requestingUserID string) ([]domain.UserClub, error)
}

// ClubWriterSvc defines write operations for club data.
type ClubWriterSvc interface {
	// CreateClub persists a new club with the creator as admin.
	CreateClub(ctx context.Context, name, description, creatorUserID string) (*domain.Club, error)
}

// ClubMembershipSvc defines operations for managing club membership.
type ClubMembershipSvc interface {
	// AddUserToClub adds a user to a club with a specific role.
	// Only club admins can add other users.
	AddUserToClub(ctx context.Context, addingUserID, targetUserID, clubID string, role domain.UserClubRole) error
}

// ClubAuthorizerSvc defines operations for club authorization.
type ClubAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has the required role for a club.
	AuthorizeUserAction(ctx context.Context, userID, clubID string, requiredRole domain.UserClubRole) error
}

// ClubSvcFacade combines all club-related service interfaces.
type ClubSvcFacade interface {
	ClubReaderSvc
	ClubWriterSvc
	ClubMembershipSvc
	ClubAuthorizerSvc
}
