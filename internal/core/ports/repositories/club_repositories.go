package repositories

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// ClubReader defines read operations for club data.
type ClubReader interface {
	FindClubByID(ctx context.Context, clubID string) (*domain.Club, error)
	ListClubsByUserID(ctx context.Context, userID string) ([]domain.Club, error)
}

// ClubWriter defines write operations for club data.
type ClubWriter interface {
	SaveClub(ctx context.Context, club domain.Club) error
	UpdateClub(ctx context.Context, club domain.Club) error
}

// ClubMembership defines operations on club membership rows.
type ClubMembership interface {
	AddUserToClub(ctx context.Context, membership domain.UserClub) error
	FindUserClubRole(ctx context.Context, userID, clubID string) (*domain.UserClub, error)
	ListClubUsers(ctx context.Context, clubID string) ([]domain.UserClub, error)
}

// ClubRepositoryFacade combines all club repository interfaces.
type ClubRepositoryFacade interface {
	ClubReader
	ClubWriter
	ClubMembership
}
