package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// clubService implements the ClubSvcFacade interface
type clubService struct {
	BaseService
	clubRepo portsrepo.ClubRepositoryFacade
}

// NewClubService creates a new club service with the provided dependencies
func NewClubService(clubRepo portsrepo.ClubRepositoryFacade) portssvc.ClubSvcFacade {
	return &clubService{clubRepo: clubRepo}
}

// Ensure clubService implements the ClubSvcFacade interface
var _ portssvc.ClubSvcFacade = (*clubService)(nil)

// FindClubByID retrieves a club by its ID
func (s *clubService) FindClubByID(ctx context.Context, clubID string) (*domain.Club, error) {
	club, err := s.clubRepo.FindClubByID(ctx, clubID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find club by ID",
				slog.String("club_id", clubID))
		}
		return nil, err
	}
	return club, nil
}

// ListUserClubs retrieves all clubs a user belongs to
func (s *clubService) ListUserClubs(ctx context.Context, userID string) ([]domain.Club, error) {
	clubs, err := s.clubRepo.ListClubsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clubs for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if clubs == nil {
		return []domain.Club{}, nil
	}
	return clubs, nil
}

// ListClubMembers retrieves the membership roster of a club. Any current
// member may read it.
func (s *clubService) ListClubMembers(ctx context.Context, clubID string, requestingUserID string) ([]domain.UserClub, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	members, err := s.clubRepo.ListClubUsers(ctx, clubID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list club members",
			slog.String("club_id", clubID))
		return nil, err
	}
	if members == nil {
		return []domain.UserClub{}, nil
	}
	return members, nil
}

// CreateClub creates a new club and adds the creator as its admin
func (s *clubService) CreateClub(ctx context.Context, name, description, creatorUserID string) (*domain.Club, error) {
	now := time.Now()
	club := domain.Club{
		ClubID:      uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clubRepo.SaveClub(ctx, club); err != nil {
		s.LogError(ctx, err, "Failed to save club",
			slog.String("club_id", club.ClubID))
		return nil, err
	}

	membership := domain.UserClub{
		UserID:   creatorUserID,
		ClubID:   club.ClubID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.clubRepo.AddUserToClub(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new club",
			slog.String("club_id", club.ClubID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Club created",
		slog.String("club_id", club.ClubID),
		slog.String("created_by", creatorUserID))
	return &club, nil
}

// AddUserToClub adds a user to a club. Only admins of the club may do this,
// except when a user is adding themselves as the first admin at creation.
func (s *clubService) AddUserToClub(ctx context.Context, addingUserID, targetUserID, clubID string, role domain.UserClubRole) error {
	if addingUserID != targetUserID {
		if err := s.AuthorizeUserAction(ctx, addingUserID, clubID, domain.RoleAdmin); err != nil {
			return err
		}
	}

	membership := domain.UserClub{
		UserID:   targetUserID,
		ClubID:   clubID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.clubRepo.AddUserToClub(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to club",
			slog.String("club_id", clubID),
			slog.String("target_user_id", targetUserID))
		return err
	}
	return nil
}

// AuthorizeUserAction checks the user's membership row against the required
// role. Role ordering: ADMIN > MEMBER > READONLY; REMOVED never passes.
func (s *clubService) AuthorizeUserAction(ctx context.Context, userID, clubID string, requiredRole domain.UserClubRole) error {
	membership, err := s.clubRepo.FindUserClubRole(ctx, userID, clubID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewForbiddenError("user is not a member of this club")
		}
		s.LogError(ctx, err, "Failed to check club membership",
			slog.String("club_id", clubID),
			slog.String("user_id", userID))
		return err
	}

	if roleRank(membership.Role) < roleRank(requiredRole) {
		return apperrors.NewForbiddenError("user lacks the required role for this club")
	}
	return nil
}

func roleRank(role domain.UserClubRole) int {
	switch role {
	case domain.RoleAdmin:
		return 3
	case domain.RoleMember:
		return 2
	case domain.RoleReadOnly:
		return 1
	default: // REMOVED or unknown
		return 0
	}
}
