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
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a bcrypt password hash
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing username",
			slog.String("username", req.Username))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("username is already taken")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user",
			slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// FindUserByID retrieves a user by ID
func (s *userService) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// VerifyCredentials checks a username/password pair. Failures are reported
// uniformly so the caller cannot distinguish a bad username from a bad
// password.
func (s *userService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("invalid username or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login",
			slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewForbiddenError("invalid username or password")
	}
	return user, nil
}
