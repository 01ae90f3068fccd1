package repositories

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// UserRepositoryFacade defines the persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
