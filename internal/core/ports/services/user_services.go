package services

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// VerifyCredentials checks username/password and returns the user.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthSvcFacade issues access tokens for verified users.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error)
}
