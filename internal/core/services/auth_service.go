package services

import (
	"context"
	"time"

	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/platform/config"
	"github.com/clubraise/clubraise_backend/internal/utils"
)

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service with the provided dependencies
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, err := s.userSvc.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a signed access token
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
		User:      dto.ToUserResponse(user),
	}, nil
}
