package services

import (
	"context"
	"log/slog"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ClubAuthorizer portssvc.ClubAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a club
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, clubID string, requiredRole domain.UserClubRole) error {
	if s.ClubAuthorizer != nil {
		return s.ClubAuthorizer.AuthorizeUserAction(ctx, userID, clubID, requiredRole)
	}
	s.LogDebug(ctx, "No club authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("club_id", clubID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
