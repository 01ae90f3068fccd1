package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	"github.com/clubraise/clubraise_backend/internal/models"
	"github.com/clubraise/clubraise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a new user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Name,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", modelUser.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID, excluding soft-deleted rows.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(ctx, query, userID)
}

// FindUserByUsername retrieves a user by username, excluding soft-deleted rows.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(ctx, query, username)
}

func (r *PgxUserRepository) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Name,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}
