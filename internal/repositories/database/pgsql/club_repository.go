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

type PgxClubRepository struct {
	BaseRepository
}

// newPgxClubRepository creates a new repository for club and membership data.
func newPgxClubRepository(pool *pgxpool.Pool) portsrepo.ClubRepositoryFacade {
	return &PgxClubRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClubRepositoryFacade = (*PgxClubRepository)(nil)

// SaveClub inserts a new club row.
func (r *PgxClubRepository) SaveClub(ctx context.Context, club domain.Club) error {
	modelClub := mapping.ToModelClub(club)

	query := `
		INSERT INTO clubs (club_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClub.ClubID,
		modelClub.Name,
		modelClub.Description,
		modelClub.IsActive,
		modelClub.CreatedAt,
		modelClub.CreatedBy,
		modelClub.LastUpdatedAt,
		modelClub.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save club %s: %w", modelClub.ClubID, err)
	}
	return nil
}

// UpdateClub updates the mutable club columns.
func (r *PgxClubRepository) UpdateClub(ctx context.Context, club domain.Club) error {
	modelClub := mapping.ToModelClub(club)

	query := `
		UPDATE clubs
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE club_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelClub.ClubID,
		modelClub.Name,
		modelClub.Description,
		modelClub.IsActive,
		modelClub.LastUpdatedAt,
		modelClub.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update club %s: %w", modelClub.ClubID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClubByID retrieves a club by its ID.
func (r *PgxClubRepository) FindClubByID(ctx context.Context, clubID string) (*domain.Club, error) {
	query := `
		SELECT club_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM clubs
		WHERE club_id = $1;
	`
	var modelClub models.Club
	err := r.Pool.QueryRow(ctx, query, clubID).Scan(
		&modelClub.ClubID,
		&modelClub.Name,
		&modelClub.Description,
		&modelClub.IsActive,
		&modelClub.CreatedAt,
		&modelClub.CreatedBy,
		&modelClub.LastUpdatedAt,
		&modelClub.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find club by id %s: %w", clubID, err)
	}

	domainClub := mapping.ToDomainClub(modelClub)
	return &domainClub, nil
}

// ListClubsByUserID retrieves the clubs a user holds an active membership in.
func (r *PgxClubRepository) ListClubsByUserID(ctx context.Context, userID string) ([]domain.Club, error) {
	query := `
		SELECT c.club_id, c.name, c.description, c.is_active, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM clubs c
		JOIN user_clubs uc ON uc.club_id = c.club_id
		WHERE uc.user_id = $1 AND uc.role != 'REMOVED'
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelClubs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Club, error) {
		var club models.Club
		err := row.Scan(
			&club.ClubID,
			&club.Name,
			&club.Description,
			&club.IsActive,
			&club.CreatedAt,
			&club.CreatedBy,
			&club.LastUpdatedAt,
			&club.LastUpdatedBy,
		)
		return club, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clubs: %w", err)
	}

	return mapping.ToDomainClubSlice(modelClubs), nil
}

// AddUserToClub inserts or updates a membership row.
func (r *PgxClubRepository) AddUserToClub(ctx context.Context, membership domain.UserClub) error {
	query := `
		INSERT INTO user_clubs (user_id, club_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, club_id) DO UPDATE SET
			role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.ClubID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add user %s to club %s: %w", membership.UserID, membership.ClubID, err)
	}
	return nil
}

// FindUserClubRole retrieves a single membership row.
func (r *PgxClubRepository) FindUserClubRole(ctx context.Context, userID, clubID string) (*domain.UserClub, error) {
	query := `
		SELECT uc.user_id, u.name, uc.club_id, uc.role, uc.joined_at
		FROM user_clubs uc
		JOIN users u ON u.user_id = uc.user_id
		WHERE uc.user_id = $1 AND uc.club_id = $2;
	`
	var modelUC models.UserClub
	err := r.Pool.QueryRow(ctx, query, userID, clubID).Scan(
		&modelUC.UserID,
		&modelUC.UserName,
		&modelUC.ClubID,
		&modelUC.Role,
		&modelUC.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership for user %s in club %s: %w", userID, clubID, err)
	}

	domainUC := mapping.ToDomainUserClub(modelUC)
	return &domainUC, nil
}

// ListClubUsers retrieves the membership roster of a club, excluding removed
// members.
func (r *PgxClubRepository) ListClubUsers(ctx context.Context, clubID string) ([]domain.UserClub, error) {
	query := `
		SELECT uc.user_id, u.name, uc.club_id, uc.role, uc.joined_at
		FROM user_clubs uc
		JOIN users u ON u.user_id = uc.user_id
		WHERE uc.club_id = $1 AND uc.role != 'REMOVED'
		ORDER BY uc.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of club %s: %w", clubID, err)
	}
	defer rows.Close()

	modelUCs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UserClub, error) {
		var uc models.UserClub
		err := row.Scan(&uc.UserID, &uc.UserName, &uc.ClubID, &uc.Role, &uc.JoinedAt)
		return uc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan club members: %w", err)
	}

	return mapping.ToDomainUserClubSlice(modelUCs), nil
}
