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

type PgxImpactRepository struct {
	BaseRepository
}

// newPgxImpactRepository creates a new repository for impact records.
func newPgxImpactRepository(pool *pgxpool.Pool) portsrepo.ImpactRepositoryFacade {
	return &PgxImpactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ImpactRepositoryFacade = (*PgxImpactRepository)(nil)

const impactColumns = `impact_id, club_id, event_id, campaign_id, title, description, impact_date, location,
		status, amount_spent, metrics, proof, impact_area_ids, published_at, is_final,
		created_at, created_by, last_updated_at, last_updated_by`

func scanImpactRow(row pgx.Row) (models.ImpactRecord, error) {
	var m models.ImpactRecord
	err := row.Scan(
		&m.ImpactID,
		&m.ClubID,
		&m.EventID,
		&m.CampaignID,
		&m.Title,
		&m.Description,
		&m.ImpactDate,
		&m.Location,
		&m.Status,
		&m.AmountSpent,
		&m.Metrics,
		&m.Proof,
		&m.ImpactAreaIDs,
		&m.PublishedAt,
		&m.IsFinal,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// scopeClause returns the WHERE fragment and argument for one scope. Scopes
// are event- or campaign-bound; club scope never reaches the repository.
func scopeClause(scope domain.Scope) (string, any) {
	if scope.Level == domain.ScopeEvent {
		return `event_id = $1`, scope.EventID
	}
	return `campaign_id = $1`, scope.CampaignID
}

// SaveImpact inserts a new impact record row with its JSONB documents.
func (r *PgxImpactRepository) SaveImpact(ctx context.Context, record domain.ImpactRecord) error {
	m, err := mapping.ToModelImpactRecord(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO impact_records (impact_id, club_id, event_id, campaign_id, title, description, impact_date,
			location, status, amount_spent, metrics, proof, impact_area_ids, published_at, is_final,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ImpactID, m.ClubID, m.EventID, m.CampaignID, m.Title, m.Description, m.ImpactDate,
		m.Location, m.Status, m.AmountSpent, m.Metrics, m.Proof, m.ImpactAreaIDs, m.PublishedAt, m.IsFinal,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save impact record %s: %w", m.ImpactID, err)
	}
	return nil
}

// UpdateImpact rewrites the mutable columns of an impact record, including
// its status and finality flags.
func (r *PgxImpactRepository) UpdateImpact(ctx context.Context, record domain.ImpactRecord) error {
	m, err := mapping.ToModelImpactRecord(record)
	if err != nil {
		return err
	}

	query := `
		UPDATE impact_records
		SET title = $2, description = $3, impact_date = $4, location = $5, status = $6, amount_spent = $7,
			metrics = $8, proof = $9, impact_area_ids = $10, published_at = $11, is_final = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE impact_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ImpactID, m.Title, m.Description, m.ImpactDate, m.Location, m.Status, m.AmountSpent,
		m.Metrics, m.Proof, m.ImpactAreaIDs, m.PublishedAt, m.IsFinal,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update impact record %s: %w", m.ImpactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteImpact removes an impact record row.
func (r *PgxImpactRepository) DeleteImpact(ctx context.Context, impactID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM impact_records WHERE impact_id = $1;`, impactID)
	if err != nil {
		return fmt.Errorf("failed to delete impact record %s: %w", impactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindImpactByID retrieves an impact record by its ID.
func (r *PgxImpactRepository) FindImpactByID(ctx context.Context, impactID string) (*domain.ImpactRecord, error) {
	query := `SELECT ` + impactColumns + ` FROM impact_records WHERE impact_id = $1;`

	m, err := scanImpactRow(r.Pool.QueryRow(ctx, query, impactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find impact record by id %s: %w", impactID, err)
	}

	record, err := mapping.ToDomainImpactRecord(m)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListImpactsByScope retrieves the records of one scope, optionally filtered
// by status, oldest first.
func (r *PgxImpactRepository) ListImpactsByScope(ctx context.Context, scope domain.Scope, statuses []domain.ImpactRecordStatus) ([]domain.ImpactRecord, error) {
	clause, arg := scopeClause(scope)
	query := `SELECT ` + impactColumns + ` FROM impact_records WHERE ` + clause
	args := []any{arg}

	if len(statuses) > 0 {
		statusStrs := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrs[i] = string(s)
		}
		args = append(args, statusStrs)
		query += fmt.Sprintf(` AND status = ANY($%d)`, len(args))
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query impact records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ImpactRecord, error) {
		return scanImpactRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan impact records: %w", err)
	}

	return mapping.ToDomainImpactRecordSlice(modelRecords)
}

// FindFinalForScope retrieves the scope's final record, if any. The partial
// unique indexes on (event_id) and (campaign_id) where is_final guarantee at
// most one row.
func (r *PgxImpactRepository) FindFinalForScope(ctx context.Context, scope domain.Scope) (*domain.ImpactRecord, error) {
	clause, arg := scopeClause(scope)
	query := `SELECT ` + impactColumns + ` FROM impact_records WHERE ` + clause + ` AND is_final;`

	m, err := scanImpactRow(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find final impact record: %w", err)
	}

	record, err := mapping.ToDomainImpactRecord(m)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
