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

type PgxImpactAreaRepository struct {
	BaseRepository
}

// newPgxImpactAreaRepository creates a new repository for impact area
// reference data.
func newPgxImpactAreaRepository(pool *pgxpool.Pool) portsrepo.ImpactAreaRepositoryFacade {
	return &PgxImpactAreaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ImpactAreaRepositoryFacade = (*PgxImpactAreaRepository)(nil)

// SaveImpactArea inserts or updates an impact area (reference data setup).
func (r *PgxImpactAreaRepository) SaveImpactArea(ctx context.Context, area domain.ImpactArea) error {
	m := mapping.ToModelImpactArea(area)

	query := `
		INSERT INTO impact_areas (area_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (area_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AreaID, m.Name, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save impact area %s: %w", m.AreaID, err)
	}
	return nil
}

// FindImpactAreaByID retrieves one impact area.
func (r *PgxImpactAreaRepository) FindImpactAreaByID(ctx context.Context, areaID string) (*domain.ImpactArea, error) {
	query := `
		SELECT area_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM impact_areas
		WHERE area_id = $1;
	`
	var m models.ImpactArea
	err := r.Pool.QueryRow(ctx, query, areaID).Scan(
		&m.AreaID, &m.Name, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find impact area by id %s: %w", areaID, err)
	}

	area := mapping.ToDomainImpactArea(m)
	return &area, nil
}

// FindImpactAreasByIDs retrieves the named impact areas keyed by ID. Missing
// ids are simply absent from the map.
func (r *PgxImpactAreaRepository) FindImpactAreasByIDs(ctx context.Context, areaIDs []string) (map[string]domain.ImpactArea, error) {
	query := `
		SELECT area_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM impact_areas
		WHERE area_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, areaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query impact areas: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.ImpactArea, len(areaIDs))
	for rows.Next() {
		var m models.ImpactArea
		if err := rows.Scan(
			&m.AreaID, &m.Name, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan impact area: %w", err)
		}
		result[m.AreaID] = mapping.ToDomainImpactArea(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate impact areas: %w", err)
	}
	return result, nil
}

// ListImpactAreas retrieves all impact areas ordered by name.
func (r *PgxImpactAreaRepository) ListImpactAreas(ctx context.Context) ([]domain.ImpactArea, error) {
	query := `
		SELECT area_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM impact_areas
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query impact areas: %w", err)
	}
	defer rows.Close()

	modelAreas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ImpactArea, error) {
		var m models.ImpactArea
		err := row.Scan(
			&m.AreaID, &m.Name, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan impact areas: %w", err)
	}

	return mapping.ToDomainImpactAreaSlice(modelAreas), nil
}
