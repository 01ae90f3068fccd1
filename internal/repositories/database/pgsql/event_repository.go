package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	"github.com/clubraise/clubraise_backend/internal/models"
	"github.com/clubraise/clubraise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, club_id, campaign_id, name, description, event_date, status, impact_status,
		actual_amount, total_expenses, net_profit, created_at, created_by, last_updated_at, last_updated_by`

func scanEventRow(row pgx.Row) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.EventID,
		&e.ClubID,
		&e.CampaignID,
		&e.Name,
		&e.Description,
		&e.EventDate,
		&e.Status,
		&e.ImpactStatus,
		&e.ActualAmount,
		&e.TotalExpenses,
		&e.NetProfit,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveEvent inserts a new event row.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)

	query := `
		INSERT INTO events (event_id, club_id, campaign_id, name, description, event_date, status, impact_status,
			actual_amount, total_expenses, net_profit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.ClubID, m.CampaignID, m.Name, m.Description, m.EventDate, m.Status, m.ImpactStatus,
		m.ActualAmount, m.TotalExpenses, m.NetProfit, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", m.EventID, err)
	}
	return nil
}

// FindEventByID retrieves an event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`

	m, err := scanEventRow(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by id %s: %w", eventID, err)
	}

	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// ListEventsByClub retrieves all events of a club, newest first.
func (r *PgxEventRepository) ListEventsByClub(ctx context.Context, clubID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE club_id = $1 ORDER BY event_date DESC, created_at DESC;`
	return r.listEvents(ctx, query, clubID)
}

// ListEventsByCampaign retrieves the child events of a campaign.
func (r *PgxEventRepository) ListEventsByCampaign(ctx context.Context, campaignID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE campaign_id = $1 ORDER BY event_date DESC, created_at DESC;`
	return r.listEvents(ctx, query, campaignID)
}

// ListOutstandingImpactEvents retrieves the club's ended events still owing
// an impact report, dated on or after windowStart.
func (r *PgxEventRepository) ListOutstandingImpactEvents(ctx context.Context, clubID string, windowStart time.Time) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE club_id = $1
			AND status = 'ENDED'
			AND impact_status IN ('PENDING', 'IN_PROGRESS')
			AND event_date >= $2
		ORDER BY event_date;
	`
	rows, err := r.Pool.Query(ctx, query, clubID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding impact events for club %s: %w", clubID, err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEventRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan outstanding impact events: %w", err)
	}
	return mapping.ToDomainEventSlice(modelEvents), nil
}

func (r *PgxEventRepository) listEvents(ctx context.Context, query string, arg any) ([]domain.Event, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEventRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	return mapping.ToDomainEventSlice(modelEvents), nil
}

// SumEventRollups sums the current rollup columns of a campaign's child
// events, excluding cancelled ones.
func (r *PgxEventRepository) SumEventRollups(ctx context.Context, campaignID string) (domain.ScopeTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(actual_amount), 0) AS income,
			COALESCE(SUM(total_expenses), 0) AS expenses
		FROM events
		WHERE campaign_id = $1 AND status != 'CANCELLED';
	`
	var totals domain.ScopeTotals
	err := r.Pool.QueryRow(ctx, query, campaignID).Scan(&totals.Income, &totals.Expenses)
	if err != nil {
		return domain.ScopeTotals{}, fmt.Errorf("failed to sum event rollups for campaign %s: %w", campaignID, err)
	}
	return totals, nil
}

// UpdateEventStatus updates the lifecycle status of an event.
func (r *PgxEventRepository) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE events
		SET status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, string(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEventImpactStatus updates the impact reporting status of an event.
func (r *PgxEventRepository) UpdateEventImpactStatus(ctx context.Context, eventID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE events
		SET impact_status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, string(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update impact status of event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEventRollup overwrites the denormalized rollup columns of an event.
func (r *PgxEventRepository) UpdateEventRollup(ctx context.Context, eventID string, rollup domain.EventRollup, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE events
		SET actual_amount = $2, total_expenses = $3, net_profit = $4, last_updated_by = $5, last_updated_at = $6
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID,
		rollup.ActualAmount, rollup.TotalExpenses, rollup.NetProfit, updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update rollup of event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
