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

type PgxCampaignRepository struct {
	BaseRepository
}

// newPgxCampaignRepository creates a new repository for campaign data.
func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepositoryFacade {
	return &PgxCampaignRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CampaignRepositoryFacade = (*PgxCampaignRepository)(nil)

const campaignColumns = `campaign_id, club_id, name, description, target_amount, start_date, end_date, status,
		impact_status, total_raised, total_expenses, total_profit, progress_percentage,
		created_at, created_by, last_updated_at, last_updated_by`

func scanCampaignRow(row pgx.Row) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.CampaignID,
		&c.ClubID,
		&c.Name,
		&c.Description,
		&c.TargetAmount,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.ImpactStatus,
		&c.TotalRaised,
		&c.TotalExpenses,
		&c.TotalProfit,
		&c.ProgressPercentage,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCampaign inserts a new campaign row.
func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := mapping.ToModelCampaign(campaign)

	query := `
		INSERT INTO campaigns (campaign_id, club_id, name, description, target_amount, start_date, end_date, status,
			impact_status, total_raised, total_expenses, total_profit, progress_percentage,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CampaignID, m.ClubID, m.Name, m.Description, m.TargetAmount, m.StartDate, m.EndDate, m.Status,
		m.ImpactStatus, m.TotalRaised, m.TotalExpenses, m.TotalProfit, m.ProgressPercentage,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save campaign %s: %w", m.CampaignID, err)
	}
	return nil
}

// FindCampaignByID retrieves a campaign by its ID.
func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE campaign_id = $1;`

	m, err := scanCampaignRow(r.Pool.QueryRow(ctx, query, campaignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find campaign by id %s: %w", campaignID, err)
	}

	campaign := mapping.ToDomainCampaign(m)
	return &campaign, nil
}

// ListCampaignsByClub retrieves all campaigns of a club, newest first.
func (r *PgxCampaignRepository) ListCampaignsByClub(ctx context.Context, clubID string) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE club_id = $1 ORDER BY start_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns for club %s: %w", clubID, err)
	}
	defer rows.Close()

	modelCampaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Campaign, error) {
		return scanCampaignRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan campaigns: %w", err)
	}
	return mapping.ToDomainCampaignSlice(modelCampaigns), nil
}

// UpdateCampaignStatus updates the lifecycle status of a campaign.
func (r *PgxCampaignRepository) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE campaigns
		SET status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE campaign_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, campaignID, string(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of campaign %s: %w", campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCampaignImpactStatus updates the impact reporting status of a campaign.
func (r *PgxCampaignRepository) UpdateCampaignImpactStatus(ctx context.Context, campaignID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE campaigns
		SET impact_status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE campaign_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, campaignID, string(status), updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update impact status of campaign %s: %w", campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCampaignRollup overwrites the denormalized rollup columns of a campaign.
func (r *PgxCampaignRepository) UpdateCampaignRollup(ctx context.Context, campaignID string, rollup domain.CampaignRollup, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE campaigns
		SET total_raised = $2, total_expenses = $3, total_profit = $4, progress_percentage = $5,
			last_updated_by = $6, last_updated_at = $7
		WHERE campaign_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, campaignID,
		rollup.TotalRaised, rollup.TotalExpenses, rollup.TotalProfit, rollup.ProgressPercentage,
		updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update rollup of campaign %s: %w", campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
