package pgsql

import (
	"context"
	"fmt"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// summaryRepository implements the SummaryRepositoryFacade interface. All
// reads are live aggregations over the entry set; nothing here is cached.
type summaryRepository struct {
	BaseRepository
}

// newSummaryRepository creates a new summary repository
func newSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepositoryFacade {
	return &summaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepositoryFacade = (*summaryRepository)(nil)

// GetIncomeBySource aggregates the club's income entries by source.
func (r *summaryRepository) GetIncomeBySource(ctx context.Context, clubID string) ([]domain.CategoryAmount, error) {
	query := `
		SELECT source, COALESCE(SUM(amount), 0) AS total
		FROM ledger_entries
		WHERE club_id = $1 AND kind = 'INCOME'
		GROUP BY source
		ORDER BY total DESC;
	`
	return r.queryBreakdown(ctx, query, clubID, "income by source")
}

// GetExpensesByCategory aggregates the club's expense entries by category.
func (r *summaryRepository) GetExpensesByCategory(ctx context.Context, clubID string) ([]domain.CategoryAmount, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM ledger_entries
		WHERE club_id = $1 AND kind = 'EXPENSE'
		GROUP BY category
		ORDER BY total DESC;
	`
	return r.queryBreakdown(ctx, query, clubID, "expenses by category")
}

func (r *summaryRepository) queryBreakdown(ctx context.Context, query, clubID, what string) ([]domain.CategoryAmount, error) {
	rows, err := r.Pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", what, err)
	}
	defer rows.Close()

	var result []domain.CategoryAmount
	for rows.Next() {
		var row domain.CategoryAmount
		if err := rows.Scan(&row.Name, &row.Amount); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", what, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}

	if len(result) == 0 {
		return []domain.CategoryAmount{}, nil
	}
	return result, nil
}
