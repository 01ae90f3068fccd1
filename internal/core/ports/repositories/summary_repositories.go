package repositories

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// SummaryRepositoryFacade provides the club-wide breakdown reads used by the
// financial summary. All reads are live aggregations over the entry set.
type SummaryRepositoryFacade interface {
	GetIncomeBySource(ctx context.Context, clubID string) ([]domain.CategoryAmount, error)
	GetExpensesByCategory(ctx context.Context, clubID string) ([]domain.CategoryAmount, error)
}
