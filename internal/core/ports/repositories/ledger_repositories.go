package repositories

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// LedgerEntryWriter defines mutations on ledger entries.
type LedgerEntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerEntryReader defines reads over ledger entries.
type LedgerEntryReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	// ListEntriesByClub returns entries newest-first using token pagination.
	ListEntriesByClub(ctx context.Context, clubID string, kind *domain.EntryKind, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerSummer defines the absolute resummation reads the rollup aggregator
// relies on. Each call sums the live entry set for one scope.
type LedgerSummer interface {
	SumEntriesForEvent(ctx context.Context, eventID string) (domain.ScopeTotals, error)
	SumEntriesForCampaign(ctx context.Context, campaignID string) (domain.ScopeTotals, error)
	SumEntriesForClub(ctx context.Context, clubID string) (domain.ScopeTotals, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerEntryWriter
	LedgerEntryReader
	LedgerSummer
}
