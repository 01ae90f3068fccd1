package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	"github.com/clubraise/clubraise_backend/internal/models"
	"github.com/clubraise/clubraise_backend/internal/utils/mapping"
	"github.com/clubraise/clubraise_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const entryColumns = `entry_id, club_id, event_id, campaign_id, kind, amount, category, source, description,
		vendor, payment_method, status, entry_date, created_at, created_by, last_updated_at, last_updated_by`

func scanEntryRow(row pgx.Row) (models.LedgerEntry, error) {
	var e models.LedgerEntry
	err := row.Scan(
		&e.EntryID,
		&e.ClubID,
		&e.EventID,
		&e.CampaignID,
		&e.Kind,
		&e.Amount,
		&e.Category,
		&e.Source,
		&e.Description,
		&e.Vendor,
		&e.PaymentMethod,
		&e.Status,
		&e.EntryDate,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveEntry inserts a new ledger entry row. The scope check constraint on the
// table enforces that event_id and campaign_id are never both set.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (entry_id, club_id, event_id, campaign_id, kind, amount, category, source,
			description, vendor, payment_method, status, entry_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.ClubID, m.EventID, m.CampaignID, m.Kind, m.Amount, m.Category, m.Source,
		m.Description, m.Vendor, m.PaymentMethod, m.Status, m.EntryDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// UpdateEntry updates the mutable columns of an entry. Scope columns are
// never touched; an entry stays in the scope it was created in.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		UPDATE ledger_entries
		SET amount = $2, category = $3, source = $4, description = $5, vendor = $6,
			payment_method = $7, status = $8, entry_date = $9, last_updated_at = $10, last_updated_by = $11
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Amount, m.Category, m.Source, m.Description, m.Vendor,
		m.PaymentMethod, m.Status, m.EntryDate, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry row.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	m, err := scanEntryRow(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by id %s: %w", entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntriesByClub retrieves a page of the club's entries, newest first,
// using token-based pagination over (entry_date, created_at).
func (r *PgxLedgerRepository) ListEntriesByClub(ctx context.Context, clubID string, kind *domain.EntryKind, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	baseQuery := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE club_id = $1`
	args := []any{clubID}

	if kind != nil {
		args = append(args, string(*kind))
		baseQuery += ` AND kind = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastEntryDate, lastCreatedAt)
		baseQuery += fmt.Sprintf(` AND (entry_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	// Fetch one extra row to decide whether a next page exists.
	args = append(args, limit+1)
	query := baseQuery + ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger entries for club %s: %w", clubID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		return scanEntryRow(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nextTokenVal, nil
}

// SumEntriesForEvent resums the live entry set of one event scope.
func (r *PgxLedgerRepository) SumEntriesForEvent(ctx context.Context, eventID string) (domain.ScopeTotals, error) {
	return r.sumEntries(ctx, `event_id = $1`, eventID)
}

// SumEntriesForCampaign resums the entries attached directly to a campaign
// scope. Child event entries are not included; the rollup aggregator adds
// event rollups separately.
func (r *PgxLedgerRepository) SumEntriesForCampaign(ctx context.Context, campaignID string) (domain.ScopeTotals, error) {
	return r.sumEntries(ctx, `campaign_id = $1`, campaignID)
}

// SumEntriesForClub resums every entry of a club regardless of scope.
func (r *PgxLedgerRepository) SumEntriesForClub(ctx context.Context, clubID string) (domain.ScopeTotals, error) {
	return r.sumEntries(ctx, `club_id = $1`, clubID)
}

func (r *PgxLedgerRepository) sumEntries(ctx context.Context, where string, arg any) (domain.ScopeTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN kind = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expenses
		FROM ledger_entries
		WHERE ` + where + `;`

	var totals domain.ScopeTotals
	err := r.Pool.QueryRow(ctx, query, arg).Scan(&totals.Income, &totals.Expenses)
	if err != nil {
		return domain.ScopeTotals{}, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return totals, nil
}
