package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates whether a ledger entry records money in or money out.
type EntryKind string

const (
	Income  EntryKind = "INCOME"
	Expense EntryKind = "EXPENSE"
)

// EntryStatus indicates settlement state of an entry.
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
	EntryPaid    EntryStatus = "PAID"
)

// LedgerEntry is a single income or expense row. event_id and campaign_id are
// mutually exclusive; both NULL means the entry is club-scoped.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	ClubID        string          `db:"club_id"`
	EventID       *string         `db:"event_id"`
	CampaignID    *string         `db:"campaign_id"`
	Kind          EntryKind       `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Source        string          `db:"source"`
	Description   string          `db:"description"`
	Vendor        *string         `db:"vendor"`
	PaymentMethod string          `db:"payment_method"`
	Status        EntryStatus     `db:"status"`
	EntryDate     time.Time       `db:"entry_date"`
	AuditFields
}
