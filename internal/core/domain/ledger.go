package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes income from expense ledger entries.
type EntryKind string

const (
	Income  EntryKind = "INCOME"
	Expense EntryKind = "EXPENSE"
)

// EntryStatus indicates the settlement state of a ledger entry.
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
	EntryPaid    EntryStatus = "PAID"
)

// LedgerEntry is a single income or expense record bound to exactly one scope.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"` // Primary Key (e.g., UUID)
	ClubID        string          `json:"clubID"`
	Scope         Scope           `json:"scope"`
	Kind          EntryKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`           // Always non-negative; sign is carried by Kind
	Category      string          `json:"category"`         // Expense category (empty for income)
	Source        string          `json:"source"`           // Income source (empty for expenses)
	Description   string          `json:"description"`      // Nullable user description
	Vendor        *string         `json:"vendor,omitempty"` // Expense vendor, if any
	PaymentMethod string          `json:"paymentMethod"`
	Status        EntryStatus     `json:"status"`
	EntryDate     time.Time       `json:"entryDate"` // Date the money moved
	AuditFields
}

// ScopeTotals holds the absolute income/expense sums for one scope.
type ScopeTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Net returns income minus expenses; may be negative.
func (t ScopeTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}
