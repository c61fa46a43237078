package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType distinguishes outflows from inflows. It is derived from the
// statement's S/H indicator, never inferred from the description.
type TxnType string

const (
	TypeDebit  TxnType = "Debit"  // Soll, amount <= 0
	TypeCredit TxnType = "Credit" // Haben, amount >= 0
)

// Transaction is one bank statement row, persisted as a line in
// transactions.csv.
type Transaction struct {
	ID             string    // content hash of (ValueDate, Amount, Description)
	ValueDate      time.Time //nolint:revive // plain field name is clearest
	BookingDate    time.Time //nolint:revive
	Description    string    // cleaned, single-line
	RawDescription string    // verbatim source lines, kept for audit
	Amount         decimal.Decimal
	Type           TxnType
	Category       string    // assigned post-extraction, may be corrected later
	UploadDate     time.Time // ingestion timestamp, not part of identity
}

// SignConsistent reports whether Amount's sign agrees with Type.
// A zero amount is valid for either type.
func (t Transaction) SignConsistent() bool {
	switch t.Type {
	case TypeDebit:
		return !t.Amount.IsPositive()
	case TypeCredit:
		return !t.Amount.IsNegative()
	}
	return false
}
