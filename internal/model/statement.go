package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is one parsed bank statement document.
type Statement struct {
	Metadata     Metadata
	Transactions []Transaction // document line order, not date order
}

// Metadata holds the account-level fields of a statement. Extraction is
// tolerant: any field the document does not carry stays at its zero value.
type Metadata struct {
	IBAN            string
	StatementNumber string
	Year            int // statement year, supplies the year for DD.MM. dates

	OpeningBalance     decimal.NullDecimal
	OpeningBalanceDate time.Time
	ClosingBalance     decimal.NullDecimal
	ClosingBalanceDate time.Time
}

// BalancesReconcile checks closing = opening + sum(amounts). It returns true
// when either balance is absent, since there is nothing to verify.
func (s Statement) BalancesReconcile() bool {
	if !s.Metadata.OpeningBalance.Valid || !s.Metadata.ClosingBalance.Valid {
		return true
	}
	sum := decimal.Zero
	for _, t := range s.Transactions {
		sum = sum.Add(t.Amount)
	}
	return s.Metadata.OpeningBalance.Decimal.Add(sum).Equal(s.Metadata.ClosingBalance.Decimal)
}
