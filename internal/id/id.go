// Package id derives content-based transaction identifiers.
package id

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Length is the number of hex characters in a transaction ID.
const Length = 16

// Transaction returns the identity key for a transaction: a 16-character
// hex digest of the (value date, amount, description) triple. Category and
// raw description are deliberately excluded, so two ingestions of the same
// statement row always collide.
func Transaction(valueDate time.Time, amount decimal.Decimal, description string) string {
	key := fmt.Sprintf("%s_%s_%s", valueDate.Format("2006-01-02"), amount.StringFixed(2), description)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:Length]
}
