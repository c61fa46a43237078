package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

func TestTransactionRoundTrip(t *testing.T) {
	orig := model.Transaction{
		ID:             "abc123def4567890",
		ValueDate:      date(2025, time.October, 1),
		BookingDate:    date(2025, time.October, 2),
		Description:    "KARTENZAHLUNG REWE Markt, Giessen",
		RawDescription: "02.10. 02.10. KARTENZAHLUNG GIROCARD PN:123 45,90 S REWE Markt",
		Amount:         dec("-45.90"),
		Type:           model.TypeDebit,
		Category:       "Groceries",
		UploadDate:     time.Date(2025, time.October, 31, 14, 30, 5, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, []model.Transaction{orig}))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	txns, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	got := txns[0]

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Description, got.Description, "embedded comma survives")
	assert.Equal(t, orig.RawDescription, got.RawDescription)
	assert.True(t, orig.Amount.Equal(got.Amount))
	assert.Equal(t, orig.Type, got.Type)
	assert.True(t, orig.ValueDate.Equal(got.ValueDate))
	assert.True(t, orig.UploadDate.Equal(got.UploadDate))
}

func TestReadTransactions_Empty(t *testing.T) {
	txns, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)

	txns, err = ReadTransactions(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestUnmarshalTransaction_Errors(t *testing.T) {
	base := MarshalTransaction(txn(1, "-2.60", "ALDI"))

	badType := append([]string(nil), base...)
	badType[colType] = "Soll"
	_, err := UnmarshalTransaction(badType)
	assert.ErrorContains(t, err, "unknown type")

	badAmount := append([]string(nil), base...)
	badAmount[colAmount] = "2,60"
	_, err = UnmarshalTransaction(badAmount)
	assert.ErrorContains(t, err, "parsing amount")

	badDate := append([]string(nil), base...)
	badDate[colValueDate] = "01.10.2025"
	_, err = UnmarshalTransaction(badDate)
	assert.ErrorContains(t, err, "parsing value_date")

	_, err = UnmarshalTransaction([]string{"too", "short"})
	assert.ErrorContains(t, err, "expected 9 fields")
}
