package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "transaction_id,value_date,booking_date,description,amount,type,category,raw_description,upload_date"

const (
	numFields        = 9
	dateFormat       = "2006-01-02"
	uploadDateFormat = "2006-01-02 15:04:05"
	colID            = 0
	colValueDate     = 1
	colBookingDate   = 2
	colDesc          = 3
	colAmount        = 4
	colType          = 5
	colCategory      = 6
	colRawDesc       = 7
	colUploadDate    = 8
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header), preserving slice order.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colValueDate] = txn.ValueDate.Format(dateFormat)
	row[colBookingDate] = txn.BookingDate.Format(dateFormat)
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colType] = string(txn.Type)
	row[colCategory] = txn.Category
	row[colRawDesc] = txn.RawDescription
	row[colUploadDate] = txn.UploadDate.Format(uploadDateFormat)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	valueDate, err := time.Parse(dateFormat, record[colValueDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing value_date %q: %w", record[colValueDate], err)
	}

	bookingDate, err := time.Parse(dateFormat, record[colBookingDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing booking_date %q: %w", record[colBookingDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	uploadDate, err := time.Parse(uploadDateFormat, record[colUploadDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing upload_date %q: %w", record[colUploadDate], err)
	}

	txnType := model.TxnType(record[colType])
	if txnType != model.TypeDebit && txnType != model.TypeCredit {
		return model.Transaction{}, fmt.Errorf("unknown type %q", record[colType])
	}

	return model.Transaction{
		ID:             record[colID],
		ValueDate:      valueDate,
		BookingDate:    bookingDate,
		Description:    record[colDesc],
		Amount:         amount,
		Type:           txnType,
		Category:       record[colCategory],
		RawDescription: record[colRawDesc],
		UploadDate:     uploadDate,
	}, nil
}
