// Package export renders the store's aggregation views into a multi-sheet
// XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/store"
)

const (
	sheetTransactions = "All Transactions"
	sheetSummary      = "Summary"
	sheetMonthly      = "Monthly"
	sheetCategories   = "Categories"
)

const dateFormat = "2006-01-02"

// WriteXLSX writes the transaction list plus summary, monthly, and category
// rollups as four sheets.
func WriteXLSX(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTransactionsSheet(f, txns); err != nil {
		return err
	}
	if err := writeSummarySheet(f, store.Summarize(txns)); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, store.MonthlySummary(txns)); err != nil {
		return err
	}
	if err := writeCategoriesSheet(f, store.CategorySummary(txns)); err != nil {
		return err
	}

	// excelize starts every workbook with a default "Sheet1".
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeTransactionsSheet(f *excelize.File, txns []model.Transaction) error {
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return fmt.Errorf("creating transactions sheet: %w", err)
	}

	headers := []string{"ID", "Value Date", "Booking Date", "Description", "Amount", "Type", "Category", "Upload Date"}
	if err := writeRow(f, sheetTransactions, 1, headers); err != nil {
		return err
	}

	for i, txn := range txns {
		row := []any{
			txn.ID,
			txn.ValueDate.Format(dateFormat),
			txn.BookingDate.Format(dateFormat),
			txn.Description,
			txn.Amount.InexactFloat64(),
			string(txn.Type),
			txn.Category,
			txn.UploadDate.Format(dateFormat),
		}
		if err := writeRowValues(f, sheetTransactions, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetTransactions, "A", "A", 18); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(sheetTransactions, "D", "D", 50); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s store.Summary) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	dateRange := ""
	if !s.From.IsZero() {
		dateRange = s.From.Format(dateFormat) + " to " + s.To.Format(dateFormat)
	}

	rows := [][]any{
		{"Total Transactions", s.TotalTransactions},
		{"Total Income", s.TotalIncome.InexactFloat64()},
		{"Total Expenses", s.TotalExpenses.InexactFloat64()},
		{"Net Savings", s.NetSavings.InexactFloat64()},
		{"Current Balance", s.CurrentBalance.InexactFloat64()},
		{"Date Range", dateRange},
	}
	for i, row := range rows {
		if err := writeRowValues(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 20); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, buckets []store.MonthlyBucket) error {
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return fmt.Errorf("creating monthly sheet: %w", err)
	}

	if err := writeRow(f, sheetMonthly, 1, []string{"Month", "Income", "Expenses", "Net", "Transactions"}); err != nil {
		return err
	}
	for i, b := range buckets {
		row := []any{
			fmt.Sprintf("%04d-%02d", b.Year, b.Month),
			b.Income.InexactFloat64(),
			b.Expenses.InexactFloat64(),
			b.Net.InexactFloat64(),
			b.Count,
		}
		if err := writeRowValues(f, sheetMonthly, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCategoriesSheet(f *excelize.File, buckets []store.CategoryBucket) error {
	if _, err := f.NewSheet(sheetCategories); err != nil {
		return fmt.Errorf("creating categories sheet: %w", err)
	}

	if err := writeRow(f, sheetCategories, 1, []string{"Category", "Total", "Transactions"}); err != nil {
		return err
	}
	for i, b := range buckets {
		row := []any{b.Category, b.Total.InexactFloat64(), b.Count}
		if err := writeRowValues(f, sheetCategories, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetCategories, "A", "A", 22); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return writeRowValues(f, sheet, row, vals)
}

func writeRowValues(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("setting cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
