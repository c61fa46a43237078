package store

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

// Summary holds store-wide aggregate statistics. Expenses are reported as a
// positive magnitude; Net = Income - Expenses.
type Summary struct {
	TotalTransactions int
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	CurrentBalance    decimal.Decimal
	From, To          time.Time // value date range, zero when empty
}

// MonthlyBucket is one (year, month) rollup of value dates.
type MonthlyBucket struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal // positive magnitude
	Net      decimal.Decimal
	Count    int
}

// CategoryBucket is one per-category expense rollup.
type CategoryBucket struct {
	Category string
	Total    decimal.Decimal // positive magnitude of expenses
	Count    int
}

// Summarize computes aggregate statistics. An empty input yields a
// zero-valued Summary, never an error.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{
		TotalTransactions: len(txns),
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetSavings:        decimal.Zero,
		CurrentBalance:    decimal.Zero,
	}
	for _, txn := range txns {
		if txn.Amount.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount.Abs())
		}
		s.CurrentBalance = s.CurrentBalance.Add(txn.Amount)

		if s.From.IsZero() || txn.ValueDate.Before(s.From) {
			s.From = txn.ValueDate
		}
		if txn.ValueDate.After(s.To) {
			s.To = txn.ValueDate
		}
	}
	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// MonthlySummary groups by (year, month) of the value date, ordered
// chronologically.
func MonthlySummary(txns []model.Transaction) []MonthlyBucket {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthlyBucket)
	for _, txn := range txns {
		k := key{txn.ValueDate.Year(), txn.ValueDate.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthlyBucket{
				Year:     k.year,
				Month:    k.month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[k] = b
		}
		if txn.Amount.IsPositive() {
			b.Income = b.Income.Add(txn.Amount)
		} else {
			b.Expenses = b.Expenses.Add(txn.Amount.Abs())
		}
		b.Count++
	}

	out := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Net = b.Income.Sub(b.Expenses)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// CategorySummary groups expense records (negative amounts) by category,
// ordered by descending expense magnitude.
func CategorySummary(txns []model.Transaction) []CategoryBucket {
	buckets := make(map[string]*CategoryBucket)
	var order []string
	for _, txn := range txns {
		if !txn.Amount.IsNegative() {
			continue
		}
		b, ok := buckets[txn.Category]
		if !ok {
			b = &CategoryBucket{Category: txn.Category, Total: decimal.Zero}
			buckets[txn.Category] = b
			order = append(order, txn.Category)
		}
		b.Total = b.Total.Add(txn.Amount.Abs())
		b.Count++
	}

	out := make([]CategoryBucket, 0, len(order))
	for _, cat := range order {
		out = append(out, *buckets[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// SummaryStatistics aggregates the full persisted collection.
func (s *Service) SummaryStatistics() (Summary, error) {
	txns, err := s.LoadAll()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(txns), nil
}

// MonthlySummary aggregates the full persisted collection by month.
func (s *Service) MonthlySummary() ([]MonthlyBucket, error) {
	txns, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	return MonthlySummary(txns), nil
}

// CategorySummary aggregates the full persisted collection by category.
func (s *Service) CategorySummary() ([]CategoryBucket, error) {
	txns, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	return CategorySummary(txns), nil
}
