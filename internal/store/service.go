// Package store persists transactions in an append-only CSV collection with
// content-derived identity and idempotent merge.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/id"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

const storeFile = "transactions.csv"

// Service manages the transaction collection under a data directory.
type Service struct {
	dataDir string
	now     func() time.Time
}

// NewService creates a store Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir, now: time.Now}
}

// MergeResult reports the outcome of one Merge call.
type MergeResult struct {
	Accepted   int
	Duplicates int
	Total      int
}

// Merge computes each candidate's identity key, appends those not already
// present (in input order), and reports counts. Duplicates are a normal
// outcome, never an error. The updated state is written to a temp file and
// renamed into place, so a failed merge leaves the prior state intact.
func (s *Service) Merge(txns []model.Transaction) (MergeResult, error) {
	existing, err := s.LoadAll()
	if err != nil {
		return MergeResult{}, err
	}

	seen := make(map[string]bool, len(existing))
	for _, txn := range existing {
		seen[txn.ID] = true
	}

	result := MergeResult{Total: len(txns)}
	uploadDate := s.now()
	combined := existing
	for _, txn := range txns {
		txn.ID = id.Transaction(txn.ValueDate, txn.Amount, txn.Description)
		if seen[txn.ID] {
			result.Duplicates++
			continue
		}
		seen[txn.ID] = true
		txn.UploadDate = uploadDate
		combined = append(combined, txn)
		result.Accepted++
	}

	if result.Accepted == 0 {
		return result, nil
	}

	if err := s.writeAll(combined); err != nil {
		return MergeResult{}, err
	}
	return result, nil
}

// LoadAll returns every persisted transaction in insertion order. A missing
// store file is an empty store, not an error.
func (s *Service) LoadAll() ([]model.Transaction, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", s.path(), err)
	}
	return txns, nil
}

// UpdateCategory corrects the category of one persisted record. Category is
// outside the identity key, so the record's ID does not change.
func (s *Service) UpdateCategory(txnID, category string) error {
	txns, err := s.LoadAll()
	if err != nil {
		return err
	}

	found := false
	for i := range txns {
		if txns[i].ID == txnID {
			txns[i].Category = category
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no transaction with id %s", txnID)
	}
	return s.writeAll(txns)
}

// Recategorize reapplies a categorization function to every persisted
// record and reports how many categories changed. IDs and order are
// untouched.
func (s *Service) Recategorize(categorize func(description string) string) (int, error) {
	txns, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, nil
	}

	changed := 0
	for i := range txns {
		if next := categorize(txns[i].Description); next != txns[i].Category {
			txns[i].Category = next
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.writeAll(txns)
}

// ClearAll irreversibly removes every persisted transaction. Callers gate
// this behind an explicit confirmation; it is never part of ingestion.
func (s *Service) ClearAll() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing store: %w", err)
	}
	return nil
}

// writeAll writes the full state as one logically atomic step.
func (s *Service) writeAll(txns []model.Transaction) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, storeFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTransactions(tmp, txns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		return fmt.Errorf("committing store: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, storeFile)
}
