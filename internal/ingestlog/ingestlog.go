// Package ingestlog keeps an append-only CSV audit trail of statement
// ingestions.
package ingestlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the ingest log.
type Entry struct {
	Timestamp  time.Time
	Source     string // statement file name
	Accepted   int
	Duplicates int
	CommitHash string // git commit of the resulting state, if auto-commit is on
}

// Header is the CSV header for ingest-log.csv.
const Header = "timestamp,source,accepted,duplicates,commit_hash"

const (
	numFields     = 5
	logDir        = "logs"
	logFile       = "logs/ingest-log.csv"
	colTimestamp  = 0
	colSource     = 1
	colAccepted   = 2
	colDuplicates = 3
	colCommitHash = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colAccepted] = strconv.Itoa(e.Accepted)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colCommitHash] = e.CommitHash
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	accepted, err := strconv.Atoi(record[colAccepted])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing accepted %q: %w", record[colAccepted], err)
	}

	duplicates, err := strconv.Atoi(record[colDuplicates])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing duplicates %q: %w", record[colDuplicates], err)
	}

	return Entry{
		Timestamp:  ts,
		Source:     record[colSource],
		Accepted:   accepted,
		Duplicates: duplicates,
		CommitHash: record[colCommitHash],
	}, nil
}

// Append writes entries to <projectRoot>/logs/ingest-log.csv, creating the
// file and header if needed.
func Append(projectRoot string, entries []Entry) error {
	dir := filepath.Join(projectRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(projectRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ingest log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <projectRoot>/logs/ingest-log.csv. Returns
// nil if the file does not exist.
func Read(projectRoot string) ([]Entry, error) {
	path := filepath.Join(projectRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ingest log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ingest log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
