package ingestlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, time.October, 31, 14, 30, 0, 0, time.UTC)

	require.NoError(t, Append(dir, []Entry{
		{Timestamp: ts, Source: "statement_10.txt", Accepted: 12, Duplicates: 0, CommitHash: "abc1234"},
	}))
	require.NoError(t, Append(dir, []Entry{
		{Timestamp: ts.Add(time.Hour), Source: "statement_10.txt", Accepted: 0, Duplicates: 12},
	}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "statement_10.txt", entries[0].Source)
	assert.Equal(t, 12, entries[0].Accepted)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
	assert.True(t, entries[0].Timestamp.Equal(ts))

	assert.Equal(t, 12, entries[1].Duplicates)
	assert.Empty(t, entries[1].CommitHash)
}

func TestRead_NoLogFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"not-a-time", "f.txt", "1", "0", ""})
	assert.ErrorContains(t, err, "parsing timestamp")

	_, err = UnmarshalEntry([]string{time.Now().Format(time.RFC3339), "f.txt", "x", "0", ""})
	assert.ErrorContains(t, err, "parsing accepted")

	_, err = UnmarshalEntry([]string{"only", "four", "fields", "here"})
	assert.ErrorContains(t, err, "expected 5 fields")
}
