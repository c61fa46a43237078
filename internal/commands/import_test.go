package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/ingestlog"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/store"
)

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runAusgabe(t, "init", dir, "--no-git")
	require.NoError(t, err)
	return dir
}

func stageStatement(t *testing.T, dir, name string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "volksbank_statement.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", name), data, 0o644))
}

func TestImport_ScansImportDir(t *testing.T) {
	dir := initProject(t)
	stageStatement(t, dir, "statement_10.txt")

	out, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "4 imported, 0 duplicates skipped")

	// File moved out of import/.
	_, err = os.Stat(filepath.Join(dir, "import", "statement_10.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "statement_10.txt"))
	assert.NoError(t, err)

	// Records landed categorized.
	svc := store.NewService(filepath.Join(dir, "data"))
	txns, err := svc.LoadAll()
	require.NoError(t, err)
	require.Len(t, txns, 4)
	assert.Equal(t, "Groceries", txns[0].Category, "ALDI row")
	assert.Equal(t, "Income", txns[2].Category, "LOHN row")

	// Ingestion is audited.
	entries, err := ingestlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "statement_10.txt", entries[0].Source)
	assert.Equal(t, 4, entries[0].Accepted)
}

func TestImport_ReingestIsIdempotent(t *testing.T) {
	dir := initProject(t)
	stageStatement(t, dir, "statement_10.txt")

	_, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err)

	// Same statement again under a different file name.
	stageStatement(t, dir, "statement_10_copy.txt")
	out, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 imported, 4 duplicates skipped")

	svc := store.NewService(filepath.Join(dir, "data"))
	txns, err := svc.LoadAll()
	require.NoError(t, err)
	assert.Len(t, txns, 4)
}

func TestImport_ExplicitFileArgument(t *testing.T) {
	dir := initProject(t)
	path := filepath.Join(t.TempDir(), "statement.txt")
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "volksbank_statement.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := runAusgabe(t, "import", "--dir", dir, path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "4 imported")

	// Explicit files are not moved.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestImport_ParseFailureChangesNothing(t *testing.T) {
	dir := initProject(t)
	bad := "01.10. 01.10. ALDI PN:931 2,60 S\n02.10. 02.10. BROKEN 12,34,56 S\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "bad.txt"), []byte(bad), 0o644))

	out, err := runAusgabe(t, "import", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "BROKEN", "error names the offending line")

	// The statement is atomic: nothing reached the store, the file stays put.
	svc := store.NewService(filepath.Join(dir, "data"))
	txns, err := svc.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, txns)
	_, err = os.Stat(filepath.Join(dir, "import", "bad.txt"))
	assert.NoError(t, err)
}

func TestImport_NothingToImport(t *testing.T) {
	dir := initProject(t)
	out, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to import")
}

func TestClear_RequiresForce(t *testing.T) {
	dir := initProject(t)
	stageStatement(t, dir, "statement_10.txt")
	_, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err)

	_, err = runAusgabe(t, "clear", "--dir", dir)
	require.Error(t, err, "clear without --force must refuse")

	svc := store.NewService(filepath.Join(dir, "data"))
	txns, err := svc.LoadAll()
	require.NoError(t, err)
	assert.Len(t, txns, 4, "refused clear changes nothing")

	_, err = runAusgabe(t, "clear", "--dir", dir, "--force")
	require.NoError(t, err)

	txns, err = svc.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReportSummary_AfterImport(t *testing.T) {
	dir := initProject(t)
	stageStatement(t, dir, "statement_10.txt")
	_, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err)

	out, err := runAusgabe(t, "report", "summary", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Total income:")
	assert.Contains(t, out, "1500.00")
	assert.Contains(t, out, "68.49") // 2.60 + 45.90 + 19.99
}

func TestExport_WritesWorkbook(t *testing.T) {
	dir := initProject(t)
	stageStatement(t, dir, "statement_10.txt")
	_, err := runAusgabe(t, "import", "--dir", dir)
	require.NoError(t, err)

	out := filepath.Join(dir, "exports", "test.xlsx")
	res, err := runAusgabe(t, "export", "--dir", dir, "--out", out)
	require.NoError(t, err, res)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
