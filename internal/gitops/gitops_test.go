package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	assert.True(t, IsRepo(dir))
}

func TestInitAndCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte("header\n"), 0o644))

	hash, err := CommitAll(dir, "import: statement_10.txt", "AusgabeAnalyst", "ausgabe@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
