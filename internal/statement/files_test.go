package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "statement_10.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "statement_09.TXT"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.pdf"), []byte("x"), 0o644))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2, "only .txt files, subdirectories skipped")
	for _, f := range files {
		assert.NotEmpty(t, f.Path)
		assert.Equal(t, int64(1), f.Size)
	}
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "statement_10.txt"), []byte("x"), 0o644))

	require.NoError(t, MarkProcessed(root, "statement_10.txt"))

	_, err := os.Stat(filepath.Join(dir, "statement_10.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "processed", "statement_10.txt"))
	assert.NoError(t, err)
}
