package fsinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_ExistsAndModTime(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	mtime := time.Now().Add(-30 * time.Minute).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	fs := OS()

	// --- Act / Assert ---
	assert.True(t, fs.Exists(path))
	got, err := fs.ModTime(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(mtime), "got %v, want %v", got, mtime)
}

func TestOS_MissingPath(t *testing.T) {
	t.Parallel()

	fs := OS()
	path := filepath.Join(t.TempDir(), "absent.txt")

	assert.False(t, fs.Exists(path))
	_, err := fs.ModTime(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
