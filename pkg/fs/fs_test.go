//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()

	exists, err := fs.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), 0o600))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFS_WriteFileAtomic_Error(t *testing.T) {
	fs := NewFS()

	err := fs.WriteFileAtomic("/dev/null/config.yaml", []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestFS_ReadFile_Missing(t *testing.T) {
	fs := NewFS()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()
	home, err := fs.GetHomeDir()
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected string
	}{
		{path: "~", expected: home},
		{path: "~/.gcli/config.yaml", expected: filepath.Join(home, ".gcli", "config.yaml")},
		{path: "/etc/gcli.yaml", expected: "/etc/gcli.yaml"},
		{path: "relative/path", expected: "relative/path"},
		{path: "~other/x", expected: "~other/x"},
		{path: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			expanded, err := fs.ExpandPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, expanded)
		})
	}
}
