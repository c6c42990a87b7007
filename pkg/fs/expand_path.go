package fs

import (
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ to the home directory. Other paths are
// returned unchanged.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := f.GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
