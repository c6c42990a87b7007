package fs

import (
	"errors"
	"io/fs"
	"os"
)

// Exists reports whether path exists.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}
