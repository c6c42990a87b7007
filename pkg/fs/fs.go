// Package fs wraps the few file system operations gcli needs, so that the
// configuration layer can be tested against a mock.
package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations.
type FS interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data through a temporary file and a rename, so
	// readers never see a partial file.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// GetHomeDir returns the user's home directory.
	GetHomeDir() (string, error)

	// ExpandPath expands a leading ~ to the home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
