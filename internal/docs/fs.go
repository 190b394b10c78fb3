package docs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the storage documents are read from and written back to.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OS returns an [FS] backed by the operating system. Relative names are
// resolved against root; absolute names are used as they are.
func OS(root string) FS {
	return osFS(root)
}

type osFS string

func (root osFS) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(string(root), filepath.FromSlash(name))
}

func (root osFS) Open(name string) (fs.File, error) {
	return os.Open(root.path(name))
}

func (root osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(root.path(name))
}

func (root osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(root.path(name))
}

func (root osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(root.path(name), data, perm)
}
