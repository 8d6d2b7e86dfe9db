package workspace

import (
	"os"
	"path/filepath"
)

// Folder is any directory inside a workspace other than .markhor. It has
// no on-disk identity beyond its path.
type Folder struct {
	path string
}

// Path returns the folder's absolute directory path.
func (f *Folder) Path() string { return f.path }

// Name returns the folder's base name.
func (f *Folder) Name() string { return filepath.Base(f.path) }

// ListDocuments enumerates the documents whose .markhor files live
// directly in this folder.
func (f *Folder) ListDocuments() ([]*Document, error) {
	return listDocuments(f.path)
}

// ListFolders enumerates the immediate subdirectories of this folder.
func (f *Folder) ListFolders() ([]*Folder, error) {
	return listFolders(f.path)
}

// CreateDocument creates a new, empty document named `name` directly in
// this folder.
func (f *Folder) CreateDocument(name string) (*Document, error) {
	return createDocument(f.path, name)
}

// CreateSubfolder creates a folder named `name` inside this folder.
func (f *Folder) CreateSubfolder(name string) (*Folder, error) {
	dir := filepath.Join(f.path, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Folder{path: dir}, nil
}

// MoveTo moves this folder (and everything under it) to newPath. Folders
// have no metadata to re-validate, so the move is a plain rename.
func (f *Folder) MoveTo(newPath string) error {
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return err
	}
	if err := os.Rename(f.path, newPath); err != nil {
		return err
	}
	f.path = newPath
	return nil
}
