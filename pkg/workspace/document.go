package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Document is a logical unit identified by a {base}.markhor metadata file
// plus zero or more sibling content files sharing the same base. A
// Document value holds its absolute .markhor path and a cached copy of
// its parsed metadata; it is freely cloneable and holds no locks.
type Document struct {
	path   string // absolute path to the .markhor file
	base   string // base name, without directory and without ".markhor"
	cached *Metadata
}

// Dir returns the directory containing this document's .markhor file.
func (d *Document) Dir() string { return filepath.Dir(d.path) }

// Base returns the document's base name (stem of the .markhor filename).
func (d *Document) Base() string { return d.base }

// MetadataPath returns the absolute path of the .markhor file.
func (d *Document) MetadataPath() string { return d.path }

// ID returns the document's id, reading metadata first if it has not been
// cached yet.
func (d *Document) ID() (uuid.UUID, error) {
	if d.cached != nil {
		return d.cached.ID, nil
	}
	md, err := d.ReadMetadata()
	if err != nil {
		return uuid.Nil, err
	}
	return md.ID, nil
}

// ReadMetadata loads and caches the document's metadata from disk.
func (d *Document) ReadMetadata() (Metadata, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return Metadata{}, err
	}
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return Metadata{}, fmt.Errorf("%s: %w", d.path, err)
	}
	d.cached = &md
	return md, nil
}

// SaveMetadata serializes m and writes it back atop the .markhor file.
func (d *Document) SaveMetadata(m Metadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return err
	}
	d.cached = &m
	return nil
}

// WithMetadata implements the copy-on-write "metadata borrow" pattern: fn
// receives a pointer to a working copy of the metadata; it may mutate it
// freely. If fn returns without error and the working copy differs from
// what was loaded, the new metadata is persisted before WithMetadata
// returns.
func (d *Document) WithMetadata(fn func(*Metadata) error) error {
	before, err := d.ReadMetadata()
	if err != nil {
		return err
	}
	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return err
	}

	working := deepCopyMetadata(before)
	if err := fn(&working); err != nil {
		return err
	}

	afterJSON, err := json.Marshal(working)
	if err != nil {
		return err
	}
	if string(beforeJSON) == string(afterJSON) {
		return nil
	}
	return d.SaveMetadata(working)
}

// deepCopyMetadata copies m and every nested map so mutating the result
// can never alias the original (needed because FileMetadata.ExtensionData
// is itself a map).
func deepCopyMetadata(m Metadata) Metadata {
	out := m
	out.Files = make(map[string]FileMetadata, len(m.Files))
	for k, fm := range m.Files {
		fmCopy := fm
		fmCopy.ExtensionData = make(map[string]Payload, len(fm.ExtensionData))
		for pk, pv := range fm.ExtensionData {
			fmCopy.ExtensionData[pk] = pv
		}
		out.Files[k] = fmCopy
	}
	return out
}

// Files lists the sibling content files belonging to this document,
// excluding the .markhor file itself.
func (d *Document) Files() ([]string, error) {
	entries, err := os.ReadDir(d.Dir())
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isOwnedBy(e.Name(), d.base) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// FilesByExtension lists sibling content files whose final extension
// matches ext (case-insensitive, without the leading dot).
func (d *Document) FilesByExtension(ext string) ([]string, error) {
	files, err := d.Files()
	if err != nil {
		return nil, err
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	var matched []string
	for _, f := range files {
		if strings.ToLower(filepath.Ext(f)) == "."+ext {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// suffixOf returns the part of a content filename between the document's
// base and its final extension: "" for "base.ext", ".<hex>" for
// "base.<hex>.ext". Used by MoveTo to preserve each sibling's variant
// suffix at the destination.
func suffixOf(filename, base string) string {
	rest := strings.TrimPrefix(filename, base) // ".ext" or ".<hex>.ext"
	ext := filepath.Ext(rest)
	return strings.TrimSuffix(rest, ext)
}

// MoveTo moves the document's .markhor file and every sibling content
// file to newPath (a new .markhor path), re-checking R1-R4 at the
// destination first. Not atomic: if a rename fails partway through, the
// caller receives the first I/O error and the document is left split
// across the old and new locations.
func (d *Document) MoveTo(newPath string) error {
	newStem, ok := cutMarkhorSuffix(filepath.Base(newPath))
	if !ok {
		return ErrNotMarkhorFile
	}
	newDir := filepath.Dir(newPath)
	if newDir == newPath {
		return ErrNoParentDirectory
	}

	if err := checkConflicts(newDir, newStem); err != nil {
		return err
	}

	files, err := d.Files()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(newDir, 0o755); err != nil {
		return err
	}

	oldDir := d.Dir()
	if err := os.Rename(d.path, newPath); err != nil {
		return err
	}
	d.path = newPath

	for _, f := range files {
		suffix := suffixOf(f, d.base)
		ext := filepath.Ext(f)
		newName := newStem + suffix + ext
		if err := os.Rename(filepath.Join(oldDir, f), filepath.Join(newDir, newName)); err != nil {
			return err
		}
	}
	d.base = newStem
	return nil
}

// Delete removes the .markhor file and every sibling content file.
// Missing-file errors on siblings are swallowed (the file is already
// gone); the first other error is recorded but deletion continues for
// the rest.
func (d *Document) Delete() error {
	files, err := d.Files()
	if err != nil {
		return err
	}

	var firstErr error
	dir := d.Dir()
	for _, f := range files {
		if err := os.Remove(filepath.Join(dir, f)); err != nil && !errors.Is(err, os.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
