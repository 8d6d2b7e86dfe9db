// Package workspace implements the on-disk storage model: workspaces,
// folders, and content-addressed documents, with the conflict rules that
// keep sibling content files unambiguously owned by exactly one document.
package workspace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const configDirName = ".markhor"
const configFileName = "config.json"

// configFile is the deserialized form of .markhor/config.json.
type configFile struct {
	ID      uuid.UUID `json:"id"`
	Version uint32    `json:"version"`
}

const currentConfigVersion = 1

// Workspace is an absolute directory annotated with a .markhor/config.json
// sidecar. It has no in-memory state beyond its root path and config; all
// listing operations re-read the directory from disk.
type Workspace struct {
	root   string
	config configFile
}

// Open validates that path and its .markhor subdirectory exist and that
// the config file deserializes, returning a Workspace bound to it.
func Open(path string) (*Workspace, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotAWorkspace)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}

	cfgPath := filepath.Join(path, configDirName, configFileName)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotAWorkspace)
		}
		return nil, err
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, ErrInvalidWorkspaceConfig)
	}
	if cfg.ID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, ErrInvalidWorkspaceConfig)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Workspace{root: abs, config: cfg}, nil
}

// Create initializes a new workspace at path. path must either not exist
// yet or be an empty directory.
func Create(path string) (*Workspace, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("%s: %w", path, ErrPathIsFile)
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrWorkspaceCreationConflict)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(abs, configDirName), 0o755); err != nil {
		return nil, err
	}

	cfg := configFile{ID: uuid.New(), Version: currentConfigVersion}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	cfgPath := filepath.Join(abs, configDirName, configFileName)
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return nil, err
	}

	return &Workspace{root: abs, config: cfg}, nil
}

// Root returns the workspace's absolute directory path.
func (w *Workspace) Root() string { return w.root }

// ID returns the workspace's stable identifier.
func (w *Workspace) ID() uuid.UUID { return w.config.ID }

// ListFolders enumerates the immediate subdirectories of the workspace
// root, excluding .markhor.
func (w *Workspace) ListFolders() ([]*Folder, error) {
	return listFolders(w.root)
}

// ListDocuments enumerates the documents whose .markhor files live
// directly in the workspace root.
func (w *Workspace) ListDocuments() ([]*Document, error) {
	return listDocuments(w.root)
}

// CreateDocument creates a new, empty document named `name` directly in
// the workspace root.
func (w *Workspace) CreateDocument(name string) (*Document, error) {
	return createDocument(w.root, name)
}

// CreateSubfolder creates a folder named `name` directly in the workspace
// root and returns a handle to it.
func (w *Workspace) CreateSubfolder(name string) (*Folder, error) {
	dir := filepath.Join(w.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Folder{path: dir}, nil
}

func listFolders(dir string) ([]*Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var folders []*Folder
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if e.Name() == configDirName {
			continue
		}
		folders = append(folders, &Folder{path: filepath.Join(dir, e.Name())})
	}
	return folders, nil
}

func listDocuments(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []*Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stem, isMarkhor := cutMarkhorSuffix(e.Name())
		if !isMarkhor {
			continue
		}
		if _, _, _, ok := parseBasename(stem); !ok {
			slog.Warn("workspace: skipping malformed document name", "file", e.Name())
			continue
		}
		doc := &Document{path: filepath.Join(dir, e.Name()), base: stem}
		if _, err := doc.ReadMetadata(); err != nil {
			slog.Warn("workspace: skipping document with invalid metadata", "file", e.Name(), "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func createDocument(dir, name string) (*Document, error) {
	if err := checkConflicts(dir, name); err != nil {
		return nil, err
	}
	md := NewMetadata()
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name+".markhor")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	return &Document{path: path, base: name, cached: &md}, nil
}

func cutMarkhorSuffix(name string) (stem string, ok bool) {
	const suffix = ".markhor"
	if len(name) <= len(suffix) || name[len(name)-len(suffix):] != suffix {
		return "", false
	}
	return name[:len(name)-len(suffix)], true
}
