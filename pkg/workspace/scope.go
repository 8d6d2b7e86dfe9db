package workspace

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveScope walks the workspace from root, matching each document's
// path (relative to root, forward-slash separated) against pattern, and
// returns the matching documents. An empty pattern matches every document
// in the workspace; this is what search and chat's --scope flag resolves
// against before handing documents to a Job.
func (w *Workspace) ResolveScope(pattern string) ([]*Document, error) {
	return resolveScope(w.root, w.root, pattern)
}

// ResolveScope is the folder-rooted equivalent of Workspace.ResolveScope:
// patterns are still matched against paths relative to the workspace
// root, not the folder, so a scope pattern composes the same way
// regardless of which handle it's called on.
func (f *Folder) ResolveScope(workspaceRoot, pattern string) ([]*Document, error) {
	return resolveScope(workspaceRoot, f.path, pattern)
}

func resolveScope(workspaceRoot, dir, pattern string) ([]*Document, error) {
	var matched []*Document
	err := walkDirs(dir, func(d string) error {
		docs, err := listDocuments(d)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if pattern == "" {
				matched = append(matched, doc)
				continue
			}
			rel, err := filepath.Rel(workspaceRoot, doc.path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
