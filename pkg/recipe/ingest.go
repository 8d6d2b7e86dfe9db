package recipe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/job"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// documentCreator is satisfied by *workspace.Workspace and
// *workspace.Folder: whichever scope new documents are imported into.
type documentCreator interface {
	CreateDocument(name string) (*workspace.Document, error)
}

// Ingest builds a Job that imports each of sourcePaths into dest as a new
// document: the source file is written in as the document's first
// content file, and, if a registered Converter understands its mime
// type, the converted output is written alongside as a .md sibling,
// which is what the vector store indexes later. A source with no
// available converter is still imported, just without a .md sibling.
func Ingest(dest documentCreator, sourcePaths []string) *job.Job[[]*workspace.Document] {
	return job.New(func(ctx context.Context, assets *job.Assets) ([]*workspace.Document, error) {
		var docs []*workspace.Document
		for _, src := range sourcePaths {
			doc, err := ingestOne(ctx, assets, dest, src, false)
			if err != nil {
				return docs, err
			}
			docs = append(docs, doc)
		}
		return docs, nil
	})
}

// IngestWatch builds a Job like Ingest, but keeps running after the initial
// batch: it watches dest's directory tree and imports each new regular
// file dropped into it through the same single-file path ingestOne uses,
// until ctx is cancelled. Created .markhor and .md files, and paths it has
// already imported or written itself, are not imported. onImported, if
// non-nil, is called for every document as it's imported, including the
// initial batch.
func IngestWatch(dest *workspace.Workspace, sourcePaths []string, onImported func(*workspace.Document)) *job.Job[[]*workspace.Document] {
	return job.New(func(ctx context.Context, assets *job.Assets) ([]*workspace.Document, error) {
		var docs []*workspace.Document
		seen := make(map[string]bool, len(sourcePaths))
		markOutputs := func(doc *workspace.Document) {
			files, err := doc.Files()
			if err != nil {
				return
			}
			for _, f := range files {
				seen[filepath.Join(doc.Dir(), f)] = true
			}
		}
		for _, src := range sourcePaths {
			doc, err := ingestOne(ctx, assets, dest, src, false)
			if err != nil {
				return docs, err
			}
			seen[src] = true
			markOutputs(doc)
			docs = append(docs, doc)
			if onImported != nil {
				onImported(doc)
			}
		}

		events, err := dest.Watch(ctx)
		if err != nil {
			return docs, err
		}

		for {
			select {
			case <-ctx.Done():
				return docs, nil
			case ev, ok := <-events:
				if !ok {
					return docs, nil
				}
				if ev.Op&fsnotify.Create == 0 || seen[ev.Path] {
					continue
				}
				if info, err := os.Stat(ev.Path); err != nil || info.IsDir() {
					continue
				}
				if strings.HasSuffix(ev.Path, ".markhor") || strings.HasSuffix(ev.Path, ".md") {
					continue
				}
				seen[ev.Path] = true

				// A file dropped inside the workspace becomes the new
				// document's content; the original is consumed so the
				// conflict scan doesn't see it as an adoption candidate.
				doc, err := ingestOne(ctx, assets, dest, ev.Path, true)
				if err != nil {
					slog.Warn("ingest: failed to import watched file", "path", ev.Path, "error", err)
					continue
				}
				markOutputs(doc)
				docs = append(docs, doc)
				if onImported != nil {
					onImported(doc)
				}
			}
		}
	})
}

// ingestOne imports one source file as a new document in dest. With
// consumeSource set, the source is removed before the document is created;
// this is how watch-imported files already inside the destination tree
// avoid tripping the adoption rule against themselves. On a create
// failure the consumed source is written back.
func ingestOne(ctx context.Context, assets *job.Assets, dest documentCreator, src string, consumeSource bool) (*workspace.Document, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if consumeSource {
		if err := os.Remove(src); err != nil {
			return nil, err
		}
	}
	doc, err := dest.CreateDocument(base)
	if err != nil {
		if consumeSource {
			_ = os.WriteFile(src, content, 0o644)
		}
		return nil, err
	}

	ext := strings.TrimPrefix(filepath.Ext(src), ".")
	if ext == "" {
		ext = "bin"
	}
	contentPath := filepath.Join(doc.Dir(), doc.Base()+"."+ext)
	if err := os.WriteFile(contentPath, content, 0o644); err != nil {
		return doc, err
	}

	inputMime := mime.TypeByExtension(filepath.Ext(src))
	if inputMime == "" {
		inputMime = "application/octet-stream"
	}

	readers, err := assets.Convert(ctx, content, inputMime, "text/markdown")
	if err != nil {
		if errors.Is(err, extension.ErrConverterNotAvailable) {
			return doc, nil
		}
		return doc, err
	}

	mdPath := filepath.Join(doc.Dir(), doc.Base()+".md")
	f, err := os.Create(mdPath)
	if err != nil {
		return doc, err
	}
	defer f.Close()

	for _, r := range readers {
		if _, err := io.Copy(f, r); err != nil {
			return doc, err
		}
	}
	return doc, nil
}
