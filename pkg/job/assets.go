// Package job implements the Job orchestrator: a composable asynchronous
// unit of work that wraps a callback plus a mutable Assets bag (documents,
// folders, extensions), with chaining and a channel for assets pushed in
// after the job has started.
package job

import (
	"context"
	"io"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// Assets is the mutable bag of documents, folders, and extensions a job's
// callback sees. It is not safe for concurrent mutation; a Job's callback
// runs to completion before the next chained callback sees updates.
type Assets struct {
	documents  []*workspace.Document
	folders    []*workspace.Folder
	extensions extension.Registry
	receiver   <-chan AssetItem
}

// Documents returns the documents currently in the bag.
func (a *Assets) Documents() []*workspace.Document { return a.documents }

// Folders returns the folders currently in the bag.
func (a *Assets) Folders() []*workspace.Folder { return a.folders }

// Extensions returns the registered extensions, in registration order.
func (a *Assets) Extensions() extension.Registry { return a.extensions }

// Refresh drains the asset channel non-blockingly, appending each pending
// item into the corresponding list. Job.Run calls this once before
// invoking the callback; callbacks may call it again to pick up items
// pushed in after they started.
func (a *Assets) Refresh() {
	if a.receiver == nil {
		return
	}
	for {
		select {
		case item, ok := <-a.receiver:
			if !ok {
				return
			}
			switch {
			case item.Document != nil:
				a.documents = append(a.documents, item.Document)
			case item.Folder != nil:
				a.folders = append(a.folders, item.Folder)
			case item.Extension != nil:
				a.extensions = append(a.extensions, *item.Extension)
			}
		default:
			return
		}
	}
}

// Convert iterates the registered converters, trying each in turn; the
// first success wins and the first non-UnsupportedMimeType error aborts.
func (a *Assets) Convert(ctx context.Context, input []byte, inputMime, outputMime string) ([]io.Reader, error) {
	return a.extensions.Convert(ctx, input, inputMime, outputMime)
}

// ChatModel selects a ChatApi, optionally filtered by model id (empty
// string means "first available").
func (a *Assets) ChatModel(ctx context.Context, modelID string) (provider.ChatApi, error) {
	return a.extensions.ChatModel(ctx, modelID)
}

// FirstEmbedder returns the first registered Embedder.
func (a *Assets) FirstEmbedder() (provider.Embedder, error) {
	return a.extensions.FirstEmbedder()
}

// Embedders returns every registered Embedder.
func (a *Assets) Embedders() []provider.Embedder {
	return a.extensions.Embedders()
}

// FirstChunker returns the first registered Chunker.
func (a *Assets) FirstChunker() (provider.Chunker, error) {
	return a.extensions.FirstChunker()
}

// Chunkers returns every registered Chunker.
func (a *Assets) Chunkers() []provider.Chunker {
	return a.extensions.Chunkers()
}

// FirstPrompter returns the first registered Prompter.
func (a *Assets) FirstPrompter() (provider.Prompter, error) {
	return a.extensions.FirstPrompter()
}

// Prompters returns every registered Prompter.
func (a *Assets) Prompters() []provider.Prompter {
	return a.extensions.Prompters()
}

// ForEachDocument runs fn over every document currently in the bag, in
// order, stopping at the first error. Recipes that need to run a
// conversion or embedding step across a batch of newly added documents
// (e.g. an import pipeline) use this instead of hand-rolling the loop.
func (a *Assets) ForEachDocument(ctx context.Context, fn func(ctx context.Context, doc *workspace.Document) error) error {
	for _, doc := range a.documents {
		if err := fn(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
