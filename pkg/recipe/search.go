// Package recipe collects the built-in Job recipes: search, chat, and the
// simple-RAG job that chains the two. Each recipe is a plain function
// returning a *job.Job, built the same way a caller would build their own.
package recipe

import (
	"context"
	"fmt"

	"github.com/dtrlanz/markhor-sub000/pkg/job"
	"github.com/dtrlanz/markhor-sub000/pkg/vectorstore"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// DocumentResult re-associates one document's grouped chunk results with
// the original *workspace.Document, so callers don't have to look it up
// by id themselves.
type DocumentResult struct {
	Document *workspace.Document
	Files    []vectorstore.FileResult
}

// SearchResults is the Search recipe's return value: one DocumentResult
// per document that had at least one surviving chunk, in the same order
// documents were added to the job.
type SearchResults struct {
	Documents []DocumentResult
}

// Search builds a Job that embeds query with the first available
// Embedder, chunks and indexes every asset document with the first
// available Chunker, and returns the grouped results of searching for it.
func Search(query string, limit int) *job.Job[SearchResults] {
	return job.New(func(ctx context.Context, assets *job.Assets) (SearchResults, error) {
		embedder, err := assets.FirstEmbedder()
		if err != nil {
			return SearchResults{}, err
		}
		chunker, err := assets.FirstChunker()
		if err != nil {
			return SearchResults{}, err
		}

		store := vectorstore.New(embedder)
		err = assets.ForEachDocument(ctx, func(ctx context.Context, doc *workspace.Document) error {
			return store.AddDocument(ctx, doc, chunker)
		})
		if err != nil {
			return SearchResults{}, err
		}

		queryEmbeddings, err := embedder.Embed(ctx, []string{query})
		if err != nil {
			return SearchResults{}, err
		}
		if len(queryEmbeddings) == 0 {
			return SearchResults{}, fmt.Errorf("embedder returned no vector for query")
		}

		grouped := store.Search(queryEmbeddings[0], limit)

		var results SearchResults
		for _, doc := range assets.Documents() {
			id, err := doc.ID()
			if err != nil {
				return SearchResults{}, err
			}
			dr, ok := grouped[id]
			if !ok {
				continue
			}
			results.Documents = append(results.Documents, DocumentResult{Document: doc, Files: dr.Files})
		}
		return results, nil
	})
}
