// Package vectorstore implements the per-job ephemeral index: it ingests
// documents by chunking their markdown files, obtaining embeddings
// (reusing any cached in document metadata, persisting newly computed
// ones), and answers cosine-similarity queries over the result.
package vectorstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// ChunkRef locates a chunk within a DocEmbeddings: which of the doc's
// indexed markdown files it came from, plus the chunk data itself.
type ChunkRef struct {
	FileIdx int
	Data    chunk.ChunkData
}

// DocEmbeddings holds one document's indexed chunks as parallel arrays,
// arena-style, rather than a list of heap-allocated chunk objects: this
// keeps similarity scans cache-friendly and deduplicates file names.
type DocEmbeddings struct {
	FileNames  []string
	Chunks     []ChunkRef
	Embeddings []embedding.Embedding
}

// Store is a per-job ephemeral index over a chosen Embedder's chunk
// embeddings for a set of documents.
type Store struct {
	embedder provider.Embedder
	docOrder []uuid.UUID
	docs     map[uuid.UUID]*DocEmbeddings
}

// New creates an empty store bound to embedder. Every document added to
// it is chunked and embedded (or reuses cached embeddings) using this
// embedder's identity as the metadata cache key.
func New(embedder provider.Embedder) *Store {
	return &Store{
		embedder: embedder,
		docs:     make(map[uuid.UUID]*DocEmbeddings),
	}
}

// AddDocument indexes doc's markdown files. Idempotent: if doc's id is
// already indexed, this is a no-op that returns success.
func (s *Store) AddDocument(ctx context.Context, doc *workspace.Document, chunker provider.Chunker) error {
	id, err := doc.ID()
	if err != nil {
		return err
	}
	if _, exists := s.docs[id]; exists {
		return nil
	}

	mdFiles, err := doc.FilesByExtension("md")
	if err != nil {
		return err
	}

	identity := s.embedder.Identity().String()
	de := &DocEmbeddings{}

	for _, fileName := range mdFiles {
		fileIdx := len(de.FileNames)
		de.FileNames = append(de.FileNames, fileName)

		records, err := s.chunksAndEmbeddingsFor(ctx, doc, fileName, identity, chunker)
		if err != nil {
			return err
		}

		for _, rec := range records {
			de.Chunks = append(de.Chunks, ChunkRef{FileIdx: fileIdx, Data: rec.Chunk})
			de.Embeddings = append(de.Embeddings, rec.Embedding)
		}
	}

	s.docs[id] = de
	s.docOrder = append(s.docOrder, id)
	return nil
}

// chunksAndEmbeddingsFor reuses cached embeddings for fileName under
// identity if present; otherwise it chunks and embeds the file's content
// and persists the result back into the document's metadata, via the
// copy-on-write WithMetadata borrow.
func (s *Store) chunksAndEmbeddingsFor(ctx context.Context, doc *workspace.Document, fileName, identity string, chunker provider.Chunker) ([]workspace.EmbeddingRecord, error) {
	var records []workspace.EmbeddingRecord

	err := doc.WithMetadata(func(md *workspace.Metadata) error {
		fm := md.FileMeta(fileName)
		if cached, ok := fm.EmbeddingsFor(identity); ok {
			records = cached
			return nil
		}

		content, err := os.ReadFile(filepath.Join(doc.Dir(), fileName))
		if err != nil {
			return err
		}
		text := string(content)

		ranges := chunker.Chunk(text)
		if len(ranges) == 0 {
			return nil
		}

		texts := make([]string, len(ranges))
		for i, r := range ranges {
			texts[i] = r.Text(text)
		}

		embeddings, err := embedBatched(ctx, s.embedder, texts)
		if err != nil {
			return err
		}

		records = make([]workspace.EmbeddingRecord, len(ranges))
		for i := range ranges {
			records[i] = workspace.EmbeddingRecord{Embedding: embeddings[i], Chunk: ranges[i]}
		}

		fm.SetEmbeddingsFor(identity, records)
		md.SetFileMeta(fileName, fm)
		return nil
	})

	return records, err
}

// embedBatched calls embedder.Embed, splitting texts into concurrent
// batches that respect MaxBatchSizeHint when the embedder advertises one.
func embedBatched(ctx context.Context, embedder provider.Embedder, texts []string) ([]embedding.Embedding, error) {
	hint := embedder.MaxBatchSizeHint()
	if hint <= 0 || len(texts) <= hint {
		return embedder.Embed(ctx, texts)
	}

	var batches [][]string
	for i := 0; i < len(texts); i += hint {
		end := min(i+hint, len(texts))
		batches = append(batches, texts[i:end])
	}

	results := make([][]embedding.Embedding, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			res, err := embedder.Embed(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []embedding.Embedding
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
