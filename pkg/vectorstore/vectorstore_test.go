package vectorstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

func writeMarkdownDoc(t *testing.T, ws *workspace.Workspace, name, content string) *workspace.Document {
	t.Helper()
	doc, err := ws.CreateDocument(name)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(doc.Dir(), doc.Base()+".md"), []byte(content), 0o644))
	return doc
}

func TestAddDocumentIsIdempotent(t *testing.T) {
	ws, err := workspace.Create(t.TempDir())
	require.NoError(t, err)
	doc := writeMarkdownDoc(t, ws, "note", "# Title\n\nSome body text.\n")

	embedder := newFakeEmbedder()
	chunker := newTestChunker()
	store := New(embedder)

	require.NoError(t, store.AddDocument(context.Background(), doc, chunker))
	callsAfterFirst := embedder.calls

	require.NoError(t, store.AddDocument(context.Background(), doc, chunker))
	assert.Equal(t, callsAfterFirst, embedder.calls, "re-adding an already-indexed document must not re-embed")
	assert.Len(t, store.docOrder, 1)
}

func TestSearchOrderingRanksAndLimit(t *testing.T) {
	ws, err := workspace.Create(t.TempDir())
	require.NoError(t, err)

	docA := writeMarkdownDoc(t, ws, "alpha", "# Alpha\n\nThe first paragraph talks about cats and dogs.\n\nThe second paragraph talks about something unrelated entirely.\n")
	docB := writeMarkdownDoc(t, ws, "beta", "# Beta\n\nCats are wonderful animals that purr.\n")

	embedder := newFakeEmbedder()
	chunker := newTestChunker()
	store := New(embedder)
	require.NoError(t, store.AddDocument(context.Background(), docA, chunker))
	require.NoError(t, store.AddDocument(context.Background(), docB, chunker))

	query := embedFakeText("cats and dogs", embedder.dims)
	results := store.Search(query, 2)

	var allChunks []ChunkResult
	for _, dr := range results {
		for _, fr := range dr.Files {
			allChunks = append(allChunks, fr.Chunks...)
		}
	}

	assert.LessOrEqual(t, len(allChunks), 2)

	seenRanks := make(map[int]bool)
	for _, c := range allChunks {
		seenRanks[c.Rank] = true
	}
	for i := 0; i < len(allChunks); i++ {
		assert.True(t, seenRanks[i], "ranks must be a dense 0..count-1 range")
	}

	ranked := make([]ChunkResult, len(allChunks))
	for _, c := range allChunks {
		ranked[c.Rank] = c
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Similarity, ranked[i].Similarity, "similarity must be non-increasing by rank")
	}
	for _, c := range allChunks {
		assert.Greater(t, c.Similarity, 0.6)
	}
}

func TestCachedEmbeddingReuseSkipsReEmbedding(t *testing.T) {
	ws, err := workspace.Create(t.TempDir())
	require.NoError(t, err)
	doc := writeMarkdownDoc(t, ws, "note", "# Title\n\nOne paragraph of body text here.\n")

	embedder := newFakeEmbedder()
	chunker := newTestChunker()

	store1 := New(embedder)
	require.NoError(t, store1.AddDocument(context.Background(), doc, chunker))
	firstCalls := embedder.calls
	require.Greater(t, firstCalls, 0)

	var firstVec embedding.Embedding
	for _, de := range store1.docs {
		require.NotEmpty(t, de.Embeddings)
		firstVec = de.Embeddings[0]
	}

	// A second store built against the same on-disk document reuses the
	// embeddings persisted into its metadata instead of recomputing them.
	store2 := New(embedder)
	require.NoError(t, store2.AddDocument(context.Background(), doc, chunker))
	assert.Equal(t, firstCalls, embedder.calls, "second store must not trigger new Embed calls")

	for _, de := range store2.docs {
		if diff := cmp.Diff(firstVec, de.Embeddings[0], cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("cached embedding differs from freshly computed vector (-want +got):\n%s", diff)
		}
	}
}

func TestSearchRecallFindsMatchingParagraph(t *testing.T) {
	ws, err := workspace.Create(t.TempDir())
	require.NoError(t, err)

	docA := writeMarkdownDoc(t, ws, "one", "# Doc One\n\nThe first paragraph describes a quiet morning by the lake.\n\nA second paragraph discusses quarterly budget planning in detail.\n")
	docB := writeMarkdownDoc(t, ws, "two", "# Doc Two\n\nHere is a paragraph about shipping logistics and freight.\n\nAnother paragraph covers database indexing strategies.\n")

	embedder := newFakeEmbedder()
	chunker := newTestChunker()
	store := New(embedder)
	require.NoError(t, store.AddDocument(context.Background(), docA, chunker))
	require.NoError(t, store.AddDocument(context.Background(), docB, chunker))

	query := embedFakeText("first paragraph describes a quiet morning by the lake", embedder.dims)
	results := store.Search(query, 4)

	docAID, err := docA.ID()
	require.NoError(t, err)

	var top *ChunkResult
	topDocID := docAID
	for docID, dr := range results {
		for _, fr := range dr.Files {
			for i := range fr.Chunks {
				if top == nil || fr.Chunks[i].Rank < top.Rank {
					top = &fr.Chunks[i]
					topDocID = docID
				}
			}
		}
	}

	require.NotNil(t, top)
	assert.Equal(t, 0, top.Rank)
	assert.Greater(t, top.Similarity, 0.6)
	assert.Equal(t, docAID, topDocID, "top match should be the document containing the queried paragraph")

	fullText, err := os.ReadFile(filepath.Join(docA.Dir(), docA.Base()+".md"))
	require.NoError(t, err)
	assert.Contains(t, top.Chunk.Text(string(fullText)), "quiet morning by the lake")
}
