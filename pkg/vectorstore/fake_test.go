package vectorstore

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

// fakeEmbedder is a deterministic, hashed-bag-of-words embedder good
// enough to make cosine similarity track word overlap, plus a call
// counter so tests can assert on cache-hit behavior (spec scenario 5).
type fakeEmbedder struct {
	identity provider.Identity
	dims     int
	calls    int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		identity: provider.Identity{ExtensionURI: "test://fake", CapabilityID: "embedder", Name: "fake"},
		dims:     32,
	}
}

func (e *fakeEmbedder) Identity() provider.Identity { return e.identity }

func (e *fakeEmbedder) Embed(_ context.Context, texts []string) ([]embedding.Embedding, error) {
	e.calls++
	out := make([]embedding.Embedding, len(texts))
	for i, t := range texts {
		out[i] = embedFakeText(t, e.dims)
	}
	return out, nil
}

func (e *fakeEmbedder) Dimensions() int                   { return e.dims }
func (e *fakeEmbedder) ModelName() string                 { return "fake-embedder" }
func (e *fakeEmbedder) IntendedUseCase() provider.UseCase { return provider.UseCaseOther }
func (e *fakeEmbedder) MaxBatchSizeHint() int             { return 0 }
func (e *fakeEmbedder) MaxChunkLengthHint() int           { return 0 }

func embedFakeText(text string, dims int) embedding.Embedding {
	vec := make([]float32, dims)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		idx := int(h.Sum32() % uint32(dims))
		vec[idx]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return embedding.Embedding(vec)
}

// chunkerAdapter gives a bare chunk.Chunker-shaped value the Identity it
// needs to satisfy provider.Chunker, without duplicating chunking logic.
type chunkerAdapter struct {
	inner    chunk.Chunker
	identity provider.Identity
}

func (c chunkerAdapter) Identity() provider.Identity           { return c.identity }
func (c chunkerAdapter) Chunk(source string) []chunk.ChunkData { return c.inner.Chunk(source) }

func newTestChunker() provider.Chunker {
	return chunkerAdapter{
		inner:    chunk.NewMarkdownChunker(),
		identity: provider.Identity{ExtensionURI: "test://fake", CapabilityID: "chunker", Name: "markdown"},
	}
}
