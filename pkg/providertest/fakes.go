// Package providertest holds fake provider-trait implementations used to
// exercise pkg/extension and pkg/recipe end to end without any
// network calls.
package providertest

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

// Embedder is a deterministic hashed-bag-of-words embedder: cosine
// similarity between two embeddings tracks word overlap between their
// source texts well enough to drive realistic search-recall tests. Calls
// is a running count of Embed invocations, for cache-hit assertions.
type Embedder struct {
	NameID    string
	Dims      int
	BatchHint int
	Calls     int
}

// NewEmbedder builds an Embedder with a default identity and dimension.
func NewEmbedder(name string) *Embedder {
	return &Embedder{NameID: name, Dims: 32}
}

func (e *Embedder) Identity() provider.Identity {
	return provider.Identity{ExtensionURI: "test://providertest", CapabilityID: "embedder", Name: e.NameID}
}

func (e *Embedder) Dimensions() int                   { return e.Dims }
func (e *Embedder) ModelName() string                 { return e.NameID }
func (e *Embedder) IntendedUseCase() provider.UseCase { return provider.UseCaseOther }
func (e *Embedder) MaxBatchSizeHint() int             { return e.BatchHint }
func (e *Embedder) MaxChunkLengthHint() int           { return 0 }

func (e *Embedder) Embed(_ context.Context, texts []string) ([]embedding.Embedding, error) {
	e.Calls++
	out := make([]embedding.Embedding, len(texts))
	for i, t := range texts {
		out[i] = HashEmbedding(t, e.Dims)
	}
	return out, nil
}

// HashEmbedding turns text into a normalized hashed-bag-of-words vector of
// the given dimension. Exported so tests can build a query vector
// comparable to an Embedder's output without going through Embed.
func HashEmbedding(text string, dims int) embedding.Embedding {
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

// Chunker adapts any chunk.Chunker with an identity so it satisfies
// provider.Chunker.
type Chunker struct {
	Inner  chunk.Chunker
	NameID string
}

// NewMarkdownChunker builds a Chunker wrapping chunk.NewMarkdownChunker().
func NewMarkdownChunker() *Chunker {
	return &Chunker{Inner: chunk.NewMarkdownChunker(), NameID: "markdown"}
}

func (c *Chunker) Identity() provider.Identity {
	return provider.Identity{ExtensionURI: "test://providertest", CapabilityID: "chunker", Name: c.NameID}
}

func (c *Chunker) Chunk(source string) []chunk.ChunkData { return c.Inner.Chunk(source) }

// ChatApi replays a scripted sequence of responses, one per Generate
// call; calling it more times than scripted is a test bug and panics.
type ChatApi struct {
	NameID    string
	Responses []provider.ChatResponse
	calls     int
}

func (c *ChatApi) Identity() provider.Identity {
	return provider.Identity{ExtensionURI: "test://providertest", CapabilityID: "chat", Name: c.NameID}
}

func (c *ChatApi) ListModels(context.Context) ([]provider.ModelInfo, error) {
	return []provider.ModelInfo{{ID: c.NameID, DisplayName: c.NameID}}, nil
}

func (c *ChatApi) Generate(context.Context, []provider.Message, provider.ChatOptions) (provider.ChatResponse, error) {
	if c.calls >= len(c.Responses) {
		panic(fmt.Sprintf("providertest.ChatApi: Generate called more times (%d) than scripted (%d)", c.calls+1, len(c.Responses)))
	}
	resp := c.Responses[c.calls]
	c.calls++
	return resp, nil
}

func (c *ChatApi) GenerateStream(ctx context.Context, messages []provider.Message, options provider.ChatOptions) (<-chan provider.StreamChunk, error) {
	resp, err := c.Generate(ctx, messages, options)
	ch := make(chan provider.StreamChunk, 1)
	if err != nil {
		ch <- provider.StreamChunk{Err: err}
		close(ch)
		return ch, nil
	}
	ch <- provider.StreamChunk{Text: provider.Message{Parts: resp.ContentParts}.Text()}
	close(ch)
	return ch, nil
}

// Prompter replays a scripted sequence of inputs, then returns
// provider.ErrCanceled if Cancel is set, or panics otherwise.
type Prompter struct {
	NameID string
	Inputs []string
	Cancel bool
	calls  int
}

func (p *Prompter) Identity() provider.Identity {
	return provider.Identity{ExtensionURI: "test://providertest", CapabilityID: "prompter", Name: p.NameID}
}

func (p *Prompter) Prompt(_ context.Context, _ string) (string, error) {
	if p.calls < len(p.Inputs) {
		in := p.Inputs[p.calls]
		p.calls++
		return in, nil
	}
	if p.Cancel {
		return "", provider.ErrCanceled
	}
	panic("providertest.Prompter: Prompt called with no scripted input left and Cancel not set")
}

// Converter always succeeds, returning body as the converted output
// regardless of input, for exercising the conversion step of an import
// pipeline without a real format transform.
type Converter struct {
	NameID string
	Body   string
}

func (c *Converter) Identity() provider.Identity {
	return provider.Identity{ExtensionURI: "test://providertest", CapabilityID: "converter", Name: c.NameID}
}

func (c *Converter) Convert(_ context.Context, _ []byte, _, _ string) ([]io.Reader, error) {
	return []io.Reader{strings.NewReader(c.Body)}, nil
}
