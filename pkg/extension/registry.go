package extension

import (
	"context"
	"errors"
	"io"

	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

// Registry is an ordered set of ActiveExtensions. Selection queries iterate
// it in registration order and return the first matching instance, or
// collect every hit where the caller wants choice.
type Registry []ActiveExtension

// ChatModel returns the first ChatApi found (in registration order) if
// modelID is empty, or the first ChatApi whose ListModels includes
// modelID.
func (r Registry) ChatModel(ctx context.Context, modelID string) (provider.ChatApi, error) {
	if modelID == "" {
		for _, ext := range r {
			if providers := ext.ChatProviders(); len(providers) > 0 {
				return providers[0], nil
			}
		}
		return nil, ErrChatModelNotAvailable
	}

	for _, ext := range r {
		for _, p := range ext.ChatProviders() {
			models, err := p.ListModels(ctx)
			if err != nil {
				continue
			}
			for _, m := range models {
				if m.ID == modelID {
					return p, nil
				}
			}
		}
	}
	return nil, ErrChatModelNotAvailable
}

// FirstEmbedder returns the first Embedder found in registration order.
func (r Registry) FirstEmbedder() (provider.Embedder, error) {
	for _, ext := range r {
		if es := ext.Embedders(); len(es) > 0 {
			return es[0], nil
		}
	}
	return nil, ErrEmbeddingModelNotAvailable
}

// Embedders returns every Embedder across every registered extension.
func (r Registry) Embedders() []provider.Embedder {
	var out []provider.Embedder
	for _, ext := range r {
		out = append(out, ext.Embedders()...)
	}
	return out
}

// FirstChunker returns the first Chunker found in registration order.
func (r Registry) FirstChunker() (provider.Chunker, error) {
	for _, ext := range r {
		if cs := ext.Chunkers(); len(cs) > 0 {
			return cs[0], nil
		}
	}
	return nil, ErrChunkerNotAvailable
}

// Chunkers returns every Chunker across every registered extension.
func (r Registry) Chunkers() []provider.Chunker {
	var out []provider.Chunker
	for _, ext := range r {
		out = append(out, ext.Chunkers()...)
	}
	return out
}

// FirstPrompter returns the first Prompter found in registration order.
func (r Registry) FirstPrompter() (provider.Prompter, error) {
	for _, ext := range r {
		if ps := ext.Prompters(); len(ps) > 0 {
			return ps[0], nil
		}
	}
	return nil, ErrPrompterNotAvailable
}

// Prompters returns every Prompter across every registered extension.
func (r Registry) Prompters() []provider.Prompter {
	var out []provider.Prompter
	for _, ext := range r {
		out = append(out, ext.Prompters()...)
	}
	return out
}

// Convert tries every registered Converter in order. ErrUnsupportedMimeType
// from a candidate means "try the next one"; the first success wins and
// the first other error aborts the whole lookup.
func (r Registry) Convert(ctx context.Context, input []byte, inputMime, outputMime string) ([]io.Reader, error) {
	for _, ext := range r {
		for _, c := range ext.Converters() {
			readers, err := c.Convert(ctx, input, inputMime, outputMime)
			if err == nil {
				return readers, nil
			}
			if errors.Is(err, provider.ErrUnsupportedMimeType) {
				continue
			}
			return nil, err
		}
	}
	return nil, ErrConverterNotAvailable
}
