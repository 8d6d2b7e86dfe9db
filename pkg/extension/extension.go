// Package extension defines the registered-bundle abstraction that exposes
// heterogeneous provider capabilities (chat, embedding, chunking,
// conversion, prompting) from plug-in "extensions," and the selection
// queries used to pick one for a unit of work.
package extension

import "github.com/dtrlanz/markhor-sub000/pkg/provider"

// Extension is a named, URI-identified bundle of capability instances.
type Extension interface {
	URI() string
	Name() string

	ChatProviders() []provider.ChatApi
	Embedders() []provider.Embedder
	Chunkers() []provider.Chunker
	Converters() []provider.Converter
	Prompters() []provider.Prompter
}

// ActiveExtension is a cheap, shared handle onto a registered Extension.
// It is freely clonable: cloning copies the handle, not the underlying
// extension, so multiple Jobs can register the same extension.
type ActiveExtension struct {
	ext Extension
}

// New wraps an Extension as an ActiveExtension handle.
func New(ext Extension) ActiveExtension {
	return ActiveExtension{ext: ext}
}

// URI returns the extension's stable identity.
func (a ActiveExtension) URI() string {
	if a.ext == nil {
		return ""
	}
	return a.ext.URI()
}

// Name returns the extension's display name.
func (a ActiveExtension) Name() string {
	if a.ext == nil {
		return ""
	}
	return a.ext.Name()
}

// ChatProviders returns the chat capabilities this extension exposes.
func (a ActiveExtension) ChatProviders() []provider.ChatApi {
	if a.ext == nil {
		return nil
	}
	return a.ext.ChatProviders()
}

// Embedders returns the embedding capabilities this extension exposes.
func (a ActiveExtension) Embedders() []provider.Embedder {
	if a.ext == nil {
		return nil
	}
	return a.ext.Embedders()
}

// Chunkers returns the chunking capabilities this extension exposes.
func (a ActiveExtension) Chunkers() []provider.Chunker {
	if a.ext == nil {
		return nil
	}
	return a.ext.Chunkers()
}

// Converters returns the conversion capabilities this extension exposes.
func (a ActiveExtension) Converters() []provider.Converter {
	if a.ext == nil {
		return nil
	}
	return a.ext.Converters()
}

// Prompters returns the prompting capabilities this extension exposes.
func (a ActiveExtension) Prompters() []provider.Prompter {
	if a.ext == nil {
		return nil
	}
	return a.ext.Prompters()
}
