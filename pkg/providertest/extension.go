package providertest

import "github.com/dtrlanz/markhor-sub000/pkg/provider"

// Extension is a plain struct satisfying extension.Extension by returning
// whatever capability slices the test assembled, with no registry-side
// logic of its own.
type Extension struct {
	ExtURI     string
	ExtName    string
	Chats      []provider.ChatApi
	EmbedderS  []provider.Embedder
	ChunkerS   []provider.Chunker
	ConverterS []provider.Converter
	PrompterS  []provider.Prompter
}

func (e *Extension) URI() string  { return e.ExtURI }
func (e *Extension) Name() string { return e.ExtName }

func (e *Extension) ChatProviders() []provider.ChatApi { return e.Chats }
func (e *Extension) Embedders() []provider.Embedder    { return e.EmbedderS }
func (e *Extension) Chunkers() []provider.Chunker      { return e.ChunkerS }
func (e *Extension) Converters() []provider.Converter  { return e.ConverterS }
func (e *Extension) Prompters() []provider.Prompter    { return e.PrompterS }
