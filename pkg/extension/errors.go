package extension

import "errors"

// Selection errors: returned when a capability query against a Registry
// comes up empty. These abort the recipe that needed the capability.
var (
	ErrChatModelNotAvailable      = errors.New("no chat model available")
	ErrEmbeddingModelNotAvailable = errors.New("no embedding model available")
	ErrChunkerNotAvailable        = errors.New("no chunker available")
	ErrConverterNotAvailable      = errors.New("no converter available")
	ErrToolNotAvailable           = errors.New("tool not available")
	ErrPrompterNotAvailable       = errors.New("no prompter available")
)
