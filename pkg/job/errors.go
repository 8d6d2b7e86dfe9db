package job

import (
	"errors"
	"fmt"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

// RunJobErrorKind tags a RunJobError by which subsystem produced it.
type RunJobErrorKind int

const (
	RunJobExtension RunJobErrorKind = iota + 1
	RunJobChat
	RunJobEmbedding
	RunJobConversion
	RunJobPrompt
	RunJobOther
)

func (k RunJobErrorKind) String() string {
	switch k {
	case RunJobExtension:
		return "Extension"
	case RunJobChat:
		return "Chat"
	case RunJobEmbedding:
		return "Embedding"
	case RunJobConversion:
		return "Conversion"
	case RunJobPrompt:
		return "Prompt"
	case RunJobOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// RunJobError is the error type returned from Job.Run: every per-subsystem
// error (extension selection, chat, embedding, conversion, prompting) is
// fused into this at the Job boundary.
type RunJobError struct {
	Kind RunJobErrorKind
	Err  error
}

func (e *RunJobError) Error() string {
	return fmt.Sprintf("run job: %s: %v", e.Kind, e.Err)
}

func (e *RunJobError) Unwrap() error { return e.Err }

// classify wraps err in a RunJobError, inferring the kind from the
// concrete error type. Errors already classified pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var already *RunJobError
	if errors.As(err, &already) {
		return err
	}

	switch {
	case errors.Is(err, extension.ErrChatModelNotAvailable),
		errors.Is(err, extension.ErrEmbeddingModelNotAvailable),
		errors.Is(err, extension.ErrChunkerNotAvailable),
		errors.Is(err, extension.ErrConverterNotAvailable),
		errors.Is(err, extension.ErrToolNotAvailable),
		errors.Is(err, extension.ErrPrompterNotAvailable):
		return &RunJobError{Kind: RunJobExtension, Err: err}
	}

	var chatErr *provider.ChatError
	if errors.As(err, &chatErr) {
		return &RunJobError{Kind: RunJobChat, Err: err}
	}

	var embErr *provider.EmbeddingError
	if errors.As(err, &embErr) {
		return &RunJobError{Kind: RunJobEmbedding, Err: err}
	}

	if errors.Is(err, provider.ErrUnsupportedMimeType) {
		return &RunJobError{Kind: RunJobConversion, Err: err}
	}

	var promptErr *provider.PrompterError
	if errors.As(err, &promptErr) || errors.Is(err, provider.ErrCanceled) {
		return &RunJobError{Kind: RunJobPrompt, Err: err}
	}

	return &RunJobError{Kind: RunJobOther, Err: err}
}
