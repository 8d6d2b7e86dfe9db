package provider

import (
	"errors"
	"fmt"
)

// ChatErrorKind classifies a ChatApi failure for callers that need to
// decide on retry/backoff without parsing message text.
type ChatErrorKind string

const (
	ChatNetwork          ChatErrorKind = "network"
	ChatAuthentication   ChatErrorKind = "authentication"
	ChatAPI              ChatErrorKind = "api"
	ChatInvalidRequest   ChatErrorKind = "invalid_request"
	ChatRateLimited      ChatErrorKind = "rate_limited"
	ChatModelNotFound    ChatErrorKind = "model_not_found"
	ChatContentModerated ChatErrorKind = "content_moderated"
	ChatParsing          ChatErrorKind = "parsing"
	ChatStreaming        ChatErrorKind = "streaming"
	ChatNotSupported     ChatErrorKind = "not_supported"
	ChatConfiguration    ChatErrorKind = "configuration"
	ChatToolUseError     ChatErrorKind = "tool_use_error"
	ChatCancelled        ChatErrorKind = "cancelled"
	ChatProvider         ChatErrorKind = "provider"
)

// ChatError wraps a ChatApi failure with its classification. RateLimited
// and transient Network errors are retry candidates, but the core never
// retries on its own; that decision belongs to the caller.
type ChatError struct {
	Kind ChatErrorKind
	Err  error
}

func (e *ChatError) Error() string {
	return fmt.Sprintf("chat: %s: %v", e.Kind, e.Err)
}

func (e *ChatError) Unwrap() error { return e.Err }

// NewChatError builds a classified ChatError.
func NewChatError(kind ChatErrorKind, err error) *ChatError {
	return &ChatError{Kind: kind, Err: err}
}

// EmbeddingErrorKind classifies an Embedder failure.
type EmbeddingErrorKind string

const (
	EmbeddingNetwork        EmbeddingErrorKind = "network"
	EmbeddingAuthentication EmbeddingErrorKind = "authentication"
	EmbeddingAPI            EmbeddingErrorKind = "api"
	EmbeddingInvalidRequest EmbeddingErrorKind = "invalid_request"
	EmbeddingRateLimited    EmbeddingErrorKind = "rate_limited"
	EmbeddingModelNotFound  EmbeddingErrorKind = "model_not_found"
	EmbeddingParsing        EmbeddingErrorKind = "parsing"
	EmbeddingInputTooLong   EmbeddingErrorKind = "input_too_long"
	EmbeddingBatchTooLarge  EmbeddingErrorKind = "batch_too_large"
	EmbeddingConfiguration  EmbeddingErrorKind = "configuration"
	EmbeddingModelLoadError EmbeddingErrorKind = "model_load_error"
	EmbeddingCancelled      EmbeddingErrorKind = "cancelled"
	EmbeddingProvider       EmbeddingErrorKind = "provider"
)

// EmbeddingError wraps an Embedder failure with its classification.
type EmbeddingError struct {
	Kind EmbeddingErrorKind
	Err  error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding: %s: %v", e.Kind, e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// NewEmbeddingError builds a classified EmbeddingError.
func NewEmbeddingError(kind EmbeddingErrorKind, err error) *EmbeddingError {
	return &EmbeddingError{Kind: kind, Err: err}
}

// PrompterErrorKind classifies a Prompter failure.
type PrompterErrorKind string

const (
	PrompterIO                  PrompterErrorKind = "io"
	PrompterAsync               PrompterErrorKind = "async"
	PrompterFeatureNotSupported PrompterErrorKind = "feature_not_supported"
)

// ErrCanceled is returned by Prompter.Prompt when the user cancels the
// interaction (e.g. Ctrl-C, closed input stream). The chat recipe treats
// this as a graceful end to the conversation, not a failure.
var ErrCanceled = errors.New("prompt canceled")

// PrompterError wraps a non-cancellation Prompter failure with its
// classification.
type PrompterError struct {
	Kind PrompterErrorKind
	Err  error
}

func (e *PrompterError) Error() string {
	return fmt.Sprintf("prompter: %s: %v", e.Kind, e.Err)
}

func (e *PrompterError) Unwrap() error { return e.Err }

// NewPrompterError builds a classified PrompterError.
func NewPrompterError(kind PrompterErrorKind, err error) *PrompterError {
	return &PrompterError{Kind: kind, Err: err}
}
