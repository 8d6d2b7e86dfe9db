package provider

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupportedMimeType signals that a converter cannot handle the given
// output mime type. This is not a terminal failure: callers iterating
// candidate converters treat it as "try the next one".
var ErrUnsupportedMimeType = errors.New("unsupported mime type")

// Converter turns input content into one or more readers of a target mime
// type (e.g. a PDF-to-markdown OCR pipeline). Input is passed as bytes
// (rather than a stream) because a failed candidate's ErrUnsupportedMimeType
// means the same content must be retried against the next converter.
type Converter interface {
	Identified

	Convert(ctx context.Context, input []byte, inputMime, outputMime string) ([]io.Reader, error)
}
