package job

import (
	"fmt"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// AssetItem is a late-arriving asset pushed through the Job's channel.
// Exactly one field is set.
type AssetItem struct {
	Document  *workspace.Document
	Folder    *workspace.Folder
	Extension *extension.ActiveExtension
}

// SendError reports that a send on the asset channel failed because the
// owning Job's run has already finished (the receiver is gone). It
// recovers the asset that could not be delivered so the caller can decide
// what to do with it instead of losing it silently.
type SendError struct {
	Item AssetItem
}

func (e *SendError) Error() string {
	return fmt.Sprintf("asset channel closed: %s not delivered", describe(e.Item))
}

// Recover returns the asset that failed to send.
func (e *SendError) Recover() AssetItem { return e.Item }

func describe(item AssetItem) string {
	switch {
	case item.Document != nil:
		return "document " + item.Document.Base()
	case item.Folder != nil:
		return "folder " + item.Folder.Name()
	case item.Extension != nil:
		return "extension " + item.Extension.URI()
	default:
		return "asset"
	}
}

// Sender is a clonable handle for pushing assets into a running Job after
// it has started. It is MPSC: many Senders, one Job consumer.
type Sender struct {
	ch     chan<- AssetItem
	stopCh <-chan struct{}
}

// SendDocument pushes a document into the owning Job's Assets. Returns a
// *SendError recovering doc if the Job has already finished running.
func (s Sender) SendDocument(doc *workspace.Document) error {
	return s.send(AssetItem{Document: doc})
}

// SendFolder pushes a folder into the owning Job's Assets.
func (s Sender) SendFolder(f *workspace.Folder) error {
	return s.send(AssetItem{Folder: f})
}

// SendExtension pushes an extension into the owning Job's Assets.
func (s Sender) SendExtension(ext extension.ActiveExtension) error {
	return s.send(AssetItem{Extension: &ext})
}

func (s Sender) send(item AssetItem) error {
	// Check stopCh first (non-blocking): once the owning Job has finished
	// running, a send must fail deterministically rather than racing to
	// land in an unread buffer.
	select {
	case <-s.stopCh:
		return &SendError{Item: item}
	default:
	}

	select {
	case s.ch <- item:
		return nil
	case <-s.stopCh:
		return &SendError{Item: item}
	}
}
