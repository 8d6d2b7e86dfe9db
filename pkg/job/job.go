package job

import (
	"context"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// assetChannelCapacity bounds the buffered asset channel. Senders block
// once the buffer fills until the owning job's next Refresh drains it.
const assetChannelCapacity = 64

// Job is a generic asynchronous unit of work: a callback plus the mutable
// Assets bag it runs against. The zero value is not usable; construct
// with New.
type Job[T any] struct {
	callback func(ctx context.Context, assets *Assets) (T, error)
	assets   Assets
	ch       chan AssetItem
	stopCh   chan struct{}
}

// New wraps callback as a Job with an empty Assets bag.
func New[T any](callback func(ctx context.Context, assets *Assets) (T, error)) *Job[T] {
	return &Job[T]{callback: callback}
}

// AddDocument registers a document into the job's Assets before Run.
func (j *Job[T]) AddDocument(d *workspace.Document) *Job[T] {
	j.assets.documents = append(j.assets.documents, d)
	return j
}

// AddFolder registers a folder into the job's Assets before Run.
func (j *Job[T]) AddFolder(f *workspace.Folder) *Job[T] {
	j.assets.folders = append(j.assets.folders, f)
	return j
}

// AddExtension registers an extension into the job's Assets before Run.
func (j *Job[T]) AddExtension(ext extension.ActiveExtension) *Job[T] {
	j.assets.extensions = append(j.assets.extensions, ext)
	return j
}

// AssetSender lazily creates the job's asset channel and returns a
// clonable Sender for it. Call this before Run to guarantee the first
// Refresh (which Run performs before invoking the callback) can observe
// anything sent beforehand; items sent after Run starts are only visible
// once the callback calls Assets.Refresh again.
func (j *Job[T]) AssetSender() Sender {
	if j.ch == nil {
		j.ch = make(chan AssetItem, assetChannelCapacity)
		j.stopCh = make(chan struct{})
		j.assets.receiver = j.ch
	}
	return Sender{ch: j.ch, stopCh: j.stopCh}
}

// Run drains any assets pushed before this call, invokes the callback,
// and returns its result with any error fused into a *RunJobError.
// There is no timeout: cancellation is cooperative via ctx and via a
// Prompter returning provider.ErrCanceled.
func (j *Job[T]) Run(ctx context.Context) (T, error) {
	j.assets.Refresh()
	if j.stopCh != nil {
		defer close(j.stopCh)
	}
	result, err := j.callback(ctx, &j.assets)
	if err != nil {
		return result, classify(err)
	}
	return result, nil
}
