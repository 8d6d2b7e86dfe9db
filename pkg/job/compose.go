package job

import (
	"context"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// AndThen runs job, then runs next against job's own Assets (now reflecting
// anything the first callback appended) together with job's result,
// producing a Job[T2]. Go methods cannot introduce new type parameters, so
// composition is expressed as free functions rather than as methods on
// Job[T]. Anything added to the returned Job[T2] via AddDocument et al.
// before Run is folded into job's Assets first, so builder calls on
// whichever Job reference the caller holds behave the same way.
func AndThen[T, T2 any](j *Job[T], next func(ctx context.Context, assets *Assets, result T) (T2, error)) *Job[T2] {
	return New(func(ctx context.Context, assets *Assets) (T2, error) {
		fold(assets, &j.assets)
		result, err := j.Run(ctx)
		if err != nil {
			var zero T2
			return zero, err
		}
		return next(ctx, &j.assets, result)
	})
}

// AndChain runs job, then builds a new Job from its result via next,
// inheriting job's documents and extensions into the child exactly once
// before running it. Anything added to the returned Job[T2] via
// AddDocument et al. before Run is folded into job's Assets first, so a
// caller holding only the wrapper can still seed the underlying job.
func AndChain[T, T2 any](j *Job[T], next func(result T) *Job[T2]) *Job[T2] {
	return New(func(ctx context.Context, assets *Assets) (T2, error) {
		fold(assets, &j.assets)
		result, err := j.Run(ctx)
		if err != nil {
			var zero T2
			return zero, err
		}
		child := next(result)
		inherit(j, child)
		return child.Run(ctx)
	})
}

// AndChainAsync is AndChain for a next that itself needs to do async work
// (e.g. call an embedder) to build the child Job.
func AndChainAsync[T, T2 any](j *Job[T], next func(ctx context.Context, result T) (*Job[T2], error)) *Job[T2] {
	return New(func(ctx context.Context, assets *Assets) (T2, error) {
		fold(assets, &j.assets)
		result, err := j.Run(ctx)
		if err != nil {
			var zero T2
			return zero, err
		}
		child, err := next(ctx, result)
		if err != nil {
			var zero T2
			return zero, err
		}
		inherit(j, child)
		return child.Run(ctx)
	})
}

// fold appends from's directly-registered documents/folders/extensions
// onto into, so that assets added to a composed Job's own bag (before its
// wrapped callback runs) still reach the underlying Job it delegates to.
func fold(from, into *Assets) {
	into.documents = append(into.documents, from.documents...)
	into.folders = append(into.folders, from.folders...)
	into.extensions = append(into.extensions, from.extensions...)
}

// inherit prepends parent's documents and extensions onto child's Assets,
// preserving registration order (parent's assets were registered first).
func inherit[T, T2 any](parent *Job[T], child *Job[T2]) {
	child.assets.documents = append(append([]*workspace.Document{}, parent.assets.documents...), child.assets.documents...)
	child.assets.extensions = append(append(extension.Registry{}, parent.assets.extensions...), child.assets.extensions...)
}
