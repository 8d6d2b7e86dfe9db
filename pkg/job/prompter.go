package job

import "context"

// AssetAwarePrompter is an optional upgrade of provider.Prompter: a
// Prompter implementation may additionally accept a Sender, letting it
// inject assets (e.g. a file the user attaches while answering) into the
// Job that owns the prompt. Callers detect support via a type assertion
// (the optional-interface pattern).
type AssetAwarePrompter interface {
	// PromptWithAssets behaves like provider.Prompter.Prompt but also
	// hands the implementation a Sender it may use to push assets into
	// the owning Job before or while the user answers.
	PromptWithAssets(ctx context.Context, message string, sender Sender) (string, error)
}
