package provider

import "context"

// Prompter is an interactive input capability: it asks the user a question
// and returns their answer. Implementations usually wrap a terminal UI or a
// GUI dialog; the core never assumes one over the other.
//
// A Prompter that also supports injecting assets mid-prompt (e.g. a file
// the user attaches while answering) implements the optional upgrade
// interface AssetAwarePrompter defined alongside the Job orchestrator;
// callers detect it with a type assertion.
type Prompter interface {
	Identified

	// Prompt asks the user message and returns their reply. Returns
	// ErrCanceled if the user cancels instead of answering.
	Prompt(ctx context.Context, message string) (string, error)
}
