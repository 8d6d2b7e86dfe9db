package recipe

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtrlanz/markhor-sub000/pkg/job"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

const ragSystemGuidance = "Use the retrieved context below to answer the user's question. If the context doesn't contain the answer, say so."
const ragAssistantReady = "I've reviewed the retrieved context and I'm ready to help."

// SimpleRAG builds the Search job for prompt, then chains into the Chat
// job once the search results are available: the retrieved chunks are
// formatted into a single context message, and the chat job runs against
// [System guidance, User retrieved context, Assistant "ready to help",
// User original prompt].
func SimpleRAG(prompt string, limit int, modelID string, onMessage func(provider.Message)) *job.Job[[]provider.Message] {
	search := Search(prompt, limit)
	return job.AndChainAsync(search, func(_ context.Context, results SearchResults) (*job.Job[[]provider.Message], error) {
		retrieved, err := formatRetrievedContext(results)
		if err != nil {
			return nil, err
		}
		messages := []provider.Message{
			provider.SystemMessage(provider.TextPart(ragSystemGuidance)),
			provider.UserMessage(provider.TextPart(retrieved)),
			provider.AssistantMessage([]provider.ContentPart{provider.TextPart(ragAssistantReady)}, nil),
			provider.UserMessage(provider.TextPart(prompt)),
		}
		return Chat(messages, modelID, onMessage), nil
	})
}

// formatRetrievedContext renders search results as one "File: <name>"
// block per file, its surviving chunks joined by "...\n\n".
func formatRetrievedContext(results SearchResults) (string, error) {
	var b strings.Builder
	for _, dr := range results.Documents {
		for _, fr := range dr.Files {
			content, err := os.ReadFile(filepath.Join(dr.Document.Dir(), fr.FileName))
			if err != nil {
				return "", err
			}
			text := string(content)

			texts := make([]string, len(fr.Chunks))
			for i, c := range fr.Chunks {
				texts[i] = c.Chunk.Text(text)
			}

			b.WriteString("File: ")
			b.WriteString(fr.FileName)
			b.WriteString("\n\n")
			b.WriteString(strings.Join(texts, "...\n\n"))
			b.WriteString("\n---\n")
		}
	}
	return b.String(), nil
}
