package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtrlanz/markhor-sub000/pkg/job"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
	"github.com/dtrlanz/markhor-sub000/pkg/recipe"
)

func newChatCmd(flags *rootFlags) *cobra.Command {
	var (
		prompt  string
		model   string
		scope   string
		plugins []string
		ragMode bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "chat with a model, optionally grounded in retrieved document context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(plugins) > 0 {
				return errPluginsNotSupported
			}
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}
			docs, err := ws.ResolveScope(scope)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			onMessage := func(m provider.Message) {
				fmt.Fprintf(out, "%s: %s\n", m.Role, m.Text())
			}

			var j *job.Job[[]provider.Message]
			if ragMode {
				j = recipe.SimpleRAG(prompt, limit, model, onMessage)
			} else {
				j = recipe.Chat([]provider.Message{provider.UserMessage(provider.TextPart(prompt))}, model, onMessage)
			}
			for _, doc := range docs {
				j.AddDocument(doc)
			}

			_, err = j.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "initial message to send")
	cmd.Flags().StringVar(&model, "model", "", "chat model id to use (default: first available)")
	cmd.Flags().StringVar(&scope, "scope", "", "glob pattern selecting which documents to attach (default: entire workspace)")
	cmd.Flags().StringSliceVar(&plugins, "plugins", nil, "extension plugins to load (not supported in this build)")
	cmd.Flags().BoolVar(&ragMode, "rag", false, "retrieve matching context before chatting (simple RAG)")
	cmd.Flags().IntVar(&limit, "limit", 5, "number of chunks to retrieve when --rag is set")
	return cmd
}
