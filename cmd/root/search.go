package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtrlanz/markhor-sub000/pkg/recipe"
)

func newSearchCmd(flags *rootFlags) *cobra.Command {
	var (
		model   string
		scope   string
		plugins []string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "search the workspace's documents for query",
		Args:  cobra.ExactArgs(1),
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

			j := recipe.Search(args[0], limit)
			for _, doc := range docs {
				j.AddDocument(doc)
			}

			results, err := j.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, dr := range results.Documents {
				fmt.Fprintf(out, "%s\n", dr.Document.Base())
				for _, fr := range dr.Files {
					for _, c := range fr.Chunks {
						fmt.Fprintf(out, "  %s  similarity=%.3f  percentile=%d\n", fr.FileName, c.Similarity, c.Percentile)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "embedding model id to use (reserved; selection is first-available)")
	cmd.Flags().StringVar(&scope, "scope", "", "glob pattern selecting which documents to search (default: entire workspace)")
	cmd.Flags().StringSliceVar(&plugins, "plugins", nil, "extension plugins to load (not supported in this build)")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of chunks to return")
	return cmd
}
