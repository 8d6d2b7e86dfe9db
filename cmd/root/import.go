package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtrlanz/markhor-sub000/pkg/recipe"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// importAnnotationsID is the functionality identifier import stores its
// --tags/--metadata annotations under in each imported file's metadata.
const importAnnotationsID = "markhor#import#annotations"

func newImportCmd(flags *rootFlags) *cobra.Command {
	var (
		metaKVs []string
		tags    []string
		model   string
		plugins []string
		watch   bool
	)
	cmd := &cobra.Command{
		Use:   "import <paths...>",
		Short: "import files into the workspace as new documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(plugins) > 0 {
				return errPluginsNotSupported
			}
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}

			fields, err := parseMetadataKVs(metaKVs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			onImported := func(doc *workspace.Document) {
				if err := annotateImport(doc, tags, fields); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to annotate %s: %v\n", doc.Base(), err)
				}
				fmt.Fprintf(out, "imported %s\n", doc.Base())
			}

			if watch {
				_, err := recipe.IngestWatch(ws, args, onImported).Run(cmd.Context())
				return err
			}

			docs, err := recipe.Ingest(ws, args).Run(cmd.Context())
			for _, doc := range docs {
				onImported(doc)
			}
			return err
		},
	}
	cmd.Flags().StringSliceVar(&metaKVs, "metadata", nil, "key=value pairs to record on each imported file")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags to record on each imported file")
	cmd.Flags().StringVar(&model, "model", "", "conversion model id to use (reserved; selection is first-available)")
	cmd.Flags().StringSliceVar(&plugins, "plugins", nil, "extension plugins to load (not supported in this build)")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and import new files dropped into the workspace until interrupted")
	return cmd
}

func parseMetadataKVs(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	fields := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("--metadata %q: expected key=value", kv)
		}
		fields[key] = value
	}
	return fields, nil
}

// annotateImport records the import command's --tags and --metadata values
// on every content file of the freshly imported document, as a raw payload
// under the import annotations identity.
func annotateImport(doc *workspace.Document, tags []string, fields map[string]string) error {
	if len(tags) == 0 && len(fields) == 0 {
		return nil
	}
	payload, err := workspace.NewRawPayload(map[string]any{
		"tags":   tags,
		"fields": fields,
	})
	if err != nil {
		return err
	}
	files, err := doc.Files()
	if err != nil {
		return err
	}
	return doc.WithMetadata(func(m *workspace.Metadata) error {
		for _, f := range files {
			fm := m.FileMeta(f)
			if fm.ExtensionData == nil {
				fm.ExtensionData = make(map[string]workspace.Payload)
			}
			fm.ExtensionData[importAnnotationsID] = payload
			m.SetFileMeta(f, fm)
		}
		return nil
	})
}
