package root

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	var (
		showMetadata   bool
		showEmbeddings bool
	)

	cmd := &cobra.Command{
		Use:   "show [document]",
		Short: "show a document's files, and optionally its metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				docs, err := ws.ResolveScope("")
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, d := range docs {
					fmt.Fprintln(out, d.Base())
				}
				return nil
			}
			doc, err := findDocument(ws, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			files, err := doc.Files()
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(out, f)
			}

			if !showMetadata && !showEmbeddings {
				return nil
			}
			md, err := doc.ReadMetadata()
			if err != nil {
				return err
			}

			// Collect the listings before --metadata redacts the payloads.
			var listings []embeddingListing
			if showEmbeddings {
				listings = collectEmbeddingListings(md)
			}

			if showMetadata {
				stripEmbeddings(md)
				data, err := json.MarshalIndent(md, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			}

			if showEmbeddings {
				printEmbeddingListings(out, listings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMetadata, "metadata", false, "print the document's .markhor metadata")
	cmd.Flags().BoolVar(&showEmbeddings, "embeddings", false, "list cached chunk embeddings per file (heading path, token count, vector dimension)")
	return cmd
}

// embeddingListing is one file's cached chunk records under one
// functionality identifier.
type embeddingListing struct {
	file    string
	id      string
	records []workspace.EmbeddingRecord
}

func collectEmbeddingListings(md workspace.Metadata) []embeddingListing {
	files := make([]string, 0, len(md.Files))
	for f := range md.Files {
		files = append(files, f)
	}
	sort.Strings(files)

	var listings []embeddingListing
	for _, f := range files {
		fm := md.Files[f]
		ids := make([]string, 0, len(fm.ExtensionData))
		for id := range fm.ExtensionData {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if records, ok := fm.EmbeddingsFor(id); ok {
				listings = append(listings, embeddingListing{file: f, id: id, records: records})
			}
		}
	}
	return listings
}

// printEmbeddingListings renders cached embeddings as a compact per-chunk
// table. The vectors themselves are never dumped, only their dimension.
func printEmbeddingListings(w io.Writer, listings []embeddingListing) {
	for _, l := range listings {
		fmt.Fprintf(w, "\n%s  (%s)\n", l.file, l.id)
		fmt.Fprintln(w, "  No. |      Range      | Bytes | Dim | Tokens | Heading")
		fmt.Fprintln(w, "  ----|-----------------|-------|-----|--------|--------")
		for i, r := range l.records {
			tokens := "--"
			if r.Chunk.TokenCount != nil {
				tokens = strconv.Itoa(*r.Chunk.TokenCount)
			}
			fmt.Fprintf(w, "  %3d | %6d..%-6d | %5d | %3d | %6s | %s\n",
				i, r.Chunk.Start, r.Chunk.End, r.Chunk.Len(), len(r.Embedding), tokens, r.Chunk.HeadingPath)
		}
	}
}

// stripEmbeddings blanks out the Embeddings payload of every file's
// extension data in place, keeping the functionality ids visible without
// dumping every cached vector to the terminal by default.
func stripEmbeddings(md workspace.Metadata) {
	for _, fm := range md.Files {
		for id, payload := range fm.ExtensionData {
			if payload.Embeddings != nil {
				fm.ExtensionData[id] = workspace.Payload{}
			}
		}
	}
}

// findDocument locates a document anywhere under the workspace root by
// its base name (the part before ".markhor"), searching the root and
// then each subfolder in turn.
func findDocument(ws *workspace.Workspace, name string) (*workspace.Document, error) {
	docs, err := ws.ListDocuments()
	if err != nil {
		return nil, err
	}
	if doc := matchDocument(docs, name); doc != nil {
		return doc, nil
	}

	folders, err := ws.ListFolders()
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if doc, err := findDocumentInFolder(folder, name); err == nil {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document %q not found", name)
}

func findDocumentInFolder(folder *workspace.Folder, name string) (*workspace.Document, error) {
	docs, err := folder.ListDocuments()
	if err != nil {
		return nil, err
	}
	if doc := matchDocument(docs, name); doc != nil {
		return doc, nil
	}

	subfolders, err := folder.ListFolders()
	if err != nil {
		return nil, err
	}
	for _, sub := range subfolders {
		if doc, err := findDocumentInFolder(sub, name); err == nil {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document %q not found", name)
}

func matchDocument(docs []*workspace.Document, name string) *workspace.Document {
	for _, doc := range docs {
		if doc.Base() == name {
			return doc
		}
	}
	return nil
}
