package root

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

func TestShowListsFiles(t *testing.T) {
	wsDir := t.TempDir()
	ws, err := workspace.Create(wsDir)
	require.NoError(t, err)
	_, err = ws.CreateDocument("notes")
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"notes"})
	require.NoError(t, cmd.Execute())
}

func TestShowMetadataOmitsEmbeddingsByDefault(t *testing.T) {
	wsDir := t.TempDir()
	ws, err := workspace.Create(wsDir)
	require.NoError(t, err)
	doc, err := ws.CreateDocument("notes")
	require.NoError(t, err)

	require.NoError(t, doc.WithMetadata(func(m *workspace.Metadata) error {
		fm := m.FileMeta("notes.md")
		fm.SetEmbeddingsFor("ext/embedder", nil)
		m.SetFileMeta("notes.md", fm)
		return nil
	}))

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"notes", "--metadata"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "extension_data")
}

func TestShowEmbeddingsPrintsCompactListing(t *testing.T) {
	wsDir := t.TempDir()
	ws, err := workspace.Create(wsDir)
	require.NoError(t, err)
	doc, err := ws.CreateDocument("notes")
	require.NoError(t, err)

	tokens := 7
	require.NoError(t, doc.WithMetadata(func(m *workspace.Metadata) error {
		fm := m.FileMeta("notes.md")
		fm.SetEmbeddingsFor("ext#embedder#model", []workspace.EmbeddingRecord{{
			Embedding: embedding.Embedding{0.25, 0.5, 0.25},
			Chunk:     chunk.ChunkData{Start: 0, End: 12, HeadingPath: "Intro > Methods", TokenCount: &tokens},
		}})
		m.SetFileMeta("notes.md", fm)
		return nil
	}))

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"notes", "--embeddings"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "notes.md  (ext#embedder#model)")
	assert.Contains(t, output, "Heading")
	assert.Contains(t, output, "Intro > Methods")
	assert.Contains(t, output, "|   3 |") // vector dimension, not the vector
	assert.Contains(t, output, "     7 |")
	assert.NotContains(t, output, "0.25", "raw vector components must never be dumped")
}

func TestShowMetadataWithEmbeddingsStillRedactsVectors(t *testing.T) {
	wsDir := t.TempDir()
	ws, err := workspace.Create(wsDir)
	require.NoError(t, err)
	doc, err := ws.CreateDocument("notes")
	require.NoError(t, err)

	require.NoError(t, doc.WithMetadata(func(m *workspace.Metadata) error {
		fm := m.FileMeta("notes.md")
		fm.SetEmbeddingsFor("ext#embedder#model", []workspace.EmbeddingRecord{{
			Embedding: embedding.Embedding{0.125, 0.875},
			Chunk:     chunk.ChunkData{Start: 0, End: 4},
		}})
		m.SetFileMeta("notes.md", fm)
		return nil
	}))

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"notes", "--metadata", "--embeddings"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "extension_data")
	assert.Contains(t, output, "|   2 |") // dimension column from the listing
	assert.NotContains(t, output, "0.125")
}

func TestShowWithoutArgumentListsDocuments(t *testing.T) {
	wsDir := t.TempDir()
	ws, err := workspace.Create(wsDir)
	require.NoError(t, err)
	_, err = ws.CreateDocument("alpha")
	require.NoError(t, err)
	folder, err := ws.CreateSubfolder("sub")
	require.NoError(t, err)
	_, err = folder.CreateDocument("beta")
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "beta")
}

func TestShowUnknownDocumentErrors(t *testing.T) {
	wsDir := t.TempDir()
	_, err := workspace.Create(wsDir)
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newShowCmd(flags)
	cmd.SetArgs([]string{"nope"})
	assert.Error(t, cmd.Execute())
}
