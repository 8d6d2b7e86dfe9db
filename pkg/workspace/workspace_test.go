package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenRead(t *testing.T) {
	root := filepath.Join(t.TempDir(), "w")
	ws, err := Create(root)
	require.NoError(t, err)

	doc, err := ws.CreateDocument("doc")
	require.NoError(t, err)

	docs, err := ws.ListDocuments()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc", docs[0].Base())

	wantID, err := doc.ID()
	require.NoError(t, err)

	md, err := docs[0].ReadMetadata()
	require.NoError(t, err)
	assert.Equal(t, wantID, md.ID)
}

func TestOpenRejectsMissingConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(root, 0o755))
	_, err := Open(root)
	assert.ErrorIs(t, err, ErrNotAWorkspace)
}

func TestOpenRejectsMalformedConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, configDirName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, configDirName, configFileName), []byte("not json"), 0o644))
	_, err := Open(root)
	assert.ErrorIs(t, err, ErrInvalidWorkspaceConfig)
}

func TestCreateRejectsNonEmptyDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "something.txt")
	_, err := Create(root)
	assert.ErrorIs(t, err, ErrWorkspaceCreationConflict)
}

func TestMoveWithSibling(t *testing.T) {
	root := t.TempDir()
	ws, err := Create(root)
	require.NoError(t, err)

	_, err = ws.CreateSubfolder("m")
	require.NoError(t, err)
	mDir := filepath.Join(root, "m")

	doc, err := createDocument(mDir, "movable")
	require.NoError(t, err)
	touch(t, mDir, "movable.data")

	_, err = ws.CreateSubfolder("n")
	require.NoError(t, err)
	nDir := filepath.Join(root, "n")

	require.NoError(t, doc.MoveTo(filepath.Join(nDir, "moved.markhor")))

	assert.FileExists(t, filepath.Join(nDir, "moved.markhor"))
	assert.FileExists(t, filepath.Join(nDir, "moved.data"))
	assert.NoFileExists(t, filepath.Join(mDir, "movable.markhor"))
	assert.NoFileExists(t, filepath.Join(mDir, "movable.data"))
}

func TestFolderMoveToRenamesTree(t *testing.T) {
	root := t.TempDir()
	ws, err := Create(root)
	require.NoError(t, err)

	folder, err := ws.CreateSubfolder("old")
	require.NoError(t, err)
	_, err = folder.CreateDocument("doc")
	require.NoError(t, err)

	newPath := filepath.Join(root, "renamed")
	require.NoError(t, folder.MoveTo(newPath))

	assert.Equal(t, newPath, folder.Path())
	assert.FileExists(t, filepath.Join(newPath, "doc.markhor"))
	assert.NoDirExists(t, filepath.Join(root, "old"))
}

func TestDocumentFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	doc, err := createDocument(dir, "report")
	require.NoError(t, err)
	touch(t, dir, "report.md")
	touch(t, dir, "report.a1.MD")
	touch(t, dir, "report.pdf")

	files, err := doc.FilesByExtension("md")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"report.md", "report.a1.MD"}, files)
}

func TestDocumentDeleteSwallowsMissingSiblings(t *testing.T) {
	dir := t.TempDir()
	doc, err := createDocument(dir, "report")
	require.NoError(t, err)
	touch(t, dir, "report.md")

	// Remove the sibling out from under the document before Delete runs.
	require.NoError(t, os.Remove(filepath.Join(dir, "report.md")))

	require.NoError(t, doc.Delete())
	assert.NoFileExists(t, filepath.Join(dir, "report.markhor"))
}

func TestWithMetadataPersistsOnlyWhenChanged(t *testing.T) {
	dir := t.TempDir()
	doc, err := createDocument(dir, "report")
	require.NoError(t, err)

	info1, err := os.Stat(doc.MetadataPath())
	require.NoError(t, err)

	require.NoError(t, doc.WithMetadata(func(m *Metadata) error {
		return nil // no mutation
	}))
	info2, err := os.Stat(doc.MetadataPath())
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime())

	require.NoError(t, doc.WithMetadata(func(m *Metadata) error {
		fm := m.FileMeta("report.md")
		fm.SetEmbeddingsFor("ext#cap#name", nil)
		m.SetFileMeta("report.md", fm)
		return nil
	}))

	md, err := doc.ReadMetadata()
	require.NoError(t, err)
	_, ok := md.Files["report.md"]
	assert.True(t, ok)
}
