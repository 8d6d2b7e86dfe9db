package root

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

func TestSearchWithoutExtensionsSurfacesExtensionError(t *testing.T) {
	wsDir := t.TempDir()
	_, err := workspace.Create(wsDir)
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newSearchCmd(flags)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())
	cmd.SetArgs([]string{"anything"})

	assert.Error(t, cmd.Execute())
}

func TestSearchWithPluginsIsRejected(t *testing.T) {
	wsDir := t.TempDir()
	_, err := workspace.Create(wsDir)
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newSearchCmd(flags)
	cmd.SetContext(context.Background())
	cmd.SetArgs([]string{"--plugins", "x", "query"})
	assert.ErrorIs(t, cmd.Execute(), errPluginsNotSupported)
}
