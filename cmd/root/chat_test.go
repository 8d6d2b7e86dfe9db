package root

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

func TestChatWithoutExtensionsSurfacesExtensionError(t *testing.T) {
	wsDir := t.TempDir()
	_, err := workspace.Create(wsDir)
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newChatCmd(flags)
	cmd.SetContext(context.Background())
	cmd.SetArgs([]string{"--prompt", "hi"})

	assert.Error(t, cmd.Execute())
}

func TestChatWithPluginsIsRejected(t *testing.T) {
	wsDir := t.TempDir()
	_, err := workspace.Create(wsDir)
	require.NoError(t, err)

	flags := &rootFlags{workspacePath: wsDir}
	cmd := newChatCmd(flags)
	cmd.SetContext(context.Background())
	cmd.SetArgs([]string{"--plugins", "x", "--prompt", "hi"})
	assert.ErrorIs(t, cmd.Execute(), errPluginsNotSupported)
}
