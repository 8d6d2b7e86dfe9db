package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ChatModel)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{ChatModel: "gpt-5", EmbeddingModel: "text-embed-1"}
	require.NoError(t, cfg.saveTo(path))

	reloaded, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", reloaded.ChatModel)
	assert.Equal(t, "text-embed-1", reloaded.EmbeddingModel)
	assert.Equal(t, CurrentVersion, reloaded.Version)
}

func TestGetSetUnknownKey(t *testing.T) {
	cfg := &Config{}

	_, err := cfg.Get("nonsense")
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = cfg.Set("nonsense", "x")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSetThenGetRoundTrips(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("default_workspace", "/tmp/ws"))

	got, err := cfg.Get("default_workspace")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ws", got)
}

func TestListReturnsAllKeys(t *testing.T) {
	cfg := &Config{ChatModel: "gpt-5"}
	list := cfg.List()
	assert.Equal(t, "gpt-5", list["chat_model"])
	_, ok := list["verbosity"]
	assert.True(t, ok)
}

func TestDirFallsBackWhenNoHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	dir := Dir()
	assert.NotEmpty(t, dir)
	_ = os.TempDir()
}
