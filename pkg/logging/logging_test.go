package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelDebugFlagWins(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(false, true, true))
}

func TestLevelVerboseIsDebug(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(true, false, false))
}

func TestLevelQuietIsWarn(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Level(false, true, false))
}

func TestLevelDefaultIsInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Level(false, false, false))
}
