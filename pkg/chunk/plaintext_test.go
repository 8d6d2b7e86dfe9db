package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextChunker_SlidingWindow(t *testing.T) {
	t.Parallel()
	source := "abcdefghijklmnopqrstuvwxyz1234567890"
	require.Len(t, source, 36)

	c := NewPlainTextChunker(10, 3)
	got := c.Chunk(source)

	want := [][2]int{{0, 10}, {7, 17}, {14, 24}, {21, 31}, {28, 36}}
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w[0], got[i].Start, "chunk %d start", i)
		assert.Equal(t, w[1], got[i].End, "chunk %d end", i)
	}
}

func TestPlainTextChunker_MultiByteRunes(t *testing.T) {
	t.Parallel()
	source := "日本語abcdefghij1234567890" // mix of multi-byte runes
	c := NewPlainTextChunker(5, 1)
	got := c.Chunk(source)

	require.NotEmpty(t, got)
	for _, cd := range got {
		// Ranges must stay within the source, and slicing the source by
		// them must not panic.
		assert.True(t, cd.Start <= len(source))
		assert.True(t, cd.End <= len(source))
		_ = cd.Text(source)
	}
}

func TestPlainTextChunker_EmptySource(t *testing.T) {
	t.Parallel()
	c := NewPlainTextChunker(10, 3)
	assert.Empty(t, c.Chunk(""))
}

func TestPlainTextChunker_ShorterThanWindow(t *testing.T) {
	t.Parallel()
	c := NewPlainTextChunker(10, 3)
	got := c.Chunk("abc")
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 3, got[0].End)
}

type constTokenizer struct{ n int }

func (c constTokenizer) Count(string) int { return c.n }

func TestPlainTextChunker_TokenCount(t *testing.T) {
	t.Parallel()
	c := NewPlainTextChunker(5, 0, WithPlainTextTokenizer(constTokenizer{n: 7}))
	got := c.Chunk("hello world")
	require.NotEmpty(t, got)
	for _, cd := range got {
		require.NotNil(t, cd.TokenCount)
		assert.Equal(t, 7, *cd.TokenCount)
	}
}
