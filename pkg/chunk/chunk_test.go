package chunk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkData_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	n := 42
	cd := ChunkData{Start: 1, End: 5, HeadingPath: "A > B", TokenCount: &n}

	data, err := json.Marshal(cd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text_range":[1,5],"heading_path":"A > B","token_count":42}`, string(data))

	var out ChunkData
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, cd.Start, out.Start)
	assert.Equal(t, cd.End, out.End)
	assert.Equal(t, cd.HeadingPath, out.HeadingPath)
	require.NotNil(t, out.TokenCount)
	assert.Equal(t, *cd.TokenCount, *out.TokenCount)
}

func TestChunkData_JSONRoundTrip_NoOptional(t *testing.T) {
	t.Parallel()
	cd := ChunkData{Start: 0, End: 3}

	data, err := json.Marshal(cd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text_range":[0,3],"heading_path":null,"token_count":null}`, string(data))

	var out ChunkData
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "", out.HeadingPath)
	assert.Nil(t, out.TokenCount)
}
