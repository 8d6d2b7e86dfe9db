// Package chunk splits source text into ranges annotated with structural
// metadata (heading path, token count) suitable for embedding.
package chunk

import "encoding/json"

// ChunkData is a byte range within a source text, optionally annotated with
// a heading path and a token count.
type ChunkData struct {
	Start       int
	End         int
	HeadingPath string // empty means "no heading path"
	TokenCount  *int   // nil means "not counted"
}

// Len returns the byte length of the range.
func (c ChunkData) Len() int {
	return c.End - c.Start
}

// Text returns the slice of source covered by the range.
func (c ChunkData) Text(source string) string {
	return source[c.Start:c.End]
}

type chunkDataJSON struct {
	TextRange   [2]int  `json:"text_range"`
	HeadingPath *string `json:"heading_path"`
	TokenCount  *int    `json:"token_count"`
}

// MarshalJSON encodes the range as the `{text_range: [start,end], ...}`
// wire shape used by document metadata files.
func (c ChunkData) MarshalJSON() ([]byte, error) {
	var headingPath *string
	if c.HeadingPath != "" {
		headingPath = &c.HeadingPath
	}
	return json.Marshal(chunkDataJSON{
		TextRange:   [2]int{c.Start, c.End},
		HeadingPath: headingPath,
		TokenCount:  c.TokenCount,
	})
}

// UnmarshalJSON decodes the `{text_range: [start,end], ...}` wire shape.
func (c *ChunkData) UnmarshalJSON(data []byte) error {
	var raw chunkDataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Start = raw.TextRange[0]
	c.End = raw.TextRange[1]
	c.TokenCount = raw.TokenCount
	if raw.HeadingPath != nil {
		c.HeadingPath = *raw.HeadingPath
	} else {
		c.HeadingPath = ""
	}
	return nil
}

// Tokenizer counts tokens in a string. Implementations are injected into
// chunkers that support optional token counting.
type Tokenizer interface {
	Count(text string) int
}

// Chunker splits a source string into chunks.
type Chunker interface {
	Chunk(source string) []ChunkData
}
