package chunk

import "unicode/utf8"

// PlainTextChunker slides a fixed-size, overlapping window over the source
// text, counting boundaries in characters (runes), not bytes.
type PlainTextChunker struct {
	chunkSize   int
	overlapSize int
	tokenizer   Tokenizer
}

// PlainTextOption configures a PlainTextChunker.
type PlainTextOption func(*PlainTextChunker)

// WithPlainTextTokenizer injects a token counter.
func WithPlainTextTokenizer(t Tokenizer) PlainTextOption {
	return func(c *PlainTextChunker) {
		c.tokenizer = t
	}
}

// NewPlainTextChunker creates a chunker that slides a window of chunkSize
// characters with stride chunkSize-overlapSize. chunkSize must be > 0 and
// overlapSize must be < chunkSize.
func NewPlainTextChunker(chunkSize, overlapSize int, opts ...PlainTextOption) *PlainTextChunker {
	c := &PlainTextChunker{chunkSize: chunkSize, overlapSize: overlapSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chunk implements Chunker. Ranges are byte offsets into source, but window
// boundaries are computed over the decoded rune sequence so multi-byte
// characters are never split.
func (c *PlainTextChunker) Chunk(source string) []ChunkData {
	if c.chunkSize <= 0 {
		return nil
	}
	stride := c.chunkSize - c.overlapSize
	if stride <= 0 {
		return nil
	}

	runes := []rune(source)
	n := len(runes)
	if n == 0 {
		return nil
	}

	// byteOffsets[i] is the byte offset of rune i; byteOffsets[n] is len(source).
	byteOffsets := make([]int, n+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += utf8.RuneLen(r)
	}
	byteOffsets[n] = offset

	var chunks []ChunkData
	start := 0
	for {
		end := start + c.chunkSize
		if end > n {
			end = n
		}

		startByte, endByte := byteOffsets[start], byteOffsets[end]
		cd := ChunkData{Start: startByte, End: endByte}
		if c.tokenizer != nil {
			count := c.tokenizer.Count(source[startByte:endByte])
			cd.TokenCount = &count
		}
		chunks = append(chunks, cd)

		if end >= n {
			break
		}
		if n-end <= c.overlapSize {
			break
		}
		start += stride
	}

	return chunks
}
