package provider

import "github.com/dtrlanz/markhor-sub000/pkg/chunk"

// Chunker is the heading-aware chunking capability exposed by an extension.
// This is the canonical chunking trait; a legacy range-only signature
// existed upstream but is treated as obsolete and is not carried forward.
type Chunker interface {
	Identified

	Chunk(source string) []chunk.ChunkData
}
