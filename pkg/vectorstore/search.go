package vectorstore

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
)

// ChunkResult is one surviving chunk from a Search, annotated with its
// rank and percentile among all comparisons made.
type ChunkResult struct {
	Chunk      chunk.ChunkData
	Similarity float64
	Rank       int
	Percentile int
}

// FileResult groups a document's surviving chunks by the markdown file
// they came from, in rank order.
type FileResult struct {
	FileName string
	Chunks   []ChunkResult
}

// DocResult groups a document's surviving chunks by file.
type DocResult struct {
	DocID uuid.UUID
	Files []FileResult
}

type scanEntry struct {
	docID    uuid.UUID
	fileIdx  int
	chunkIdx int
	sim      float64
}

// Search ranks every indexed chunk by cosine similarity to queryEmbedding,
// drops anything at or below embedding.MinSimilarity, keeps the top limit
// results, and groups the survivors by document then by file (rank order
// preserved within each file). Ties in similarity are broken by insertion
// order: add_document order, then file order within a document, then
// chunk order within a file.
func (s *Store) Search(queryEmbedding embedding.Embedding, limit int) map[uuid.UUID]*DocResult {
	var entries []scanEntry
	for _, docID := range s.docOrder {
		de := s.docs[docID]
		for i, emb := range de.Embeddings {
			sim := embedding.CosineSimilarity(queryEmbedding, emb)
			entries = append(entries, scanEntry{docID: docID, fileIdx: de.Chunks[i].FileIdx, chunkIdx: i, sim: sim})
		}
	}
	totalComparisons := len(entries)

	var survivors []scanEntry
	for _, e := range entries {
		if e.sim > embedding.MinSimilarity {
			survivors = append(survivors, e)
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].sim > survivors[j].sim
	})

	if limit >= 0 && len(survivors) > limit {
		survivors = survivors[:limit]
	}

	results := make(map[uuid.UUID]*DocResult)
	for rank, e := range survivors {
		dr, ok := results[e.docID]
		if !ok {
			dr = &DocResult{DocID: e.docID}
			results[e.docID] = dr
		}

		de := s.docs[e.docID]
		fileName := de.FileNames[e.fileIdx]

		var fr *FileResult
		for i := range dr.Files {
			if dr.Files[i].FileName == fileName {
				fr = &dr.Files[i]
				break
			}
		}
		if fr == nil {
			dr.Files = append(dr.Files, FileResult{FileName: fileName})
			fr = &dr.Files[len(dr.Files)-1]
		}

		fr.Chunks = append(fr.Chunks, ChunkResult{
			Chunk:      de.Chunks[e.chunkIdx].Data,
			Similarity: e.sim,
			Rank:       rank,
			Percentile: percentile(rank, totalComparisons),
		})
	}

	return results
}

func percentile(rank, total int) int {
	if total <= 0 {
		return 0
	}
	return ((rank + 1) * 100) / total
}
