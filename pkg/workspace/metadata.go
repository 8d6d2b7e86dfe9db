package workspace

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dtrlanz/markhor-sub000/pkg/chunk"
	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
)

// MarkhorVersion is stamped into every .markhor file written by this
// package. It is informational only; the reader neither rejects nor
// reports a different value.
const MarkhorVersion = "1"

// EmbeddingRecord pairs one chunk's embedding with the chunk data it was
// computed from. This is the payload shape cached under a functionality
// identifier in FileMetadata.ExtensionData.
type EmbeddingRecord struct {
	Embedding embedding.Embedding
	Chunk     chunk.ChunkData
}

// Payload is an externally-tagged union of known extension-data shapes.
// Only the Embeddings shape is defined by this package; unrecognized
// payloads round-trip as raw JSON so that listing code never has to
// understand every extension's private data.
type Payload struct {
	Embeddings []EmbeddingRecord `json:"Embeddings,omitempty"`
	raw        json.RawMessage
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if p.Embeddings != nil {
		pairs := make([][2]json.RawMessage, len(p.Embeddings))
		for i, r := range p.Embeddings {
			embJSON, err := json.Marshal(r.Embedding)
			if err != nil {
				return nil, err
			}
			chunkJSON, err := json.Marshal(r.Chunk)
			if err != nil {
				return nil, err
			}
			pairs[i] = [2]json.RawMessage{embJSON, chunkJSON}
		}
		return json.Marshal(struct {
			Embeddings [][2]json.RawMessage `json:"Embeddings"`
		}{pairs})
	}
	if p.raw != nil {
		return p.raw, nil
	}
	return []byte("null"), nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var tagged struct {
		Embeddings [][2]json.RawMessage `json:"Embeddings"`
	}
	if err := json.Unmarshal(data, &tagged); err == nil && tagged.Embeddings != nil {
		records := make([]EmbeddingRecord, len(tagged.Embeddings))
		for i, pair := range tagged.Embeddings {
			if err := json.Unmarshal(pair[0], &records[i].Embedding); err != nil {
				return err
			}
			if err := json.Unmarshal(pair[1], &records[i].Chunk); err != nil {
				return err
			}
		}
		p.Embeddings = records
		return nil
	}
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// NewRawPayload wraps an arbitrary JSON-serializable value as a Payload,
// for extension data this package has no typed shape for (e.g. import
// annotations). The value round-trips through listing code untouched.
func NewRawPayload(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, err
	}
	return Payload{raw: data}, nil
}

// Raw returns the payload's raw JSON if it has no typed shape, or nil.
func (p Payload) Raw() json.RawMessage { return p.raw }

// FileMetadata maps a functionality identifier (an extension+capability
// identity string, see provider.Identity.String) to the payload that
// capability has cached for this particular content file.
type FileMetadata struct {
	ExtensionData map[string]Payload `json:"extension_data"`
}

// EmbeddingsFor returns the cached embedding records for identity. ok is
// false when the entry is missing or its payload is not the Embeddings
// shape; callers treat both the same way and recompute.
func (m FileMetadata) EmbeddingsFor(identity string) ([]EmbeddingRecord, bool) {
	p, ok := m.ExtensionData[identity]
	if !ok || p.Embeddings == nil {
		return nil, false
	}
	return p.Embeddings, true
}

// SetEmbeddingsFor stores embedding records under identity, creating the
// ExtensionData map if necessary.
func (m *FileMetadata) SetEmbeddingsFor(identity string, records []EmbeddingRecord) {
	if m.ExtensionData == nil {
		m.ExtensionData = make(map[string]Payload)
	}
	m.ExtensionData[identity] = Payload{Embeddings: records}
}

// Metadata is the deserialized form of a document's `.markhor` file.
type Metadata struct {
	MarkhorVersion string                  `json:"markhor_version"`
	ID             uuid.UUID               `json:"id"`
	Files          map[string]FileMetadata `json:"files"`
}

// NewMetadata returns an empty metadata record with a freshly generated id.
func NewMetadata() Metadata {
	return Metadata{
		MarkhorVersion: MarkhorVersion,
		ID:             uuid.New(),
		Files:          make(map[string]FileMetadata),
	}
}

// FileMeta returns the metadata for filename, or an empty record if none
// is stored yet. The returned record is a copy: changes reach m only via
// SetFileMeta. An empty record's ExtensionData map is nil; SetEmbeddingsFor
// creates it.
func (m *Metadata) FileMeta(filename string) FileMetadata {
	if m.Files == nil {
		m.Files = make(map[string]FileMetadata)
	}
	return m.Files[filename]
}

// SetFileMeta stores fm under filename.
func (m *Metadata) SetFileMeta(filename string, fm FileMetadata) {
	if m.Files == nil {
		m.Files = make(map[string]FileMetadata)
	}
	m.Files[filename] = fm
}
