package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_Identical(t *testing.T) {
	t.Parallel()
	v := Embedding{1, 2, 3}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	t.Parallel()
	a := Embedding{1, 0}
	b := Embedding{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_MismatchedDimensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, CosineSimilarity(Embedding{1, 2}, Embedding{1}))
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, CosineSimilarity(Embedding{0, 0}, Embedding{1, 1}))
}
