package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkillSpaceRejectsMixedDimensions(t *testing.T) {
	_, err := NewSkillSpace(map[string][]float32{
		"python": {1, 0},
		"java":   {1, 0, 0},
	})
	assert.Error(t, err)
}

func TestSkillSpaceVocabSorted(t *testing.T) {
	space, err := NewSkillSpace(map[string][]float32{
		"python": {1, 0},
		"docker": {0, 1},
		"java":   {1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "java", "python"}, space.Vocab())
	assert.Equal(t, 2, space.Dim())
}

func TestSkillSpaceVectorLookup(t *testing.T) {
	space, err := NewSkillSpace(map[string][]float32{"python": {1, 0}})
	require.NoError(t, err)

	vec, ok := space.Vector("  Python ")
	assert.True(t, ok)
	assert.Equal(t, []float32{1, 0}, vec)

	_, ok = space.Vector("cobol")
	assert.False(t, ok)
}

func TestAvgVector(t *testing.T) {
	space, err := NewSkillSpace(map[string][]float32{
		"python": {1, 0},
		"java":   {0, 1},
	})
	require.NoError(t, err)

	avg := space.AvgVector([]string{"python", "java", "cobol"})
	assert.Equal(t, []float32{0.5, 0.5}, avg)

	// All-unknown token sets produce the zero vector, not an error.
	assert.Equal(t, []float32{0, 0}, space.AvgVector([]string{"cobol"}))
}

func TestSimilarity(t *testing.T) {
	space, err := NewSkillSpace(map[string][]float32{
		"python": {1, 0},
		"java":   {0, 1},
	})
	require.NoError(t, err)

	sim, ok := space.Similarity("python", "python")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, sim, 1e-9)

	sim, ok = space.Similarity("python", "java")
	assert.True(t, ok)
	assert.InDelta(t, 0.0, sim, 1e-9)

	_, ok = space.Similarity("python", "cobol")
	assert.False(t, ok)
}

func TestCosineZeroNorm(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, 0.0, Cosine([]float32{1, 0}, []float32{1, 0, 0}))
}

func TestLoadSkillSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	content := "3 2\npython 1.0 0.0\nmachine_learning 0.0 1.0\nsql 0.5 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	space, err := LoadSkillSpace(path)
	require.NoError(t, err)

	assert.Equal(t, 2, space.Dim())

	// Underscores in the token column become spaces.
	_, ok := space.Vector("machine learning")
	assert.True(t, ok)

	vec, ok := space.Vector("sql")
	assert.True(t, ok)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
}

func TestLoadSkillSpaceMissingFile(t *testing.T) {
	_, err := LoadSkillSpace(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
