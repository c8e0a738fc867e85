package services

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// SkillSpace is a read-only distributional embedding over skill tokens,
// trained offline and exported in word2vec text format. It is loaded once
// at service start and shared across evaluations without locking.
type SkillSpace struct {
	dim     int
	vectors map[string][]float32
	vocab   []string
}

// NewSkillSpace builds a space from an in-memory token→vector map. All
// vectors must share one dimension.
func NewSkillSpace(vectors map[string][]float32) (*SkillSpace, error) {
	s := &SkillSpace{vectors: make(map[string][]float32, len(vectors))}
	for token, vec := range vectors {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || len(vec) == 0 {
			continue
		}
		if s.dim == 0 {
			s.dim = len(vec)
		}
		if len(vec) != s.dim {
			return nil, fmt.Errorf("vector for %q has dimension %d, want %d", token, len(vec), s.dim)
		}
		s.vectors[token] = vec
		s.vocab = append(s.vocab, token)
	}
	sort.Strings(s.vocab)
	return s, nil
}

// LoadSkillSpace reads a word2vec text-format file: an optional
// "count dim" header line followed by one "token v1 v2 ... vD" line per
// token. Multi-word skill phrases use underscores in the token column.
func LoadSkillSpace(path string) (*SkillSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skill model: %w", err)
	}
	defer f.Close()

	vectors := make(map[string][]float32)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if first {
			first = false
			// Header line: "<vocab size> <dimension>".
			if len(fields) == 2 {
				if _, err := strconv.Atoi(fields[0]); err == nil {
					continue
				}
			}
		}
		if len(fields) < 2 {
			continue
		}
		token := strings.ReplaceAll(fields[0], "_", " ")
		vec := make([]float32, 0, len(fields)-1)
		ok := true
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				ok = false
				break
			}
			vec = append(vec, float32(v))
		}
		if ok {
			vectors[token] = vec
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill model: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("skill model %s contains no vectors", path)
	}

	return NewSkillSpace(vectors)
}

func (s *SkillSpace) Dim() int { return s.dim }

// Vocab returns the vocabulary in sorted order, so callers that iterate it
// produce deterministic results.
func (s *SkillSpace) Vocab() []string { return s.vocab }

// Vector looks up the embedding for a token after trimming and lowercasing.
func (s *SkillSpace) Vector(token string) ([]float32, bool) {
	vec, ok := s.vectors[strings.ToLower(strings.TrimSpace(token))]
	return vec, ok
}

// AvgVector returns the mean of the embeddings for the known tokens. Tokens
// absent from the vocabulary are ignored; if none are known the zero vector
// is returned.
func (s *SkillSpace) AvgVector(tokens []string) []float32 {
	avg := make([]float32, s.dim)
	count := 0
	for _, token := range tokens {
		vec, ok := s.Vector(token)
		if !ok {
			continue
		}
		for i, v := range vec {
			avg[i] += v
		}
		count++
	}
	if count == 0 {
		return avg
	}
	for i := range avg {
		avg[i] /= float32(count)
	}
	return avg
}

// Similarity returns the cosine similarity between two tokens' embeddings.
// The second result is false when either token is out of vocabulary.
func (s *SkillSpace) Similarity(a, b string) (float64, bool) {
	va, okA := s.Vector(a)
	vb, okB := s.Vector(b)
	if !okA || !okB {
		return 0, false
	}
	return Cosine(va, vb), true
}

// Cosine computes cosine similarity, returning 0 when either vector has
// zero norm.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
