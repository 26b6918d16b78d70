package vectors

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Model holds word vectors loaded from a trained vector text file.
// Vectors are L2-normalized on load so cosine similarity reduces to a
// dot product.
type Model struct {
	words []string
	index map[string]int
	vecs  [][]float64
	dim   int
}

// Match is one similarity result.
type Match struct {
	Word  string
	Score float64
}

// Load parses a vector text file: one "word v1 ... vdim" row per line,
// with an optional "<count> <dim>" header as written by the C word2vec
// family of tools.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Model{index: make(map[string]int)}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if line == 1 && isCountHeader(fields) {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: malformed vector row", path, line)
		}
		vec := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, line, err)
			}
			vec[i] = v
		}
		if m.dim == 0 {
			m.dim = len(vec)
		} else if len(vec) != m.dim {
			return nil, fmt.Errorf("%s:%d: dimension mismatch: %d != %d", path, line, len(vec), m.dim)
		}
		normalize(vec)
		m.index[fields[0]] = len(m.words)
		m.words = append(m.words, fields[0])
		m.vecs = append(m.vecs, vec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.words) == 0 {
		return nil, fmt.Errorf("%s: no vectors", path)
	}
	return m, nil
}

func isCountHeader(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

func (m *Model) Len() int { return len(m.words) }
func (m *Model) Dim() int { return m.dim }

// Vector returns the normalized vector for word.
func (m *Model) Vector(word string) ([]float64, bool) {
	i, ok := m.index[word]
	if !ok {
		return nil, false
	}
	return m.vecs[i], true
}

// Similar returns the topN nearest words to word by cosine similarity,
// excluding the word itself.
func (m *Model) Similar(word string, topN int) ([]Match, error) {
	vec, ok := m.Vector(word)
	if !ok {
		return nil, fmt.Errorf("word %q not in vocabulary", word)
	}
	return m.rank(vec, topN, map[string]struct{}{word: {}}), nil
}

// Analogy ranks words by similarity to sum(positive) - sum(negative),
// the classic king - man + woman style query. Query words are excluded
// from the results.
func (m *Model) Analogy(positive, negative []string, topN int) ([]Match, error) {
	query := make([]float64, m.dim)
	exclude := make(map[string]struct{}, len(positive)+len(negative))
	for _, word := range positive {
		vec, ok := m.Vector(word)
		if !ok {
			return nil, fmt.Errorf("word %q not in vocabulary", word)
		}
		for i := range query {
			query[i] += vec[i]
		}
		exclude[word] = struct{}{}
	}
	for _, word := range negative {
		vec, ok := m.Vector(word)
		if !ok {
			return nil, fmt.Errorf("word %q not in vocabulary", word)
		}
		for i := range query {
			query[i] -= vec[i]
		}
		exclude[word] = struct{}{}
	}
	normalize(query)
	return m.rank(query, topN, exclude), nil
}

func (m *Model) rank(query []float64, topN int, exclude map[string]struct{}) []Match {
	if topN <= 0 {
		topN = 5
	}
	matches := make([]Match, 0, len(m.words))
	for i, word := range m.words {
		if _, skip := exclude[word]; skip {
			continue
		}
		matches = append(matches, Match{Word: word, Score: dot(m.vecs[i], query)})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if topN > len(matches) {
		topN = len(matches)
	}
	return matches[:topN]
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func normalize(vec []float64) {
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
}
