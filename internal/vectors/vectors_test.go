package vectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVectors(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithHeader(t *testing.T) {
	m, err := Load(writeVectors(t, "3 3\n猫 1 0 0\n狗 0.9 0.1 0\n车 0 0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.Dim())
}

func TestLoadWithoutHeader(t *testing.T) {
	m, err := Load(writeVectors(t, "猫 1 0\n狗 0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.Dim())

	vec, ok := m.Vector("猫")
	require.True(t, ok)
	assert.InDelta(t, 1.0, vec[0], 1e-9)
}

func TestLoadRejectsDimensionMismatch(t *testing.T) {
	_, err := Load(writeVectors(t, "猫 1 0\n狗 0 1 2\n"))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	_, err := Load(writeVectors(t, ""))
	assert.Error(t, err)
}

func TestSimilarRanksByCosine(t *testing.T) {
	m, err := Load(writeVectors(t, "猫 1 0 0\n狗 0.9 0.1 0\n车 0 0 1\n船 0 0.1 1\n"))
	require.NoError(t, err)

	matches, err := m.Similar("猫", 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "狗", matches[0].Word)
	assert.Greater(t, matches[0].Score, matches[1].Score)

	_, err = m.Similar("不存在", 2)
	assert.Error(t, err)
}

func TestAnalogyQuery(t *testing.T) {
	m, err := Load(writeVectors(t, "国王 1 1\n男 1 0\n女 0 1\n女王 0.1 1\n农民 0.5 0.1\n"))
	require.NoError(t, err)

	matches, err := m.Analogy([]string{"国王", "女"}, []string{"男"}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "女王", matches[0].Word)
}

func TestRankExcludesQueryWords(t *testing.T) {
	m, err := Load(writeVectors(t, "甲 1 0\n乙 0.9 0.1\n丙 0.8 0.2\n"))
	require.NoError(t, err)

	matches, err := m.Similar("甲", 10)
	require.NoError(t, err)
	for _, match := range matches {
		assert.NotEqual(t, "甲", match.Word)
	}
}
