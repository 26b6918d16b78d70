package train

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhwordvec/internal/domain"
	"zhwordvec/internal/logger"
)

func params(input string) domain.TrainingParams {
	return domain.TrainingParams{
		InputFile:  input,
		NamePrefix: "test",
		VectorSize: 5,
		Window:     2,
		MinCount:   1,
		Workers:    1,
		Epochs:     1,
	}
}

func TestTrainEmptyCorpusFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	tr := NewWord2Vec(logger.Discard(), dir)
	_, err := tr.Train(context.Background(), params(input))

	var te *domain.TrainingError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "empty corpus")

	// no model files produced
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".txt") && e.Name() != "empty.txt",
			"unexpected artifact %s", e.Name())
	}
}

func TestTrainMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	tr := NewWord2Vec(logger.Discard(), dir)
	_, err := tr.Train(context.Background(), params(filepath.Join(dir, "nope.txt")))
	var te *domain.TrainingError
	assert.ErrorAs(t, err, &te)
}

func TestTrainRefusesToOverwriteArtifact(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(input, []byte("我 爱 你\n"), 0o644))

	p := params(input)
	existing := filepath.Join(dir, p.ArtifactName())
	require.NoError(t, os.WriteFile(existing, []byte("precious model"), 0o644))

	tr := NewWord2Vec(logger.Discard(), dir)
	_, err := tr.Train(context.Background(), p)
	require.ErrorIs(t, err, ErrArtifactExists)
	var te *domain.TrainingError
	assert.ErrorAs(t, err, &te)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "precious model", string(data), "existing artifact must stay untouched")
}

func TestTrainWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "corpus.txt")
	var b strings.Builder
	for range 50 {
		b.WriteString("我 爱 自然语言 处理\n")
		b.WriteString("他 学 自然语言 处理\n")
	}
	require.NoError(t, os.WriteFile(input, []byte(b.String()), 0o644))

	tr := NewWord2Vec(logger.Discard(), dir)
	artifact, err := tr.Train(context.Background(), params(input))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_vs5w2mc1.txt"), artifact)

	info, err := os.Stat(artifact)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.NoFileExists(t, artifact+".tmp")
}
