package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactName(t *testing.T) {
	p := TrainingParams{NamePrefix: "zhwiki", VectorSize: 100, Window: 5, MinCount: 5}
	assert.Equal(t, "zhwiki_vs100w5mc5.txt", p.ArtifactName())

	p = TrainingParams{NamePrefix: "news2016zh", VectorSize: 300, Window: 10, MinCount: 2}
	assert.Equal(t, "news2016zh_vs300w10mc2.txt", p.ArtifactName())
}

func TestStageErrorsUnwrap(t *testing.T) {
	cause := errors.New("connection reset")

	var err error = &DownloadError{URL: "http://example.com/a.bz2", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "http://example.com/a.bz2")

	wrapped := fmt.Errorf("fetch stage: %w", err)
	var de *DownloadError
	assert.ErrorAs(t, wrapped, &de)

	var te *TrainingError
	err = &TrainingError{Input: "corpus.txt", Err: cause}
	assert.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, cause)
}
