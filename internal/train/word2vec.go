package train

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"

	"zhwordvec/internal/domain"
)

// ErrArtifactExists is returned when the derived model name collides with
// an existing file and overwrite was not requested.
var ErrArtifactExists = errors.New("model artifact already exists")

// Word2Vec trains embeddings by delegating to the wego library. The
// training algorithm itself is never implemented here; this type only
// maps hyperparameters, names the artifact and persists the vectors.
type Word2Vec struct {
	modelDir string
	log      *slog.Logger
}

func NewWord2Vec(log *slog.Logger, modelDir string) *Word2Vec {
	return &Word2Vec{modelDir: modelDir, log: log}
}

// Train runs the library over the cleaned corpus at p.InputFile and
// writes the vector file under the model directory. Fails without
// touching an existing artifact of the same derived name.
func (t *Word2Vec) Train(ctx context.Context, p domain.TrainingParams) (string, error) {
	artifact := filepath.Join(t.modelDir, p.ArtifactName())
	if _, err := os.Stat(artifact); err == nil && !p.Overwrite {
		return "", &domain.TrainingError{Input: p.InputFile, Err: fmt.Errorf("%w: %s", ErrArtifactExists, artifact)}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in, err := os.Open(p.InputFile)
	if err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	defer in.Close()
	if info, err := in.Stat(); err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	} else if info.Size() == 0 {
		return "", &domain.TrainingError{Input: p.InputFile, Err: errors.New("empty corpus")}
	}

	model, err := word2vec.New(
		word2vec.Dim(p.VectorSize),
		word2vec.Window(p.Window),
		word2vec.MinCount(p.MinCount),
		word2vec.Goroutines(p.Workers),
		word2vec.Iter(p.Epochs),
		word2vec.Verbose(),
	)
	if err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}

	t.log.Info("training begins",
		"input", p.InputFile, "vector_size", p.VectorSize, "window", p.Window,
		"min_count", p.MinCount, "workers", p.Workers, "epochs", p.Epochs)
	if err := model.Train(in); err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	t.log.Info("training ends")

	tmp := artifact + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	if err := model.Save(out, vector.Single); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	if err := os.Rename(tmp, artifact); err != nil {
		return "", &domain.TrainingError{Input: p.InputFile, Err: err}
	}
	t.log.Info("saved model", "artifact", artifact)
	return artifact, nil
}
