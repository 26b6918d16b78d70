package domain

import (
	"context"
	"fmt"
)

// ArchiveKind identifies how a downloaded corpus archive is packed.
type ArchiveKind string

const (
	ArchiveBz2  ArchiveKind = "bz2"
	ArchiveZip  ArchiveKind = "zip"
	ArchiveNone ArchiveKind = "none"
)

// Source describes one corpus: where it comes from and where its
// artifacts live on disk. All paths are absolute or relative to the
// working directory; stages skip work when their artifact already exists.
type Source struct {
	Name          string
	URL           string
	GDriveFileID  string
	Archive       ArchiveKind
	ArchivePath   string
	ExtractedPath string
	CleanedPath   string
}

// TrainingParams are the hyperparameters handed to the embedding library,
// plus the input corpus and output naming.
type TrainingParams struct {
	InputFile  string
	NamePrefix string
	VectorSize int
	Window     int
	MinCount   int
	Workers    int
	Epochs     int
	Overwrite  bool
}

// ArtifactName derives the model file name from the prefix and the
// hyperparameters, so differently-parameterized runs never share a name.
func (p TrainingParams) ArtifactName() string {
	return fmt.Sprintf("%s_vs%dw%dmc%d.txt", p.NamePrefix, p.VectorSize, p.Window, p.MinCount)
}

// RecordIterator streams raw text records (articles or sentences) out of
// an extracted corpus. Next returns io.EOF after the last record.
type RecordIterator interface {
	Next() (string, error)
	Close() error
}

// Fetcher ensures a source's archive exists locally, downloading it if absent.
type Fetcher interface {
	Ensure(ctx context.Context, src Source) error
}

// Extractor unpacks a source's archive and streams its text records.
type Extractor interface {
	Extract(ctx context.Context, src Source) (RecordIterator, error)
}

// Cleaner turns raw records into the cleaned corpus file: one record per
// line, tokens separated by single spaces, in input order.
type Cleaner interface {
	Clean(ctx context.Context, records RecordIterator, outPath string) error
}

// Trainer runs the external embedding library over a cleaned corpus and
// returns the path of the persisted model artifact.
type Trainer interface {
	Train(ctx context.Context, params TrainingParams) (string, error)
}
