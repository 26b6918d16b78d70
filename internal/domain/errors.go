package domain

import "fmt"

// DownloadError reports a failed or incomplete network transfer.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string { return fmt.Sprintf("download %s: %v", e.URL, e.Err) }
func (e *DownloadError) Unwrap() error { return e.Err }

// ExtractionError reports a malformed or unreadable archive.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string { return fmt.Sprintf("extract %s: %v", e.Path, e.Err) }
func (e *ExtractionError) Unwrap() error { return e.Err }

// CleaningError reports a failure producing the cleaned corpus.
type CleaningError struct {
	Path string
	Err  error
}

func (e *CleaningError) Error() string { return fmt.Sprintf("clean %s: %v", e.Path, e.Err) }
func (e *CleaningError) Unwrap() error { return e.Err }

// TrainingError reports a failure from the embedding library or its inputs.
type TrainingError struct {
	Input string
	Err   error
}

func (e *TrainingError) Error() string { return fmt.Sprintf("train %s: %v", e.Input, e.Err) }
func (e *TrainingError) Unwrap() error { return e.Err }
