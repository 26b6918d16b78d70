package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"zhwordvec/internal/domain"
)

// Unzip unpacks zipPath into destDir, preserving the archive's layout.
func Unzip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return &domain.ExtractionError{Path: zipPath, Err: err}
	}
	defer r.Close()
	for _, f := range r.File {
		if err := unzipFile(f, destDir); err != nil {
			return &domain.ExtractionError{Path: zipPath, Err: err}
		}
	}
	return nil
}

func unzipFile(f *zip.File, destDir string) error {
	dest := filepath.Join(destDir, f.Name)
	// reject entries escaping the destination
	if rel, err := filepath.Rel(destDir, dest); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("illegal entry path %q", f.Name)
	}
	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
