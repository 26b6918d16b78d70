package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/cenkalti/backoff/v4"

	"zhwordvec/internal/domain"
)

var errShortBody = errors.New("incomplete transfer")

// Client downloads corpus archives. Downloads stream to a ".part" file
// that is renamed onto the destination only after the full body arrived,
// so the destination path never holds a partial file.
type Client struct {
	http       *http.Client
	log        *slog.Logger
	gdriveURL  string
	MaxRetries uint64

	// Progress, when set, is called with (bytes written, total or -1)
	// as the body streams in.
	Progress func(written, total int64)
}

// New creates a download client. The underlying HTTP client carries no
// total timeout: archives are gigabytes, cancellation comes from ctx.
// It keeps a cookie jar because Google Drive validates the virus-scan
// confirm token against the session cookie set alongside it.
func New(log *slog.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		http:       &http.Client{Jar: jar},
		log:        log,
		gdriveURL:  gdriveEndpoint,
		MaxRetries: 3,
	}
}

// Ensure makes src's archive exist locally, downloading it if absent.
func (c *Client) Ensure(ctx context.Context, src domain.Source) error {
	if _, err := os.Stat(src.ArchivePath); err == nil {
		c.log.Info("archive already downloaded", "source", src.Name, "path", src.ArchivePath)
		return nil
	}
	if src.GDriveFileID != "" {
		c.log.Info("downloading from Google Drive", "source", src.Name, "file_id", src.GDriveFileID)
		return c.ensureGDrive(ctx, src.GDriveFileID, src.ArchivePath)
	}
	c.log.Info("downloading", "source", src.Name, "url", src.URL)
	return c.Download(ctx, src.URL, src.ArchivePath)
}

// Download fetches url to dest unconditionally, retrying transient
// failures with exponential backoff.
func (c *Client) Download(ctx context.Context, url, dest string) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status %s", resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		return c.save(resp, dest)
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.MaxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return &domain.DownloadError{URL: url, Err: err}
	}
	return nil
}

// save streams the response body to dest via a temp file. The received
// size is checked against Content-Length before the rename.
func (c *Client) save(resp *http.Response, dest string) error {
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return backoff.Permanent(err)
	}
	var w io.Writer = f
	if c.Progress != nil {
		w = io.MultiWriter(f, &progressWriter{total: resp.ContentLength, report: c.Progress})
	}
	written, err := io.Copy(w, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && resp.ContentLength >= 0 && written != resp.ContentLength {
		err = fmt.Errorf("%w: got %d of %d bytes", errShortBody, written, resp.ContentLength)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

type progressWriter struct {
	total   int64
	written int64
	report  func(written, total int64)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	p.report(p.written, p.total)
	return len(b), nil
}
