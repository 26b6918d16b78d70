package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zhwordvec/internal/domain"
	"zhwordvec/internal/fetch"
)

// Fetcher wraps a download client with a live progress bar. When stdout
// is not a terminal it falls straight through to the client.
type Fetcher struct {
	inner *fetch.Client
}

func NewFetcher(inner *fetch.Client) *Fetcher {
	return &Fetcher{inner: inner}
}

func (f *Fetcher) Ensure(ctx context.Context, src domain.Source) error {
	if !isTerminal() {
		return f.inner.Ensure(ctx, src)
	}
	prog := tea.NewProgram(NewDownload(src.Name))
	done := make(chan error, 1)
	go func() {
		f.inner.Progress = func(written, total int64) {
			prog.Send(ProgressMsg{Written: written, Total: total})
		}
		err := f.inner.Ensure(ctx, src)
		f.inner.Progress = nil
		prog.Send(DoneMsg{Err: err})
		done <- err
	}()
	if _, err := prog.Run(); err != nil {
		return err
	}
	return <-done
}

func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
