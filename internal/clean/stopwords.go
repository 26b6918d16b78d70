package clean

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"zhwordvec/internal/fetch"
)

// LoadStopwords returns the Chinese stopword list, fetching it from url
// into cachePath on first use. The cached copy is reused afterwards.
func LoadStopwords(ctx context.Context, dl *fetch.Client, url, cachePath string) ([]string, error) {
	if _, err := os.Stat(cachePath); errors.Is(err, os.ErrNotExist) {
		if err := dl.Download(ctx, url, cachePath); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// DefaultSteps assembles the standard cleaning pipeline. withT2S enables
// traditional-to-simplified conversion, which the wiki corpus needs and
// the news corpus (already simplified) does not.
func DefaultSteps(ctx context.Context, dl *fetch.Client, stopwordsURL, stopwordsPath string, withT2S bool) ([]Step, error) {
	var steps []Step
	if withT2S {
		t2s, err := NewConvertT2S()
		if err != nil {
			return nil, err
		}
		steps = append(steps, t2s)
	}
	seg, err := NewSegment()
	if err != nil {
		return nil, err
	}
	steps = append(steps, seg, RemoveNonChinese{})
	stopwords, err := LoadStopwords(ctx, dl, stopwordsURL, stopwordsPath)
	if err != nil {
		return nil, err
	}
	steps = append(steps, NewRemoveStopwords(stopwords))
	return steps, nil
}
