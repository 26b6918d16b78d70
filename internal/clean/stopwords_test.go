package clean

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhwordvec/internal/fetch"
	"zhwordvec/internal/logger"
)

func TestLoadStopwordsFetchesOnceAndCaches(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		fmt.Fprint(w, `["的", "了", "和"]`)
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "stopwords.json")
	dl := fetch.New(logger.Discard())

	words, err := LoadStopwords(context.Background(), dl, srv.URL, cache)
	require.NoError(t, err)
	assert.Equal(t, []string{"的", "了", "和"}, words)

	again, err := LoadStopwords(context.Background(), dl, srv.URL, cache)
	require.NoError(t, err)
	assert.Equal(t, words, again)
	assert.EqualValues(t, 1, atomic.LoadInt32(&requests), "second load must come from the cache")
}
