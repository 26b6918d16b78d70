package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReleasesLockAfterFailure(t *testing.T) {
	dir := t.TempDir()
	vectors := filepath.Join(dir, "vectors.txt")
	require.NoError(t, os.WriteFile(vectors, []byte("2 3\n猫 0.1 0.2 0.3\n狗 0.4 0.5 0.6\n"), 0o644))
	db := filepath.Join(dir, "wordvector.db")

	var out bytes.Buffer
	require.NoError(t, run([]string{"--db", db, "--import", vectors}, &out))

	// A failed lookup must still close the store: a subsequent open
	// would fail on leveldb's lock file otherwise.
	err := run([]string{"--db", db, "--get", "鸟"}, &out)
	require.ErrorContains(t, err, "not in database")

	out.Reset()
	require.NoError(t, run([]string{"--db", db, "--get", "猫"}, &out))
	assert.Contains(t, out.String(), "猫 dim=3")
}

func TestRunWithoutActionIsUsageError(t *testing.T) {
	err := run(nil, new(bytes.Buffer))
	require.ErrorIs(t, err, errUsage)
}
