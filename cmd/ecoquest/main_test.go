package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/ecoquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_File(t *testing.T) {
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "data", "ecoquest.db")

	database, err := openStore(path, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	defer database.Close()

	assert.FileExists(t, path)
	assert.Empty(t, logs.String())
}

func TestOpenStore_FallsBackToMemory(t *testing.T) {
	var logs bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	database, err := openStore(filepath.Join(blocker, "ecoquest.db"), slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	defer database.Close()

	assert.Contains(t, logs.String(), "storage unavailable")
	testutil.SetRawKey(t, database, "completed", "1")
	assert.Equal(t, 1, testutil.CountKeys(t, database))
}
