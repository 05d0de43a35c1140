package export_test

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/developerplugin/vocomate/internal/export"
	"github.com/developerplugin/vocomate/internal/testutil"
)

func TestFilePath(t *testing.T) {
	t.Parallel()

	out := filepath.FromSlash("/tmp/out")
	require.Equal(t, filepath.Join(out, "index.html"), export.FilePath(out, "/"))
	require.Equal(t, filepath.Join(out, "docs", "index.html"), export.FilePath(out, "/docs"))
	require.Equal(t, filepath.Join(out, "docs", "pipeline", "index.html"), export.FilePath(out, "/docs/pipeline"))
}

func TestWriteMatchesServedBytes(t *testing.T) {
	t.Parallel()

	s := testutil.BuildSite(t)
	out := t.TempDir()

	written, err := export.Write(context.Background(), s, out, nil)
	require.NoError(t, err)
	require.Len(t, written, len(s.Routes()))

	ts := testutil.NewServer(t, testutil.WithSource(s))
	for _, route := range s.Routes() {
		onDisk, err := os.ReadFile(export.FilePath(out, route))
		require.NoError(t, err)

		resp, err := http.Get(ts.URL + route)
		require.NoError(t, err)
		served, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		require.Equal(t, string(served), string(onDisk), route)
	}
}

func TestWriteOverwritesExistingFiles(t *testing.T) {
	t.Parallel()

	s := testutil.BuildSite(t)
	out := t.TempDir()
	index := filepath.Join(out, "index.html")
	require.NoError(t, os.WriteFile(index, []byte("stale"), 0o644))

	_, err := export.Write(context.Background(), s, out, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(index)
	require.NoError(t, err)
	doc, ok := s.Lookup("/")
	require.True(t, ok)
	require.Equal(t, doc.Body, got)
}

func TestWriteRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	_, err := export.Write(context.Background(), nil, t.TempDir(), nil)
	require.Error(t, err)

	_, err = export.Write(context.Background(), testutil.BuildSite(t), " ", nil)
	require.Error(t, err)
}

func TestWriteStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := export.Write(ctx, testutil.BuildSite(t), t.TempDir(), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, written)
}
