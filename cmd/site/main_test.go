package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/developerplugin/vocomate/internal/pages/home"
)

func TestRenderPrintsFragment(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).RunContext(context.Background(), []string{"vocamate-site", "render"}))

	want, err := home.Render(context.Background())
	require.NoError(t, err)
	require.Equal(t, string(want), out.String())
}

func TestExportWritesSite(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := newApp(&out).RunContext(context.Background(), []string{
		"vocamate-site", "--env-file", "", "--log-level", "error",
		"export", "--out", dir,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Contains(t, lines, filepath.Join(dir, "index.html"))
	require.Contains(t, lines, filepath.Join(dir, "docs", "index.html"))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	fragment, err := home.Render(context.Background())
	require.NoError(t, err)
	require.Contains(t, string(index), string(fragment))
}
