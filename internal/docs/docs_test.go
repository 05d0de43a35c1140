package docs

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedPages(t *testing.T) {
	t.Parallel()

	lib, err := Load()
	require.NoError(t, err)

	pages := lib.List()
	require.Len(t, pages, 2)
	require.Equal(t, "getting-started", pages[0].Slug)
	require.Equal(t, "pipeline", pages[1].Slug)

	page, err := lib.Get("getting-started")
	require.NoError(t, err)
	require.Equal(t, "Getting Started", page.Title)
	require.Contains(t, page.HTML, "pip install -r requirements.txt")
	require.Contains(t, page.HTML, "<code>http://localhost:8000/health</code>")
}

func TestGetRejectsUnknownAndUnsafeSlugs(t *testing.T) {
	t.Parallel()

	lib, err := Load()
	require.NoError(t, err)

	for _, slug := range []string{"", "missing", "../getting-started", "a/b", `a\b`} {
		_, err := lib.Get(slug)
		require.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}

	page, err := lib.Get("/Getting-Started/")
	require.NoError(t, err)
	require.Equal(t, "getting-started", page.Slug)
}

func TestLoadFSSanitizesAndFallsBackToSlugTitle(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/release-notes.md": {Data: []byte("Hello <script>alert(1)</script> [home](/)\n")},
		"pages/intro.md":         {Data: []byte("---\ntitle: Intro\norder: -1\n---\n# Welcome\n")},
		"pages/skip.txt":         {Data: []byte("ignored")},
	}

	lib, err := LoadFS(fsys, "pages")
	require.NoError(t, err)

	pages := lib.List()
	require.Len(t, pages, 2)
	require.Equal(t, "intro", pages[0].Slug)
	require.Contains(t, pages[0].HTML, `<h1 id="welcome">Welcome</h1>`)

	notes := pages[1]
	require.Equal(t, "Release Notes", notes.Title)
	require.NotContains(t, notes.HTML, "<script>")
	require.Contains(t, notes.HTML, `rel="nofollow"`)
}

func TestLoadFSRejectsBadFrontMatter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/bad.md": {Data: []byte("---\ntitle: [unterminated\n---\nbody\n")},
	}

	_, err := LoadFS(fsys, "pages")
	require.Error(t, err)
	require.Contains(t, err.Error(), "front matter")
}

func TestSplitFrontMatterWithoutHeader(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("plain body")
	require.Empty(t, fm)
	require.Equal(t, "plain body", body)
}
