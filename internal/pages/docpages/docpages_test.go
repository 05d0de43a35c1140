package docpages_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/developerplugin/vocomate/internal/docs"
	"github.com/developerplugin/vocomate/internal/pages/docpages"
	"github.com/developerplugin/vocomate/internal/testutil"
)

func render(t *testing.T, c templ.Component) []byte {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return []byte(sb.String())
}

func TestIndexListsPagesInOrder(t *testing.T) {
	t.Parallel()

	pages := []docs.Page{
		{Slug: "getting-started", Title: "Getting Started", Summary: "Install it."},
		{Slug: "pipeline", Title: "Voice Pipeline"},
	}
	doc := testutil.ParseHTML(t, render(t, docpages.Index(pages)))

	links := doc.Find("ul li > a")
	require.Equal(t, 2, links.Length())
	href, _ := links.Eq(0).Attr("href")
	require.Equal(t, "/docs/getting-started", href)
	require.Equal(t, "Voice Pipeline", links.Eq(1).Text())
	require.Equal(t, 1, doc.Find("ul li p").Length())
}

func TestArticleRendersSanitizedBody(t *testing.T) {
	t.Parallel()

	page := docs.Page{Slug: "faq", Title: "Q & A", HTML: "<h2 id=\"install\">Install</h2>"}
	out := render(t, docpages.Article(page))

	require.Contains(t, string(out), "<h1>Q &amp; A</h1>")
	require.Contains(t, string(out), "<article><h2 id=\"install\">Install</h2></article>")
	require.NotContains(t, string(out), "<p></p>")
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/docs/pipeline", docpages.PagePath("pipeline"))
}
