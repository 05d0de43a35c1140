package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsolute(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", Absolute("", ""))
	require.Equal(t, "/docs", Absolute("", "docs"))
	require.Equal(t, "https://vocamate.example/docs", Absolute("https://vocamate.example/", "/docs"))
}

func TestNewFillsOpenGraph(t *testing.T) {
	t.Parallel()

	m := New("https://vocamate.example", "/", "Vocamate", "desc", "")
	require.Equal(t, "https://vocamate.example/", m.URL)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "Vocamate", m.OG.SiteName)
	require.Equal(t, "Vocamate", m.Twitter.Title)
	require.Equal(t, "summary", m.Twitter.Card)
}

func TestJSONEscapesScriptBreakout(t *testing.T) {
	t.Parallel()

	out := JSON(TechArticle("</script><b>x</b>", "", ""))
	require.NotContains(t, out, "</script>")
	require.Contains(t, out, `\u003c/script\u003e`)
}

func TestBreadcrumbListPositions(t *testing.T) {
	t.Parallel()

	got := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "/"}, {Name: "Docs", Item: "/docs"}})
	items, ok := got["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[1]["position"])
	require.Equal(t, "/docs", items[1]["item"])
}
