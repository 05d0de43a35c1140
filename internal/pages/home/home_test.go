package home_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/developerplugin/vocomate/internal/pages/home"
	"github.com/developerplugin/vocomate/internal/testutil"
)

const wantFragment = `<main style="padding:24px;max-width:720px">` +
	`<h1>Vocamate</h1>` +
	`<p>Open-source voice/agent starter. Python core (ASR/TTS/LLM) + this minimal Next.js site for docs/demo on Vercel.</p>` +
	`<ul><li><a href="/api/ping">API health (site)</a></li><li><a href="https://github.com/developerplugin/vocomate">GitHub Repo</a></li></ul>` +
	`<h2>Run the Python App</h2>` +
	"<pre>pip install -r requirements.txt\nuvicorn vocomate_app.main:app --reload</pre>" +
	`<p>Then open <code>http://localhost:8000/health</code></p>` +
	`</main>`

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func render(t *testing.T) []byte {
	t.Helper()

	out, err := home.Render(context.Background())
	require.NoError(t, err)
	return out
}

func TestPageRendersExactMarkup(t *testing.T) {
	t.Parallel()

	require.Equal(t, wantFragment, string(render(t)))
}

func TestPageSnapshot(t *testing.T) {
	snaps.WithConfig(snaps.Ext(".html")).MatchStandaloneSnapshot(t, string(render(t)))
}

func TestPageIsDeterministic(t *testing.T) {
	t.Parallel()

	first := render(t)
	second := render(t)
	require.True(t, bytes.Equal(first, second), "consecutive renders differ")
}

func TestPageStructure(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t))

	main := doc.Find("main")
	require.Equal(t, 1, main.Length())
	style, _ := main.Attr("style")
	require.Equal(t, home.ContainerStyle, style)

	h1 := doc.Find("h1")
	require.Equal(t, 1, h1.Length())
	require.Equal(t, home.Title, h1.Text())

	require.Equal(t, home.Description, doc.Find("main > p").First().Text())

	links := doc.Find("a")
	require.Equal(t, 2, links.Length())
	var got [][2]string
	links.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		got = append(got, [2]string{href, s.Text()})
	})
	require.Equal(t, [][2]string{
		{home.HealthPath, home.HealthLabel},
		{home.RepoURL, home.RepoLabel},
	}, got)

	require.Equal(t, home.RunHeading, doc.Find("h2").Text())

	pre := doc.Find("pre")
	require.Equal(t, 1, pre.Length())
	require.Equal(t, home.RunCommands, pre.Text())
	require.Equal(t, []string{home.InstallCommand, home.ServeCommand}, strings.Split(pre.Text(), "\n"))

	closing := doc.Find("main > p").Last()
	require.Equal(t, "Then open "+home.LocalHealthURL, closing.Text())
	code := closing.Find("code")
	require.Equal(t, 1, code.Length())
	require.Equal(t, home.LocalHealthURL, code.Text())
	require.Equal(t, 1, doc.Find("code").Length())
}

// TestPageElementSequence walks the parsed fragment in document order so any
// added or missing element fails the test.
func TestPageElementSequence(t *testing.T) {
	t.Parallel()

	nodes, err := html.ParseFragment(bytes.NewReader(render(t)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	var seq []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			seq = append(seq, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nodes[0])

	require.Equal(t, []string{
		"main", "h1", "p", "ul", "li", "a", "li", "a", "h2", "pre", "p", "code",
	}, seq)
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := home.Render(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
