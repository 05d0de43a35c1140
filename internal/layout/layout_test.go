package layout

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/developerplugin/vocomate/internal/seo"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestBaseWrapsBody(t *testing.T) {
	t.Parallel()

	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<main>hi</main>")
		return err
	})
	meta := seo.New("https://vocamate.example", "/", "Vocamate", "Voice starter", "")
	meta.JSONLD = []string{seo.JSON(seo.WebSite("Vocamate", meta.URL))}

	out := render(t, Base(meta, body))

	require.True(t, strings.HasPrefix(out, "<!doctype html><html lang=\"en\">"))
	require.Contains(t, out, "<title>Vocamate</title>")
	require.Contains(t, out, `<meta name="description" content="Voice starter">`)
	require.Contains(t, out, `<meta property="og:url" content="https://vocamate.example/">`)
	require.Contains(t, out, `<script type="application/ld+json">{"@context":"https://schema.org"`)
	require.True(t, strings.HasSuffix(out, "<body><main>hi</main></body></html>"))
}

func TestBaseOmitsEmptyDescription(t *testing.T) {
	t.Parallel()

	out := render(t, Base(seo.Meta{Title: "<x>"}, templ.NopComponent))

	require.NotContains(t, out, `name="description"`)
	require.NotContains(t, out, `property="og:url"`)
	require.Contains(t, out, "<title>&lt;x&gt;</title>")
}
