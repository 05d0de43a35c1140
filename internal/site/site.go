// Package site renders every page of the Vocamate site into immutable
// documents shared by the HTTP server and the static exporter.
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/developerplugin/vocomate/internal/docs"
	"github.com/developerplugin/vocomate/internal/layout"
	"github.com/developerplugin/vocomate/internal/pages/docpages"
	"github.com/developerplugin/vocomate/internal/pages/home"
)

// HTMLContentType is the content type of every rendered document.
const HTMLContentType = "text/html; charset=utf-8"

// ErrNotFound is returned for paths the site does not serve.
var ErrNotFound = errors.New("site: page not found")

// Document is one rendered page.
type Document struct {
	Path        string
	ContentType string
	Body        []byte
	ETag        string
}

// Source resolves a request path to a rendered document.
type Source interface {
	Document(ctx context.Context, path string) (Document, error)
}

// Options configures a build.
type Options struct {
	// BaseURL prefixes canonical URLs in head metadata. Empty keeps them relative.
	BaseURL string
	// Docs overrides the embedded documentation library.
	Docs *docs.Library
}

// Site is a fully rendered set of documents keyed by path.
type Site struct {
	byPath map[string]Document
	routes []string
	lib    *docs.Library
}

type route struct {
	path string
	page templ.Component
}

// Build renders every route once.
func Build(ctx context.Context, opts Options) (*Site, error) {
	lib := opts.Docs
	if lib == nil {
		var err error
		lib, err = docs.Load()
		if err != nil {
			return nil, err
		}
	}

	routes := []route{
		{path: "/", page: layout.Base(HomeMeta(opts.BaseURL), home.Page())},
		{path: docpages.IndexPath, page: layout.Base(DocsIndexMeta(opts.BaseURL), docpages.Index(lib.List()))},
	}
	for _, p := range lib.List() {
		routes = append(routes, route{
			path: docpages.PagePath(p.Slug),
			page: layout.Base(DocMeta(opts.BaseURL, p), docpages.Article(p)),
		})
	}

	s := &Site{byPath: make(map[string]Document, len(routes)), lib: lib}
	for _, r := range routes {
		doc, err := renderDocument(ctx, r.path, r.page)
		if err != nil {
			return nil, err
		}
		s.byPath[r.path] = doc
		s.routes = append(s.routes, r.path)
	}
	sort.Strings(s.routes)
	return s, nil
}

// Document returns the prebuilt document for p.
func (s *Site) Document(_ context.Context, p string) (Document, error) {
	doc, ok := s.Lookup(p)
	if !ok {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// Lookup returns the prebuilt document for p. Trailing slashes are ignored.
func (s *Site) Lookup(p string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	doc, ok := s.byPath[normalizePath(p)]
	if !ok {
		return Document{}, false
	}
	doc.Body = bytes.Clone(doc.Body)
	return doc, true
}

// Routes returns every served path in sorted order.
func (s *Site) Routes() []string {
	out := make([]string, len(s.routes))
	copy(out, s.routes)
	return out
}

// Docs exposes the documentation library the site was built from.
func (s *Site) Docs() *docs.Library { return s.lib }

// Live rebuilds the whole site for every request. Used in dev mode so edits to
// the docs library or layout show up without a restart.
type Live struct {
	Options Options
}

// Document renders p from scratch.
func (l Live) Document(ctx context.Context, p string) (Document, error) {
	s, err := Build(ctx, l.Options)
	if err != nil {
		return Document{}, err
	}
	return s.Document(ctx, p)
}

func renderDocument(ctx context.Context, p string, c templ.Component) (Document, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return Document{}, fmt.Errorf("site: render %s: %w", p, err)
	}
	body := buf.Bytes()
	return Document{
		Path:        p,
		ContentType: HTMLContentType,
		Body:        body,
		ETag:        ETag(body),
	}, nil
}

// ETag returns a weak validator derived from the SHA-256 of body.
func ETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
