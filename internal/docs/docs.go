// Package docs loads the embedded documentation pages served under /docs.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed content/*.md
var content embed.FS

// ErrNotFound is returned for unknown or malformed slugs.
var ErrNotFound = errors.New("docs: page not found")

// Page is a rendered documentation page.
type Page struct {
	Slug    string
	Title   string
	Summary string
	Order   int
	// HTML is the sanitized body. It is safe to write without escaping.
	HTML string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Order   int    `yaml:"order"`
}

// Library holds every embedded page, rendered once.
type Library struct {
	pages  []Page
	bySlug map[string]int
}

// Load parses and renders the embedded pages.
func Load() (*Library, error) {
	return LoadFS(content, "content")
}

// LoadFS reads every *.md file directly under dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("docs: read %s: %w", dir, err)
	}

	md := newMarkdown()
	policy := newHTMLPolicy()
	lib := &Library{bySlug: map[string]int{}}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(entry.Name(), ".md"))
		if slug == "" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("docs: read %s: %w", entry.Name(), err)
		}
		page, err := renderPage(md, policy, slug, raw)
		if err != nil {
			return nil, err
		}
		lib.pages = append(lib.pages, page)
	}

	sort.SliceStable(lib.pages, func(i, j int) bool {
		if lib.pages[i].Order != lib.pages[j].Order {
			return lib.pages[i].Order < lib.pages[j].Order
		}
		return lib.pages[i].Slug < lib.pages[j].Slug
	})
	for i, p := range lib.pages {
		lib.bySlug[p.Slug] = i
	}
	return lib, nil
}

// List returns the pages ordered by front matter order, then slug.
func (l *Library) List() []Page {
	if l == nil {
		return nil
	}
	out := make([]Page, len(l.pages))
	copy(out, l.pages)
	return out
}

// Get returns the page for slug.
func (l *Library) Get(slug string) (Page, error) {
	if l == nil {
		return Page{}, ErrNotFound
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	i, ok := l.bySlug[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return l.pages[i], nil
}

func renderPage(md goldmark.Markdown, policy *bluemonday.Policy, slug string, raw []byte) (Page, error) {
	fm, body := splitFrontMatter(string(raw))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("docs: parse front matter %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("docs: render %s: %w", slug, err)
	}

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Order:   front.Order,
		HTML:    string(policy.SanitizeBytes(buf.Bytes())),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
