package site

import (
	"github.com/developerplugin/vocomate/internal/docs"
	"github.com/developerplugin/vocomate/internal/pages/docpages"
	"github.com/developerplugin/vocomate/internal/pages/home"
	"github.com/developerplugin/vocomate/internal/seo"
)

// HomeMeta is the head metadata of the landing page.
func HomeMeta(baseURL string) seo.Meta {
	m := seo.New(baseURL, "/", home.Title, home.Description, "website")
	m.JSONLD = []string{
		seo.JSON(seo.WebSite(home.Title, m.URL)),
		seo.JSON(seo.SoftwareSourceCode(home.Title, home.Description, home.RepoURL, "Python")),
	}
	return m
}

// DocsIndexMeta is the head metadata of the docs listing.
func DocsIndexMeta(baseURL string) seo.Meta {
	m := seo.New(baseURL, docpages.IndexPath, "Docs | "+home.Title, "Documentation for the "+home.Title+" voice/agent starter.", "website")
	m.JSONLD = []string{
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: home.Title, Item: seo.Absolute(baseURL, "/")},
			{Name: "Docs", Item: m.URL},
		})),
	}
	return m
}

// DocMeta is the head metadata of a documentation page.
func DocMeta(baseURL string, p docs.Page) seo.Meta {
	m := seo.New(baseURL, docpages.PagePath(p.Slug), p.Title+" | "+home.Title, p.Summary, "article")
	m.JSONLD = []string{
		seo.JSON(seo.TechArticle(p.Title, p.Summary, m.URL)),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: home.Title, Item: seo.Absolute(baseURL, "/")},
			{Name: "Docs", Item: seo.Absolute(baseURL, docpages.IndexPath)},
			{Name: p.Title, Item: m.URL},
		})),
	}
	return m
}
