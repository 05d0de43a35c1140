package seo

import "strings"

const siteName = "Vocamate"

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Title string
}

// Meta is the head metadata rendered by the base layout.
type Meta struct {
	Title       string
	Description string
	URL         string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Absolute joins baseURL and path. An empty base keeps the path relative.
func Absolute(baseURL, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// New fills Open Graph and Twitter fields from title and description.
func New(baseURL, path, title, description, ogType string) Meta {
	url := Absolute(baseURL, path)
	if ogType == "" {
		ogType = "website"
	}
	return Meta{
		Title:       title,
		Description: description,
		URL:         url,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        ogType,
			URL:         url,
			SiteName:    siteName,
		},
		Twitter: Twitter{
			Card:  "summary",
			Title: title,
		},
	}
}
