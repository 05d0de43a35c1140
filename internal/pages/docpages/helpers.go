package docpages

import "github.com/developerplugin/vocomate/internal/docs"

// IndexPath is the route of the docs listing.
const IndexPath = "/docs"

// PagePath returns the route serving the page with slug.
func PagePath(slug string) string {
	return IndexPath + "/" + slug
}

func pageHref(p docs.Page) string {
	return PagePath(p.Slug)
}
