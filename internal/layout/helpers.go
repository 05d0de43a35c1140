package layout

// ldScript wraps an already-encoded JSON-LD payload. Payloads come from
// seo.JSON, which escapes '<' so the script element cannot be closed early.
func ldScript(payload string) string {
	return `<script type="application/ld+json">` + payload + `</script>`
}
