package feed

import "html/template"

// TemplateFuncs returns the helper functions available to feed templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"displayName": SourceDisplayName,
		"deriveTitle": DeriveTitle,
		"metrics":     FormatMetrics,
		"rfc822":      formatTimestamp,
		"rawHTML":     rawHTML,
	}
}

// formatTimestamp adapts Timestamp.RFC822 for template use.
func formatTimestamp(ts Timestamp) string {
	return ts.RFC822()
}

// rawHTML marks collector content as pre-rendered markup so the HTML
// template does not escape it.
func rawHTML(s string) template.HTML {
	return template.HTML(s)
}
