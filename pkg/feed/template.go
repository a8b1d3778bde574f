package feed

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"
)

// previewTemplate is the file name of the HTML preview page template.
const previewTemplate = "preview.html.tmpl"

// TemplateData is the payload handed to the HTML preview template.
type TemplateData struct {
	Title       string
	Link        string
	Description string
	Generated   string
	Items       []Item
}

// RenderHTML renders items as a standalone HTML page for checking the feed
// in a browser. The default template is compiled into the binary; a local
// templates directory takes precedence when present.
func RenderHTML(items []Item, opts Options) (string, error) {
	opts = opts.withDefaults()

	tmpl, err := loadTemplate(previewTemplate)
	if err != nil {
		return "", err
	}

	data := &TemplateData{
		Title:       opts.Title,
		Link:        opts.Link,
		Description: opts.Description,
		Generated:   formatRFC822(now()),
		Items:       items,
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", previewTemplate, err)
	}

	slog.Debug("Generated HTML preview", "items", len(items))
	return out.String(), nil
}

// loadTemplate parses the named template from the search path.
func loadTemplate(name string) (*template.Template, error) {
	content, err := readTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("template %s not found: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}
