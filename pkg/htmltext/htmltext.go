// Package htmltext reduces collector HTML fragments to plain text for
// terminal display.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the text content of an HTML fragment with tags removed
// and whitespace collapsed. script and style bodies are skipped. Input that
// cannot be parsed is returned trimmed as-is.
func Extract(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(text.String()), " ")
}
