package feed

import (
	"fmt"
	"strings"
	"time"
)

// now is a hook for pinning lastBuildDate in tests.
var now = time.Now

// RenderFeed assembles a complete RSS 2.0 document from the given items.
// Items appear in input order; nothing is sorted, deduplicated, or
// filtered. An empty item list still produces a valid channel envelope.
// The function is total for well-typed input: malformed per-item data
// degrades per field (see Timestamp) instead of aborting the feed.
func RenderFeed(items []Item, opts Options) string {
	opts = opts.withDefaults()

	var rss strings.Builder
	rss.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	rss.WriteString("<rss version=\"2.0\" xmlns:atom=\"http://www.w3.org/2005/Atom\">\n")
	rss.WriteString("  <channel>\n")
	rss.WriteString(fmt.Sprintf("    <title>%s</title>\n", EscapeXML(opts.Title)))
	rss.WriteString(fmt.Sprintf("    <link>%s</link>\n", EscapeXML(opts.Link)))
	rss.WriteString(fmt.Sprintf("    <description>%s</description>\n", EscapeXML(opts.Description)))
	rss.WriteString(fmt.Sprintf("    <language>%s</language>\n", feedLanguage))
	rss.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", formatRFC822(now())))
	rss.WriteString(fmt.Sprintf("    <generator>%s</generator>\n", feedGenerator))
	rss.WriteString(fmt.Sprintf("    <ttl>%d</ttl>\n", feedTTL))

	if len(items) > 0 {
		fragments := make([]string, 0, len(items))
		for _, item := range items {
			fragments = append(fragments, RenderItem(item))
		}
		rss.WriteString(strings.Join(fragments, "\n"))
		rss.WriteString("\n")
	}

	rss.WriteString("  </channel>\n")
	rss.WriteString("</rss>\n")

	return rss.String()
}

// RenderItem renders one <item> fragment, indented for placement inside
// the channel element. Missing optional fields are defaulted, never an
// error.
func RenderItem(item Item) string {
	link := EscapeXML(item.URL)

	// Absent category means the default label; a present but empty
	// category is escaped like any other value.
	category := "uncategorized"
	if item.Category != nil {
		category = EscapeXML(*item.Category)
	}

	var b strings.Builder
	b.WriteString("    <item>\n")
	b.WriteString(fmt.Sprintf("      <title>%s</title>\n", EscapeXML(DeriveTitle(item))))
	b.WriteString(fmt.Sprintf("      <link>%s</link>\n", link))
	b.WriteString(fmt.Sprintf("      <description><![CDATA[%s]]></description>\n", buildDescription(item)))
	b.WriteString(fmt.Sprintf("      <author>%s</author>\n", EscapeXML(item.Author)))
	b.WriteString(fmt.Sprintf("      <category>%s</category>\n", category))
	b.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", item.Timestamp.RFC822()))
	b.WriteString(fmt.Sprintf("      <guid isPermaLink=\"false\">%s</guid>\n", EscapeXML(item.ID)))
	b.WriteString(fmt.Sprintf("      <source url=\"%s\">%s</source>\n", link, EscapeXML(SourceDisplayName(item.Source))))
	b.WriteString("    </item>")

	return b.String()
}

// buildDescription assembles the CDATA HTML block for an item. The markup
// is handed to RSS readers verbatim, so nothing here is XML-escaped.
// Content containing a CDATA terminator would corrupt the document; the
// collector is responsible for never emitting one.
func buildDescription(item Item) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p><strong>Author:</strong> %s</p>", item.Author))
	b.WriteString(fmt.Sprintf("<p><strong>Source:</strong> %s</p>", SourceDisplayName(item.Source)))
	if item.Category != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Category:</strong> %s</p>", *item.Category))
	}
	b.WriteString("<hr/>")
	b.WriteString(fmt.Sprintf("<p>%s</p>", item.Content))

	if item.Source == "twitter" && item.Metadata != nil {
		b.WriteString("<hr/>")
		b.WriteString(fmt.Sprintf("<p><small>%s</small></p>", FormatMetrics(item.Metadata)))
	}

	return b.String()
}

// FormatMetrics renders the engagement line shown for twitter items.
// Nil metrics yield an empty string.
func FormatMetrics(m *TwitterMetrics) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("Likes: %d | Retweets: %d | Replies: %d", m.Likes, m.Retweets, m.Replies)
}

// maxTitleLen caps derived titles, ellipsis included.
const maxTitleLen = 80

// DeriveTitle computes a title for an item, which has none of its own.
// Content is whitespace-collapsed and cut at maxTitleLen characters; only
// items with no content at all fall back to a "{source} post by {author}"
// label built from the raw, unmapped fields. Whitespace-only content
// collapses to an empty title, not the fallback.
func DeriveTitle(item Item) string {
	if item.Content == "" {
		return fmt.Sprintf("%s post by %s", item.Source, item.Author)
	}

	content := strings.Join(strings.Fields(item.Content), " ")

	// Plain character cut, not word-aware.
	if runes := []rune(content); len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen-3]) + "..."
	}
	return content
}

// EscapeXML escapes XML special characters. The ampersand pass runs first
// so entities introduced by the later passes are not double-escaped.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
