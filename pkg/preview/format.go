// Package preview renders feed items for terminal inspection, either as
// one-off text dumps or through an interactive Bubble Tea browser.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/htmltext"
)

const (
	listTitleWidth   = 70
	contentWrapWidth = 70
	contentClipBytes = 1000
)

// FormatCompactListItem renders one list row: index, source, date, title.
// Example: " 1. [twitter] Tue, 01 Oct 2024 12:30:00 GMT  Post Title"
func FormatCompactListItem(index int, item feed.Item) string {
	title := truncate(feed.DeriveTitle(item), listTitleWidth)
	return fmt.Sprintf("%2d. [%-7s] %s  %s", index+1, item.Source, item.Timestamp.RFC822(), title)
}

// FormatDetailedItem lays out every populated field of an item, one labeled
// line per field, for the detail screen.
func FormatDetailedItem(item feed.Item) string {
	rail := strings.Repeat("═", 72) + "\n"

	var b strings.Builder
	b.WriteString(rail)
	fmt.Fprintf(&b, "Title: %s\n", feed.DeriveTitle(item))
	fmt.Fprintf(&b, "Link: %s\n", item.URL)
	if item.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", item.Author)
	}
	fmt.Fprintf(&b, "Source: %s\n", feed.SourceDisplayName(item.Source))
	if item.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", *item.Category)
	}
	if item.Source == "twitter" && item.Metadata != nil {
		b.WriteString(feed.FormatMetrics(item.Metadata) + "\n")
	}
	if t, ok := item.Timestamp.Time(); ok {
		fmt.Fprintf(&b, "Posted: %s\n", formatTimeAgo(t))
	} else {
		fmt.Fprintf(&b, "Posted: %s (raw: %q)\n", feed.InvalidDate, item.Timestamp.Raw())
	}
	if text := htmltext.Extract(item.Content); text != "" {
		fmt.Fprintf(&b, "\nContent:\n%s\n", wrapText(clip(text, contentClipBytes), contentWrapWidth))
	}
	b.WriteString(rail)

	return b.String()
}

// FormatXMLItem renders the RSS item element exactly as it appears in the
// generated feed, wrapped for terminal display.
func FormatXMLItem(item feed.Item) string {
	return wrapXMLContent(feed.RenderItem(item), 80)
}

// truncate cuts a string to max runes, ellipsized.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// clip hard-cuts s at max bytes so a huge post cannot flood the detail screen.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// wrapText reflows s at word boundaries so no line exceeds width.
func wrapText(s string, width int) string {
	if width <= 0 {
		width = contentWrapWidth
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// wrapXMLContent breaks long lines for terminal display without altering a
// single rendered character. Break points prefer a space or a closing angle
// bracket near the width limit.
func wrapXMLContent(rendered string, width int) string {
	var out []string
	for _, line := range strings.Split(rendered, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			cut := width
			for i := width; i > 0 && i > width-20; i-- {
				if runes[i] == ' ' || runes[i] == '>' {
					cut = i + 1
					break
				}
			}
			out = append(out, string(runes[:cut]))
			runes = runes[cut:]
		}
		out = append(out, string(runes))
	}
	return strings.Join(out, "\n") + "\n"
}

// formatTimeAgo renders t relative to now, falling back to a plain date for
// anything older than a week.
func formatTimeAgo(t time.Time) string {
	since := time.Since(t)
	switch {
	case since < time.Minute:
		return "just now"
	case since < time.Hour:
		return agoString(int(since.Minutes()), "minute")
	case since < 24*time.Hour:
		return agoString(int(since.Hours()), "hour")
	case since < 7*24*time.Hour:
		return agoString(int(since.Hours())/24, "day")
	}
	return t.Format("2006-01-02")
}

func agoString(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
