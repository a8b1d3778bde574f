// Package feed renders collected social feed items as RSS 2.0, with Atom
// and HTML preview documents as alternate outputs.
package feed

// Item is one social feed entry as written out by the collector. Items are
// read-only inputs: rendering projects them into output text and never
// mutates or stores them.
type Item struct {
	ID        string          `json:"id" yaml:"id"`
	URL       string          `json:"url" yaml:"url"`
	Author    string          `json:"author" yaml:"author"`
	Source    string          `json:"source" yaml:"source"`
	Category  *string         `json:"category,omitempty" yaml:"category,omitempty"`
	Content   string          `json:"content,omitempty" yaml:"content,omitempty"`
	Timestamp Timestamp       `json:"timestamp" yaml:"timestamp"`
	Metadata  *TwitterMetrics `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// TwitterMetrics carries engagement counts for twitter items. Counts the
// collector left out stay zero.
type TwitterMetrics struct {
	Likes    int `json:"likes" yaml:"likes"`
	Retweets int `json:"retweets" yaml:"retweets"`
	Replies  int `json:"replies" yaml:"replies"`
}

// Options configures the channel metadata. Empty fields fall back to the
// Factory AI defaults.
type Options struct {
	Title       string
	Link        string
	Description string
}

// Channel defaults applied when the corresponding option is empty.
const (
	DefaultTitle       = "Factory AI Social Feed"
	DefaultLink        = "https://factory.ai"
	DefaultDescription = "Aggregated mentions from Twitter, Reddit, and GitHub"
)

// Fixed envelope values. These identify the producing system and are not
// configurable.
const (
	feedLanguage  = "en-us"
	feedGenerator = "Factory AI Feed Scraper"
	feedTTL       = 10
)

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Link == "" {
		o.Link = DefaultLink
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	return o
}

// sourceNames maps collector source identifiers to reader-facing names.
// Identifiers without an entry pass through unchanged.
var sourceNames = map[string]string{
	"twitter": "Twitter/X",
	"reddit":  "Reddit",
	"github":  "GitHub",
}

// SourceDisplayName resolves the display name for a source identifier.
func SourceDisplayName(source string) string {
	if name, ok := sourceNames[source]; ok {
		return name
	}
	return source
}
