package feed

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/feeds"
)

// ToAtomFeed converts items into an Atom 1.0 document for readers that
// prefer it over RSS. Field derivation matches the RSS renderer; a
// timestamp that failed to parse surfaces as the zero time here since Atom
// has no sentinel convention.
func ToAtomFeed(items []Item, opts Options) (string, error) {
	opts = opts.withDefaults()

	f := &feeds.Feed{
		Title:       opts.Title,
		Link:        &feeds.Link{Href: opts.Link},
		Description: opts.Description,
		Created:     now(),
	}

	for _, item := range items {
		created, _ := item.Timestamp.Time()
		f.Items = append(f.Items, &feeds.Item{
			Id:          item.ID,
			Title:       DeriveTitle(item),
			Link:        &feeds.Link{Href: item.URL},
			Author:      &feeds.Author{Name: item.Author},
			Description: buildDescription(item),
			Content:     buildDescription(item),
			Created:     created,
		})
	}

	atom, err := f.ToAtom()
	if err != nil {
		return "", fmt.Errorf("failed to render atom feed: %w", err)
	}

	slog.Debug("Generated atom feed", "items", len(f.Items))
	return atom, nil
}
