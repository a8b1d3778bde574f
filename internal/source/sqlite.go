package source

import (
	"database/sql"
	"fmt"

	"github.com/factory-ai/social-rss/pkg/database"
	"github.com/factory-ai/social-rss/pkg/feed"
	"github.com/factory-ai/social-rss/pkg/filesystem"
)

// SQLiteReader loads items from the collector's sqlite store. The items
// table mirrors the JSON export; metrics columns are NULL for items without
// engagement data.
type SQLiteReader struct{}

// Read implements Reader. Rows come back in insertion order.
func (SQLiteReader) Read(path string) ([]feed.Item, error) {
	if !database.Exists(path) {
		return nil, fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
	}

	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	query := `
		SELECT id, url, author, source, category, content, timestamp,
		       likes, retweets, replies
		FROM items
		ORDER BY rowid`

	rows, err := db.DB().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []feed.Item
	for rows.Next() {
		var (
			item     feed.Item
			category sql.NullString
			content  sql.NullString
			likes    sql.NullInt64
			retweets sql.NullInt64
			replies  sql.NullInt64
		)

		err := rows.Scan(&item.ID, &item.URL, &item.Author, &item.Source,
			&category, &content, &item.Timestamp,
			&likes, &retweets, &replies)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		if category.Valid {
			item.Category = &category.String
		}
		item.Content = content.String
		if likes.Valid || retweets.Valid || replies.Valid {
			item.Metadata = &feed.TwitterMetrics{
				Likes:    int(likes.Int64),
				Retweets: int(retweets.Int64),
				Replies:  int(replies.Int64),
			}
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return items, nil
}

func init() {
	RegisterReader("sqlite", &ReaderInfo{
		Name:        "sqlite",
		Description: "Collector sqlite item store",
		Extensions:  []string{".db", ".sqlite", ".sqlite3"},
		Factory:     func() Reader { return SQLiteReader{} },
	})
}
