package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// rfc822Layout is the textual date format RSS 2.0 requires for pubDate and
// lastBuildDate, always emitted in UTC.
const rfc822Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// InvalidDate is rendered in place of a timestamp that could not be parsed.
// The feed stays well-formed; the value is semantically meaningless and
// callers are expected to fix such items upstream.
const InvalidDate = "Invalid Date"

// timestampLayouts are tried in order when parsing string timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02",
}

// Timestamp is a publication time that may arrive as a native time value,
// a textual date, or a unix epoch number. Values that cannot be parsed are
// carried along and render as the InvalidDate sentinel instead of failing
// the whole feed.
type Timestamp struct {
	t   time.Time
	raw string
	ok  bool
}

// NewTimestamp wraps a known-good time value.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, ok: true}
}

// ParseTimestamp parses a textual date using the supported layouts.
func ParseTimestamp(s string) Timestamp {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t, raw: s, ok: true}
		}
	}
	return Timestamp{raw: s}
}

// timestampFromUnix interprets an epoch number from the collector. Epochs
// too large to be seconds are taken as milliseconds.
func timestampFromUnix(n float64) Timestamp {
	if n >= 1e11 {
		return Timestamp{t: time.UnixMilli(int64(n)).UTC(), ok: true}
	}
	return Timestamp{t: time.Unix(int64(n), 0).UTC(), ok: true}
}

// Time returns the parsed instant and whether parsing succeeded.
func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.ok
}

// Raw returns the original textual value for unparseable timestamps.
func (ts Timestamp) Raw() string {
	return ts.raw
}

// RFC822 formats the timestamp for RSS date fields, converted to UTC.
// Unparseable timestamps yield the InvalidDate sentinel.
func (ts Timestamp) RFC822() string {
	if !ts.ok {
		return InvalidDate
	}
	return formatRFC822(ts.t)
}

func formatRFC822(t time.Time) string {
	return t.UTC().Format(rfc822Layout)
}

// UnmarshalJSON accepts a textual date, a unix epoch number, or null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*ts = ParseTimestamp(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*ts = timestampFromUnix(n)
		return nil
	}

	return fmt.Errorf("timestamp must be a string or unix number, got %s", data)
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	var n float64
	if err := value.Decode(&n); err == nil {
		*ts = timestampFromUnix(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil {
		*ts = ParseTimestamp(s)
		return nil
	}

	return fmt.Errorf("timestamp must be a string or unix number")
}

// Scan reads a timestamp from a database column. Text columns go through
// the layout list, integer columns are treated as epochs.
func (ts *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*ts = Timestamp{}
	case time.Time:
		*ts = NewTimestamp(v)
	case int64:
		*ts = timestampFromUnix(float64(v))
	case float64:
		*ts = timestampFromUnix(v)
	case string:
		*ts = ParseTimestamp(v)
	case []byte:
		*ts = ParseTimestamp(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}
