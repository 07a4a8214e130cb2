package feed

import (
	"strings"
)

const (
	publishedTimeLayout   = "02.01.2006 15:04"
	emptyTitlePlaceholder = "(no title)"
)

// BuildMessage renders an entry into the plain-text notification payload:
// feed name, title, optional published timestamp, optional link, one per
// line.
func BuildMessage(feedName, title, link, published string) string {
	lines := []string{"📰 " + feedName}

	title = strings.TrimSpace(title)
	if title == "" {
		title = emptyTitlePlaceholder
	}
	lines = append(lines, title)

	if published != "" {
		lines = append(lines, "🕒 "+published)
	}
	if link := strings.TrimSpace(link); link != "" {
		lines = append(lines, link)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FormatPublished renders the entry's publication time for display.
// A parsed time is preferred (published first, then updated) and rendered
// in its own location without timezone conversion; otherwise the raw
// published/updated strings are used as-is.
func FormatPublished(e Entry) string {
	if e.PublishedParsed != nil {
		return e.PublishedParsed.Format(publishedTimeLayout)
	}
	if e.UpdatedParsed != nil {
		return e.UpdatedParsed.Format(publishedTimeLayout)
	}

	if published := strings.TrimSpace(e.Published); published != "" {
		return published
	}
	return strings.TrimSpace(e.Updated)
}
