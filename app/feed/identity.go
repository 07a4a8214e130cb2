package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// identitySeparator joins the identity fields. Two characters, so a
	// single separator character occurring inside a field value cannot
	// produce ambiguous concatenations in practice.
	identitySeparator = "||"

	// identityFallbackLimit bounds the serialized-entry fallback input.
	identityFallbackLimit = 500
)

// Identity derives a stable deduplication key for an entry. Entries with
// identical (ID, GUID, Link, Title, Published, Updated) tuples map to the
// same key; entries where all six fields are empty fall back to a digest
// of the entry's full serialized field set, so distinct empty-metadata
// entries do not collapse onto one key.
func Identity(e Entry) string {
	parts := []string{e.ID, e.GUID, e.Link, e.Title, e.Published, e.Updated}

	raw := ""
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			raw = strings.Join(parts, identitySeparator)
			break
		}
	}
	if raw == "" {
		// All key fields are empty: joining them would hash every such
		// entry onto one separator-only string, so the full field set is
		// serialized instead.
		raw = serializeEntry(e)
	}

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// serializeEntry renders every entry field as key=value lines sorted by
// key, truncated to identityFallbackLimit bytes.
func serializeEntry(e Entry) string {
	fields := map[string]string{
		"guid":             e.GUID,
		"id":               e.ID,
		"link":             e.Link,
		"published":        e.Published,
		"published_parsed": formatParsed(e.PublishedParsed),
		"summary":          e.Summary,
		"title":            e.Title,
		"updated":          e.Updated,
		"updated_parsed":   formatParsed(e.UpdatedParsed),
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%s\n", key, fields[key])
	}

	serialized := b.String()
	if len(serialized) > identityFallbackLimit {
		serialized = serialized[:identityFallbackLimit]
	}
	return serialized
}

func formatParsed(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
