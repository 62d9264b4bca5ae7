package digest

import (
	"strings"
	"unicode"

	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

// Bracket characters ignored when comparing titles, full-width and
// half-width variants alike.
const dedupeBrackets = "【】「」『』（）()［］[]<>"

// dedupeKey normalizes a title for duplicate detection: whitespace and
// brackets removed, lowercased. Exact match after normalization; no
// fuzzy similarity.
func dedupeKey(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if unicode.IsSpace(r) || strings.ContainsRune(dedupeBrackets, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// dedupe keeps the first item for each normalized title key, preserving
// relative order.
func dedupe(items []feed.Item) []feed.Item {
	seen := make(map[string]struct{}, len(items))
	kept := make([]feed.Item, 0, len(items))
	for _, it := range items {
		key := dedupeKey(it.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, it)
	}
	return kept
}
