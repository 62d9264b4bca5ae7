package digest

import (
	"strings"

	"github.com/araddon/dateparse"

	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

// searchText is the shared haystack for the relevance filter and the
// scorer. Both stages must see the same text or their matching semantics
// drift apart.
func searchText(it feed.Item) string {
	return it.Title + " " + it.Summary + " " + it.Link
}

// hasJapanese reports whether s contains at least one hiragana, katakana
// or CJK ideograph rune.
func hasJapanese(s string) bool {
	for _, r := range s {
		if (r >= 'ぁ' && r <= 'ん') || (r >= 'ァ' && r <= 'ン') || (r >= '一' && r <= '龠') {
			return true
		}
	}
	return false
}

// filterWindow keeps items whose timestamp parses and falls inside win.
// Items with a missing or unparseable timestamp are dropped.
func filterWindow(items []feed.Item, win Window) []feed.Item {
	kept := make([]feed.Item, 0, len(items))
	for _, it := range items {
		t, err := dateparse.ParseAny(it.Published)
		if err != nil {
			continue
		}
		if !win.Contains(t) {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// filterRelevant keeps items with a Japanese-script title whose haystack
// contains at least one keyword. Matching is case-insensitive substring
// containment, not word-boundary matching; a keyword may match inside a
// longer word and consumers rely on that.
func filterRelevant(items []feed.Item, keywords []string) []feed.Item {
	kept := make([]feed.Item, 0, len(items))
	for _, it := range items {
		if !hasJapanese(it.Title) {
			continue
		}
		hay := strings.ToLower(searchText(it))
		for _, kw := range keywords {
			if strings.Contains(hay, strings.ToLower(kw)) {
				kept = append(kept, it)
				break
			}
		}
	}
	return kept
}
