package digest

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"github.com/katsube-oss/pr-morning-salescore/internal/model"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

// Outlet names whose presence anywhere in the haystack boosts the score.
// Fixed policy, not configuration.
var trustedOutlets = regexp.MustCompile(`(?i)(日経|日本経済新聞|ITmedia|東洋経済|ダイヤモンド|Forbes|MarkeZine|SalesZine|PR TIMES)`)

const (
	keywordWeight  = 2
	trustedWeight  = 3
	recencyWeight  = 1
	titleLenWeight = 1

	titleLenMin = 12
	titleLenMax = 60
)

// scoreItem sums independent signals: +2 per configured keyword present
// in the haystack (counted once per keyword), +3 for a trusted outlet
// match, +1 when published less than 24h before now, +1 for a title of
// 12 to 60 runes.
func scoreItem(it feed.Item, keywords []string, now time.Time) int {
	score := 0

	hay := searchText(it)
	lower := strings.ToLower(hay)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += keywordWeight
		}
	}

	if trustedOutlets.MatchString(hay) {
		score += trustedWeight
	}

	if t, err := dateparse.ParseAny(it.Published); err == nil {
		if now.Sub(t) < 24*time.Hour {
			score += recencyWeight
		}
	}

	if n := utf8.RuneCountInString(it.Title); n >= titleLenMin && n <= titleLenMax {
		score += titleLenWeight
	}

	return score
}

// rank scores every item, sorts by score descending and truncates to
// max. The sort is stable: equal scores keep their upstream order.
func rank(items []feed.Item, keywords []string, now time.Time, max int) []model.RankedItem {
	ranked := make([]model.RankedItem, 0, len(items))
	for _, it := range items {
		ranked = append(ranked, model.RankedItem{
			Item:  it,
			Score: scoreItem(it, keywords, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
