package digest

import (
	"strings"

	"github.com/katsube-oss/pr-morning-salescore/internal/model"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

type mediaPattern struct {
	tokens []string
	label  string
}

// Ordered outlet patterns; the first match wins. Tokens are matched
// case-insensitively against title, source hint and link combined.
var mediaPatterns = []mediaPattern{
	{[]string{"itmedia"}, "ITmedia"},
	{[]string{"toyokeizai", "東洋経済"}, "東洋経済"},
	{[]string{"forbes"}, "ForbesJ"},
	{[]string{"diamond", "ダイヤモンド"}, "ダイヤモンド"},
	{[]string{"markezine"}, "MarkeZine"},
	{[]string{"saleszine"}, "SalesZine"},
	{[]string{"nikkei", "日本経済新聞", "日経"}, "日経"},
	{[]string{"prtimes"}, "PR TIMES"},
}

func classifyMedia(it feed.Item) string {
	hay := strings.ToLower(it.Title + " " + it.Source + " " + it.Link)
	for _, p := range mediaPatterns {
		for _, tok := range p.tokens {
			if strings.Contains(hay, strings.ToLower(tok)) {
				return p.label
			}
		}
	}
	return model.MediaGeneric
}
