package model

import "github.com/katsube-oss/pr-morning-salescore/pkg/feed"

// Media labels assigned by the outlet classifier. MediaGeneric covers
// everything the pattern list does not recognize.
const MediaGeneric = "News"

// RankedItem is a feed item that survived filtering, enriched with its
// relevance score, outlet label and business-impact caption. It is not
// mutated once rendering starts.
type RankedItem struct {
	feed.Item

	Score  int
	Media  string
	Impact string
}
