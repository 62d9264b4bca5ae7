package render

import "github.com/katsube-oss/pr-morning-salescore/internal/digest"

// Record is the structured-data shape of one story: no score, no
// summary, and the publish date exactly as the feed gave it.
type Record struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Media       string `json:"media"`
	Impact      string `json:"impact"`
	PublishedAt string `json:"published_at"`
}

// Records keeps ranked order. The result is never nil so an empty
// digest serializes as an empty array.
func Records(d *digest.Digest) []Record {
	records := make([]Record, 0, len(d.Items))
	for _, it := range d.Items {
		records = append(records, Record{
			Title:       it.Title,
			Link:        it.Link,
			Media:       it.Media,
			Impact:      it.Impact,
			PublishedAt: it.Published,
		})
	}
	return records
}
