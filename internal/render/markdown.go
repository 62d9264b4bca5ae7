package render

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
)

// Markdown renders the digest as a document: a dated heading plus one
// bullet per story.
func Markdown(d *digest.Digest) string {
	var b strings.Builder
	b.WriteString("# PR朝刊（営業DX/AI/Enablement）")
	b.WriteString(d.Date.Format("2006/01/02"))

	for _, it := range d.Items {
		b.WriteString("\n- ")
		b.WriteString(it.Title)
		b.WriteString("（")
		b.WriteString(it.Media)
		b.WriteString("） ")
		b.WriteString(it.Link)
		b.WriteString(" — ")
		b.WriteString(it.Impact)
		b.WriteString(" _(")
		b.WriteString(localTime(it.Published, d.Location))
		b.WriteString(")_")
	}

	return b.String()
}

// localTime formats a raw feed timestamp in the digest's timezone,
// empty when it cannot be parsed.
func localTime(published string, loc *time.Location) string {
	t, err := dateparse.ParseAny(published)
	if err != nil {
		return ""
	}
	return t.In(loc).Format("2006/01/02 15:04")
}
