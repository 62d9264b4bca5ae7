package render

import (
	"strings"

	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
)

// Characters with structural meaning in Slack mrkdwn.
var slackEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"|", "&#124;",
)

// Slack renders the digest as a chat message: a headline, then per story
// a linked title line and an indented caption line.
func Slack(d *digest.Digest) string {
	var b strings.Builder
	b.WriteString("【PR朝刊】")
	b.WriteString(d.Date.Format("2006/01/02"))

	for _, it := range d.Items {
		b.WriteString("\n• <")
		b.WriteString(slackEscaper.Replace(it.Link))
		b.WriteString("|")
		b.WriteString(slackEscaper.Replace(it.Title))
		b.WriteString(">（")
		b.WriteString(slackEscaper.Replace(it.Media))
		b.WriteString("）\n    ")
		b.WriteString(slackEscaper.Replace(it.Impact))
		b.WriteString(" _(")
		b.WriteString(localTime(it.Published, d.Location))
		b.WriteString(")_")
	}

	return b.String()
}
