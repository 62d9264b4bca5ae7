package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Parse extracts items from a feed payload. Real-world feeds are often
// malformed, so this is a tolerant scanner rather than a validating XML
// parser: entry boundaries are located by literal tag-open substrings,
// the first occurrence of an inner tag wins, and fragments missing a
// title or link are dropped silently. RSS <item> blocks are scanned
// first; the Atom <entry> form is tried only when that yields nothing.
func Parse(payload string) []Item {
	items := parseItems(payload)
	if len(items) == 0 {
		items = parseEntries(payload)
	}
	return items
}

func parseItems(payload string) []Item {
	var items []Item
	for _, block := range tagBlocks(payload, "item") {
		title := strings.TrimSpace(stripCDATA(innerText(block, "title")))
		link := strings.TrimSpace(stripCDATA(innerText(block, "link")))
		desc := strings.TrimSpace(stripMarkup(stripCDATA(innerText(block, "description"))))

		pub := innerText(block, "pubDate")
		if pub == "" {
			pub = innerText(block, "updated")
		}
		if pub == "" {
			pub = innerText(block, "published")
		}

		if title == "" || link == "" {
			continue
		}
		items = append(items, Item{
			Title:     title,
			Link:      link,
			Summary:   desc,
			Published: strings.TrimSpace(pub),
		})
	}
	return items
}

func parseEntries(payload string) []Item {
	var items []Item
	for _, block := range tagBlocks(payload, "entry") {
		title := strings.TrimSpace(stripCDATA(innerText(block, "title")))

		// An href attribute on a hyperlink tag beats a plain element body.
		link := linkHref(block)
		if link == "" {
			link = innerText(block, "link")
		}
		link = strings.TrimSpace(link)

		summary := innerText(block, "summary")
		if summary == "" {
			summary = innerText(block, "content")
		}
		summary = strings.TrimSpace(stripMarkup(summary))

		pub := innerText(block, "updated")
		if pub == "" {
			pub = innerText(block, "published")
		}

		source := strings.TrimSpace(innerText(innerText(block, "author"), "name"))

		if title == "" || link == "" {
			continue
		}
		items = append(items, Item{
			Title:     title,
			Link:      link,
			Summary:   summary,
			Published: strings.TrimSpace(pub),
			Source:    source,
		})
	}
	return items
}

// tagBlocks returns one text window per "<tag" opening (the next byte
// must be whitespace or '>'). A window runs to the matching close tag if
// one appears before the next opening, otherwise to the next opening or
// the end of the payload.
func tagBlocks(payload, tag string) []string {
	lower := asciiLower(payload)
	open := "<" + asciiLower(tag)
	closing := "</" + asciiLower(tag) + ">"

	var starts []int
	for i := 0; ; {
		j := strings.Index(lower[i:], open)
		if j < 0 {
			break
		}
		j += i
		k := j + len(open)
		if k < len(lower) && lower[k] != '>' && !isSpaceByte(lower[k]) {
			i = j + 1
			continue
		}
		starts = append(starts, j)
		i = j + 1
	}

	blocks := make([]string, 0, len(starts))
	for n, s := range starts {
		end := len(payload)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		window := payload[s:end]
		if c := strings.Index(asciiLower(window), closing); c >= 0 {
			window = window[:c+len(closing)]
		}
		blocks = append(blocks, window)
	}
	return blocks
}

// innerText returns the text between the first "<tag ...>" and the first
// "</tag>" that follows it. Missing field means empty string; same-named
// nested tags are not handled.
func innerText(block, tag string) string {
	lower := asciiLower(block)
	open := "<" + asciiLower(tag)
	closing := "</" + asciiLower(tag) + ">"

	for i := 0; ; {
		j := strings.Index(lower[i:], open)
		if j < 0 {
			return ""
		}
		j += i
		k := j + len(open)
		if k < len(lower) && lower[k] != '>' && !isSpaceByte(lower[k]) && lower[k] != '/' {
			i = j + 1
			continue
		}
		gt := strings.IndexByte(lower[k:], '>')
		if gt < 0 {
			return ""
		}
		start := k + gt + 1
		c := strings.Index(lower[start:], closing)
		if c < 0 {
			return ""
		}
		return block[start : start+c]
	}
}

// linkHref finds the first hyperlink-style tag carrying an href attribute
// inside its opening tag and returns the attribute value.
func linkHref(block string) string {
	lower := asciiLower(block)

	for i := 0; ; {
		j := strings.Index(lower[i:], "<link")
		if j < 0 {
			return ""
		}
		j += i

		window := block[j:]
		if gt := strings.IndexByte(lower[j:], '>'); gt >= 0 {
			window = block[j : j+gt]
		}

		if h := strings.Index(asciiLower(window), `href="`); h >= 0 {
			rest := window[h+len(`href="`):]
			if q := strings.IndexByte(rest, '"'); q > 0 {
				return rest[:q]
			}
		}
		i = j + 1
	}
}

func stripCDATA(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	return strings.ReplaceAll(s, "]]>", "")
}

var stripPolicy = bluemonday.StrictPolicy()

// stripMarkup drops any inline markup and resolves entities, leaving
// plain text.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// asciiLower lowercases ASCII letters only, preserving byte offsets so
// positions found in the lowered copy index the original string.
func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
