package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
	"github.com/katsube-oss/pr-morning-salescore/internal/model"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

func testDigest(t *testing.T, items []model.RankedItem) *digest.Digest {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	assert.Equal(t, nil, err)
	return &digest.Digest{
		Date:     time.Date(2026, 8, 28, 0, 0, 0, 0, loc),
		Location: loc,
		Items:    items,
	}
}

func sampleItem() model.RankedItem {
	return model.RankedItem{
		Item: feed.Item{
			Title:     "SALESCOREが新機能を発表",
			Link:      "https://www.itmedia.co.jp/news/1",
			Published: "2026-08-28T09:30:00+09:00",
		},
		Score:  7,
		Media:  "ITmedia",
		Impact: "入力ハードルと定着の議論に直結",
	}
}

func TestMarkdown(t *testing.T) {
	d := testDigest(t, []model.RankedItem{sampleItem()})

	got := Markdown(d)

	want := "# PR朝刊（営業DX/AI/Enablement）2026/08/28\n" +
		"- SALESCOREが新機能を発表（ITmedia） https://www.itmedia.co.jp/news/1 — 入力ハードルと定着の議論に直結 _(2026/08/28 09:30)_"
	assert.Equal(t, want, got)
}

func TestMarkdownEmpty(t *testing.T) {
	d := testDigest(t, nil)

	assert.Equal(t, "# PR朝刊（営業DX/AI/Enablement）2026/08/28", Markdown(d))
}

func TestSlack(t *testing.T) {
	d := testDigest(t, []model.RankedItem{sampleItem()})

	got := Slack(d)

	want := "【PR朝刊】2026/08/28\n" +
		"• <https://www.itmedia.co.jp/news/1|SALESCOREが新機能を発表>（ITmedia）\n" +
		"    入力ハードルと定着の議論に直結 _(2026/08/28 09:30)_"
	assert.Equal(t, want, got)
}

func TestSlackEscapesStructuralCharacters(t *testing.T) {
	it := sampleItem()
	it.Title = "A&B <C> 速報|続報"
	it.Link = "https://example.com/a?x=1&y=2"
	d := testDigest(t, []model.RankedItem{it})

	got := Slack(d)

	assert.Equal(t, true, strings.Contains(got, "A&amp;B &lt;C&gt; 速報&#124;続報"))
	assert.Equal(t, true, strings.Contains(got, "https://example.com/a?x=1&amp;y=2"))
	assert.Equal(t, false, strings.Contains(got, "A&B"))
}

func TestRecords(t *testing.T) {
	d := testDigest(t, []model.RankedItem{sampleItem()})

	records := Records(d)

	assert.Equal(t, 1, len(records))
	assert.Equal(t, "SALESCOREが新機能を発表", records[0].Title)
	assert.Equal(t, "https://www.itmedia.co.jp/news/1", records[0].Link)
	assert.Equal(t, "ITmedia", records[0].Media)
	assert.Equal(t, "入力ハードルと定着の議論に直結", records[0].Impact)
	assert.Equal(t, "2026-08-28T09:30:00+09:00", records[0].PublishedAt)
}

func TestRecordsExposeNoScoreOrSummary(t *testing.T) {
	d := testDigest(t, []model.RankedItem{sampleItem()})

	raw, err := json.Marshal(Records(d))
	assert.Equal(t, nil, err)

	assert.Equal(t, false, strings.Contains(string(raw), "score"))
	assert.Equal(t, false, strings.Contains(string(raw), "summary"))
}

func TestRecordsEmptyIsArray(t *testing.T) {
	d := testDigest(t, nil)

	raw, err := json.Marshal(Records(d))

	assert.Equal(t, nil, err)
	assert.Equal(t, "[]", string(raw))
}

func TestLocalTimeUnparseable(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	assert.Equal(t, nil, err)

	assert.Equal(t, "", localTime("not a date", loc))
	assert.Equal(t, "", localTime("", loc))
}
