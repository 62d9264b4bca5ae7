package digest

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
)

func TestFilterWindowBoundaries(t *testing.T) {
	loc := tokyo(t)
	win := PriorDay(time.Date(2026, 8, 29, 10, 0, 0, 0, loc), loc)

	items := []feed.Item{
		{Title: "当日0時ちょうど", Link: "https://example.com/1", Published: "2026-08-28T00:00:00+09:00"},
		{Title: "当日終端", Link: "https://example.com/2", Published: "2026-08-28T23:59:59.999+09:00"},
		{Title: "翌日0時", Link: "https://example.com/3", Published: "2026-08-29T00:00:00+09:00"},
		{Title: "前日", Link: "https://example.com/4", Published: "2026-08-27T23:59:59+09:00"},
		{Title: "日付が壊れている", Link: "https://example.com/5", Published: "not a date"},
		{Title: "日付なし", Link: "https://example.com/6"},
	}

	kept := filterWindow(items, win)

	assert.Equal(t, 2, len(kept))
	assert.Equal(t, "当日0時ちょうど", kept[0].Title)
	assert.Equal(t, "当日終端", kept[1].Title)
}

func TestFilterRelevant(t *testing.T) {
	keywords := []string{"SALESCORE"}

	items := []feed.Item{
		{Title: "SALESCOREが新機能を発表", Link: "https://example.com/1"},
		{Title: "SALESCORE launches new feature", Link: "https://example.com/2"},
		{Title: "関係のない日本語記事", Link: "https://example.com/3"},
		{Title: "リンクにだけ含まれる記事", Link: "https://example.com/salescore-review"},
	}

	kept := filterRelevant(items, keywords)

	assert.Equal(t, 2, len(kept))
	assert.Equal(t, "SALESCOREが新機能を発表", kept[0].Title)
	assert.Equal(t, "リンクにだけ含まれる記事", kept[1].Title)
}

func TestFilterRelevantSubstringMatch(t *testing.T) {
	// Containment is deliberate: a keyword may match inside a longer word.
	items := []feed.Item{
		{Title: "営業DXツールまとめ", Link: "https://example.com/1", Summary: "SALESCORELABの紹介"},
	}

	kept := filterRelevant(items, []string{"salescore"})

	assert.Equal(t, 1, len(kept))
}

func TestFilterRelevantEmptyKeywords(t *testing.T) {
	items := []feed.Item{
		{Title: "日本語の記事", Link: "https://example.com/1"},
	}

	assert.Equal(t, 0, len(filterRelevant(items, nil)))
}

func TestHasJapanese(t *testing.T) {
	assert.Equal(t, true, hasJapanese("ひらがな"))
	assert.Equal(t, true, hasJapanese("カタカナ"))
	assert.Equal(t, true, hasJapanese("漢字"))
	assert.Equal(t, true, hasJapanese("mixed 日本語 text"))
	assert.Equal(t, false, hasJapanese("english only"))
	assert.Equal(t, false, hasJapanese(""))
}
