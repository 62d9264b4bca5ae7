package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/katsube-oss/pr-morning-salescore/internal/config"
	"github.com/katsube-oss/pr-morning-salescore/internal/model"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
	"github.com/katsube-oss/pr-morning-salescore/pkg/llm"
)

const snippetMaxRunes = 300

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]feed.Item, error)
}

// Digest is the result of one pipeline run. Date is local midnight of
// the covered (prior) day.
type Digest struct {
	Date     time.Time
	Location *time.Location
	Items    []model.RankedItem
}

// Pipeline runs one full ingestion pass: fetch every configured feed,
// filter to the prior day, keep relevant stories, dedupe, rank, then
// label and caption the survivors. Everything is sequential; a run holds
// no state beyond its own slices.
type Pipeline struct {
	cfg       *config.Config
	fetcher   Fetcher
	captioner llm.Captioner // nil means rule-table captions only
}

func New(cfg *config.Config, fetcher Fetcher, captioner llm.Captioner) *Pipeline {
	return &Pipeline{cfg: cfg, fetcher: fetcher, captioner: captioner}
}

func (p *Pipeline) Run(ctx context.Context) (*Digest, error) {
	return p.run(ctx, time.Now())
}

func (p *Pipeline) run(ctx context.Context, now time.Time) (*Digest, error) {
	var all []feed.Item
	for _, url := range p.cfg.FeedURLs {
		items, err := p.fetcher.Fetch(ctx, url)
		if err != nil {
			// One bad source never aborts the run.
			slog.Warn("feed fetch failed, skipping", "url", url, "error", err)
			continue
		}
		all = append(all, items...)
	}

	win := PriorDay(now, p.cfg.Location)

	items := filterWindow(all, win)
	items = filterRelevant(items, p.cfg.Keywords)
	items = dedupe(items)

	ranked := rank(items, p.cfg.Keywords, now, p.cfg.MaxItems)

	for i := range ranked {
		ranked[i].Media = classifyMedia(ranked[i].Item)
		ranked[i].Impact = p.caption(ctx, ranked[i])
	}

	return &Digest{
		Date:     win.Start,
		Location: p.cfg.Location,
		Items:    ranked,
	}, nil
}

// caption asks the configured captioner for an impact line and falls
// back to the rule table on any failure or empty result. It never fails.
func (p *Pipeline) caption(ctx context.Context, it model.RankedItem) string {
	if p.captioner != nil {
		in := llm.CaptionInput{
			Title:   it.Title,
			Media:   it.Media,
			Snippet: llm.Truncate(it.Summary, snippetMaxRunes),
		}
		text, err := p.captioner.Caption(ctx, in)
		if err == nil {
			return llm.Truncate(text, llm.MaxCaptionRunes)
		}
		slog.Warn("caption generation failed, using rule table", "title", it.Title, "error", err)
	}
	return llm.Truncate(llm.RuleCaption(it.Title), llm.MaxCaptionRunes)
}
