package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/katsube-oss/pr-morning-salescore/internal/config"
	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
	"github.com/katsube-oss/pr-morning-salescore/internal/notify"
	"github.com/katsube-oss/pr-morning-salescore/internal/render"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
	"github.com/katsube-oss/pr-morning-salescore/pkg/llm"
)

// One-shot digest run for cron: prints the markdown document to stdout
// and posts the chat rendering to the webhook when one is configured.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	pipeline := digest.New(cfg, feed.NewClient(), buildCaptioner(cfg))

	ctx := context.Background()
	d, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatalf("error running digest: %v", err)
	}

	fmt.Println(render.Markdown(d))

	if cfg.SlackWebhookURL != "" && len(d.Items) > 0 {
		notify.NewSlackNotifier(cfg.SlackWebhookURL).Post(ctx, render.Slack(d))
	}

	slog.Info("digest complete", "items", len(d.Items), "date", d.Date.Format("2006/01/02"))
}

func buildCaptioner(cfg *config.Config) llm.Captioner {
	if cfg.AnthropicAPIKey != "" {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	if cfg.OpenAIAPIKey != "" {
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	return nil
}
