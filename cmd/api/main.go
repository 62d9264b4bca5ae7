package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/katsube-oss/pr-morning-salescore/internal/config"
	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
	"github.com/katsube-oss/pr-morning-salescore/internal/handler"
	"github.com/katsube-oss/pr-morning-salescore/internal/notify"
	"github.com/katsube-oss/pr-morning-salescore/pkg/feed"
	"github.com/katsube-oss/pr-morning-salescore/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	pipeline := digest.New(cfg, feed.NewClient(), buildCaptioner(cfg))
	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL)
	digestHandler := handler.NewDigestHandler(pipeline, notifier)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/digest", digestHandler.GetDigest)
	r.GET("/health", digestHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
