package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katsube-oss/pr-morning-salescore/internal/digest"
	"github.com/katsube-oss/pr-morning-salescore/internal/render"
)

// Recognized format selector values. Anything else, including an absent
// selector, gets the markdown document.
const (
	FormatMarkdown = "markdown"
	FormatSlack    = "slack"
	FormatJSON     = "json"
)

type DigestRunner interface {
	Run(ctx context.Context) (*digest.Digest, error)
}

type Notifier interface {
	Post(ctx context.Context, text string)
}

type DigestHandler struct {
	runner   DigestRunner
	notifier Notifier
}

func NewDigestHandler(runner DigestRunner, notifier Notifier) *DigestHandler {
	return &DigestHandler{runner: runner, notifier: notifier}
}

func (h *DigestHandler) GetDigest(c *gin.Context) {
	d, err := h.runner.Run(c.Request.Context())
	if err != nil {
		slog.Error("digest run failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal Error")
		return
	}

	if h.notifier != nil && len(d.Items) > 0 {
		h.notifier.Post(c.Request.Context(), render.Slack(d))
	}

	switch c.Query("format") {
	case FormatSlack:
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(http.StatusOK, render.Slack(d))
	case FormatJSON:
		c.JSON(http.StatusOK, render.Records(d))
	default:
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, render.Markdown(d))
	}
}

func (h *DigestHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
