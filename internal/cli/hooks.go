package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anchorgraph/pkg/observability"
)

// LogHooks reports scene, render and cache events to a logger. Register it
// with the observability package at startup.
type LogHooks struct {
	logger *log.Logger
}

var (
	_ observability.SceneHooks  = (*LogHooks)(nil)
	_ observability.RenderHooks = (*LogHooks)(nil)
	_ observability.CacheHooks  = (*LogHooks)(nil)
)

// NewLogHooks creates hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	observability.SetSceneHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading scene", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, stats observability.LoadStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("scene load failed", "source", source, "err", err)
		return
	}
	h.logger.Info("loaded scene", "source", source,
		"widgets", stats.Widgets, "connections", stats.Connections, "rejected", stats.Rejected,
		"took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnConnectionRejected(_ context.Context, from, to string) {
	h.logger.Warn("connection rejected", "from", from, "to", to)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string, widgets int) {
	h.logger.Debug("rendering", "format", format, "widgets", widgets)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "format", format, "err", err)
		return
	}
	h.logger.Info("rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
