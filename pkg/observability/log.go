package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and cache events to a logger at debug level.
// It implements both [PipelineHooks] and [CacheHooks].
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to l. A nil l uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnBuildStart(_ context.Context, modules int) {
	h.logger.Debug("build start", "modules", modules)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, nodes int, d time.Duration, err error) {
	h.done("build", d, err, "nodes", nodes)
}

func (h *LogHooks) OnPruneStart(_ context.Context, nodes int) {
	h.logger.Debug("prune start", "nodes", nodes)
}

func (h *LogHooks) OnPruneComplete(_ context.Context, excluded, cycles int, d time.Duration, err error) {
	h.done("prune", d, err, "excluded", excluded, "cycles", cycles)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "format", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "format", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "format", keyType, "bytes", size)
}

func (h *LogHooks) done(phase string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Debug(phase+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(phase+" done", kv...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
