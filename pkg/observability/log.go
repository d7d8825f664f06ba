package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and HTTP events at debug level. The CLI installs
// it when --verbose is set.
type LogHooks struct {
	Logger *log.Logger
}

var (
	_ PipelineHooks = LogHooks{}
	_ HTTPHooks     = LogHooks{}
)

func (h LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load start", "source", source)
}

func (h LogHooks) OnLoadComplete(_ context.Context, source string, components int, d time.Duration, err error) {
	h.Logger.Debug("load complete", "source", source, "components", components, "duration", d, "err", err)
}

func (h LogHooks) OnLayoutStart(_ context.Context, source string, components int) {
	h.Logger.Debug("layout start", "source", source, "components", components)
}

func (h LogHooks) OnLayoutComplete(_ context.Context, source string, boxes int, d time.Duration, err error) {
	h.Logger.Debug("layout complete", "source", source, "boxes", boxes, "duration", d, "err", err)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, bytes int, d time.Duration, err error) {
	h.Logger.Debug("render complete", "formats", formats, "bytes", bytes, "duration", d, "err", err)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}
