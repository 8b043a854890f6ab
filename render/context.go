// Package render drives the 2D canvas that shell surfaces draw with.
// It negotiates a rendering backend, manages per-surface canvases,
// and presents finished frames to the compositor over SHM buffers.
package render

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/backend"
)

// getBackend is replaced in tests.
var getBackend = backend.Get

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's diagnostics to l. The default
// discards everything.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Config selects the rendering backend and records the surface
// parameters a context was requested with. SampleCount and
// StencilBits are the requested values; backends expose no query for
// what they actually allocated, so Config echoes the request.
type Config struct {
	// Backend names the preferred backend, e.g.
	// backend.BackendNative. Empty means the registry default.
	Backend     string
	SampleCount int
	StencilBits int
}

// Context owns an initialized rendering backend. At most one context
// is current at a time; drawing goes through whichever canvas was
// made current last.
type Context struct {
	backend backend.RenderBackend
	config  Config
}

var (
	currentMu sync.Mutex
	current   *Context
)

// NewContext negotiates a rendering backend. The preferred backend
// gets one chance to initialize. If it is missing or fails, the
// software rasterizer is tried once; its failure is final.
func NewContext(config Config) (*Context, error) {
	b, err := pick(config.Backend)
	if err != nil {
		if config.Backend == "" || config.Backend == backend.BackendSoftware {
			return nil, err
		}

		logger.Warn("backend init failed, falling back to software",
			"backend", config.Backend,
			"error", err,
		)
		b, err = pick(backend.BackendSoftware)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("rendering backend initialized",
		"backend", b.Name(),
		"samples", config.SampleCount,
		"stencil", config.StencilBits,
	)
	return &Context{backend: b, config: config}, nil
}

func pick(name string) (backend.RenderBackend, error) {
	var b backend.RenderBackend
	if name == "" {
		b = backend.Default()
	} else {
		b = getBackend(name)
	}
	if b == nil {
		return nil, fmt.Errorf("rendering backend %q: %w", name, backend.ErrBackendNotAvailable)
	}

	err := b.Init()
	if err != nil {
		return nil, fmt.Errorf("init %v backend: %w", b.Name(), err)
	}
	return b, nil
}

func (ctx *Context) Backend() string {
	return ctx.backend.Name()
}

func (ctx *Context) Config() Config {
	return ctx.config
}

// NewRenderer creates a renderer sized for a canvas.
func (ctx *Context) NewRenderer(width, height int) gg.Renderer {
	return ctx.backend.NewRenderer(width, height)
}

// MakeCurrent marks ctx as the context drawing happens against.
func (ctx *Context) MakeCurrent() {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = ctx
}

// IsCurrent reports whether ctx was the last context made current.
func (ctx *Context) IsCurrent() bool {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current == ctx
}

// Close shuts the backend down and clears the current context if it
// was this one.
func (ctx *Context) Close() {
	currentMu.Lock()
	if current == ctx {
		current = nil
	}
	currentMu.Unlock()

	ctx.backend.Close()
}
