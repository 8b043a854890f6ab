package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/backend"
	"github.com/gogpu/gg/scene"
)

type fakeBackend struct {
	name    string
	initErr error
	inits   int
}

func (b *fakeBackend) Name() string { return b.name }
func (b *fakeBackend) Close()       {}

func (b *fakeBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *fakeBackend) NewRenderer(width, height int) gg.Renderer {
	return gg.NewSoftwareRenderer(width, height)
}

func (b *fakeBackend) RenderScene(target *gg.Pixmap, s *scene.Scene) error { return nil }

// swapBackends replaces the backend lookup for one test.
func swapBackends(t *testing.T, fakes map[string]*fakeBackend) {
	t.Helper()

	old := getBackend
	getBackend = func(name string) backend.RenderBackend {
		b, ok := fakes[name]
		if !ok {
			return nil
		}
		return b
	}
	t.Cleanup(func() { getBackend = old })
}

func TestNewContextFallback(t *testing.T) {
	errInit := errors.New("no GPU")

	t.Run("preferred succeeds", func(t *testing.T) {
		gpu := fakeBackend{name: "gpu"}
		sw := fakeBackend{name: backend.BackendSoftware}
		swapBackends(t, map[string]*fakeBackend{"gpu": &gpu, backend.BackendSoftware: &sw})

		ctx, err := NewContext(Config{Backend: "gpu"})
		if err != nil {
			t.Fatalf("NewContext: %v", err)
		}
		if ctx.Backend() != "gpu" {
			t.Errorf("backend = %q, want %q", ctx.Backend(), "gpu")
		}
		if sw.inits != 0 {
			t.Errorf("software inited %v times, want 0", sw.inits)
		}
	})

	t.Run("preferred fails once, software takes over", func(t *testing.T) {
		gpu := fakeBackend{name: "gpu", initErr: errInit}
		sw := fakeBackend{name: backend.BackendSoftware}
		swapBackends(t, map[string]*fakeBackend{"gpu": &gpu, backend.BackendSoftware: &sw})

		ctx, err := NewContext(Config{Backend: "gpu"})
		if err != nil {
			t.Fatalf("NewContext: %v", err)
		}
		if ctx.Backend() != backend.BackendSoftware {
			t.Errorf("backend = %q, want software", ctx.Backend())
		}
		if gpu.inits != 1 {
			t.Errorf("preferred inited %v times, want exactly 1", gpu.inits)
		}
		if sw.inits != 1 {
			t.Errorf("software inited %v times, want exactly 1", sw.inits)
		}
	})

	t.Run("missing preferred falls back", func(t *testing.T) {
		sw := fakeBackend{name: backend.BackendSoftware}
		swapBackends(t, map[string]*fakeBackend{backend.BackendSoftware: &sw})

		ctx, err := NewContext(Config{Backend: "gpu"})
		if err != nil {
			t.Fatalf("NewContext: %v", err)
		}
		if ctx.Backend() != backend.BackendSoftware {
			t.Errorf("backend = %q, want software", ctx.Backend())
		}
	})

	t.Run("software failure is final", func(t *testing.T) {
		sw := fakeBackend{name: backend.BackendSoftware, initErr: errInit}
		swapBackends(t, map[string]*fakeBackend{backend.BackendSoftware: &sw})

		_, err := NewContext(Config{Backend: backend.BackendSoftware})
		if !errors.Is(err, errInit) {
			t.Fatalf("err = %v, want %v", err, errInit)
		}
		if sw.inits != 1 {
			t.Errorf("software inited %v times, want exactly 1", sw.inits)
		}
	})
}

func TestMakeCurrent(t *testing.T) {
	a := fakeBackend{name: "a"}
	b := fakeBackend{name: "b"}
	swapBackends(t, map[string]*fakeBackend{"a": &a, "b": &b})

	ctxA, err := NewContext(Config{Backend: "a"})
	if err != nil {
		t.Fatalf("NewContext a: %v", err)
	}
	ctxB, err := NewContext(Config{Backend: "b"})
	if err != nil {
		t.Fatalf("NewContext b: %v", err)
	}

	ctxA.MakeCurrent()
	if !ctxA.IsCurrent() || ctxB.IsCurrent() {
		t.Errorf("after a.MakeCurrent: a current = %v, b current = %v", ctxA.IsCurrent(), ctxB.IsCurrent())
	}

	ctxB.MakeCurrent()
	if ctxA.IsCurrent() || !ctxB.IsCurrent() {
		t.Errorf("after b.MakeCurrent: a current = %v, b current = %v", ctxA.IsCurrent(), ctxB.IsCurrent())
	}

	ctxB.Close()
	if ctxB.IsCurrent() {
		t.Errorf("closed context still current")
	}
}

func TestCanvasResize(t *testing.T) {
	sw := fakeBackend{name: backend.BackendSoftware}
	swapBackends(t, map[string]*fakeBackend{backend.BackendSoftware: &sw})

	ctx, err := NewContext(Config{Backend: backend.BackendSoftware})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	canvas := NewCanvas(ctx, 100, 100)
	defer canvas.Close()

	before := canvas.GG()
	canvas.Resize(100, 100)
	if canvas.GG() != before {
		t.Errorf("same-size resize recreated the drawing context")
	}

	canvas.Resize(200, 150)
	if canvas.GG() == before {
		t.Errorf("real resize kept the old drawing context")
	}
	if w, h := canvas.Size(); w != 200 || h != 150 {
		t.Errorf("size = %vx%v, want 200x150", w, h)
	}
}

func TestConfigRecorded(t *testing.T) {
	sw := fakeBackend{name: backend.BackendSoftware}
	swapBackends(t, map[string]*fakeBackend{backend.BackendSoftware: &sw})

	cfg := Config{Backend: backend.BackendSoftware, SampleCount: 4, StencilBits: 8}
	ctx, err := NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if got := ctx.Config(); got != cfg {
		t.Errorf("config = %+v, want %+v", got, cfg)
	}
}
