package render

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/backend"
)

func testCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()

	sw := fakeBackend{name: backend.BackendSoftware}
	swapBackends(t, map[string]*fakeBackend{backend.BackendSoftware: &sw})

	ctx, err := NewContext(Config{Backend: backend.BackendSoftware})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	canvas := NewCanvas(ctx, w, h)
	t.Cleanup(canvas.Close)
	return canvas
}

func TestFrame(t *testing.T) {
	canvas := testCanvas(t, 64, 64)

	Clear(canvas, gg.RGBA{B: 1, A: 0.5})
	err := Frame(canvas, FrameParams{Count: 3, Steps: 12, Rate: 60})
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	img := canvas.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Errorf("image bounds = %v, want 64x64", got)
	}

	// The center ring is opaque enough that the clear color cannot
	// survive there.
	_, _, _, a := img.At(32, 32).RGBA()
	if a == 0 {
		t.Errorf("center pixel fully transparent, want drawn ring")
	}
}

func TestFrameInvalidParams(t *testing.T) {
	canvas := testCanvas(t, 16, 16)

	tests := []struct {
		name   string
		params FrameParams
	}{
		{"zero steps", FrameParams{Count: 0, Steps: 0, Rate: 60}},
		{"zero rate", FrameParams{Count: 0, Steps: 12, Rate: 0}},
		{"negative steps", FrameParams{Count: 0, Steps: -1, Rate: 60}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := Frame(canvas, test.params); err == nil {
				t.Errorf("Frame(%+v) succeeded, want error", test.params)
			}
		})
	}
}
