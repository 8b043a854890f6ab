package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// FrameParams drives the demo frame: Count is the running frame
// number, Steps the number of concentric rings, Rate the count at
// which the animation wraps around.
type FrameParams struct {
	Count int
	Steps int
	Rate  int
}

// Clear fills the whole canvas with a single color.
func Clear(c *Canvas, col gg.RGBA) {
	c.GG().ClearWithColor(col)
}

// Frame draws the demo scene: concentric rings shrinking toward the
// center, their colors rotating with the frame count.
func Frame(c *Canvas, p FrameParams) error {
	if p.Steps <= 0 || p.Rate <= 0 {
		return fmt.Errorf("invalid frame params: steps=%v rate=%v", p.Steps, p.Rate)
	}

	ctx := c.GG()
	w, h := c.Size()
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxR := math.Min(cx, cy)

	phase := 2 * math.Pi * float64(p.Count%p.Rate) / float64(p.Rate)
	for i := range p.Steps {
		t := float64(i) / float64(p.Steps)
		r := maxR * (1 - t)

		shade := 0.5 + 0.5*math.Sin(phase+2*math.Pi*t)
		ctx.SetRGBA(shade, 0.2+0.6*t, 1-shade, 0.9)
		ctx.DrawCircle(cx, cy, r)
		if err := ctx.Fill(); err != nil {
			return fmt.Errorf("fill ring %v: %w", i, err)
		}
	}

	ctx.SetRGB(1, 1, 1)
	ctx.SetLineWidth(2)
	ctx.DrawCircle(cx, cy, maxR-1)
	if err := ctx.Stroke(); err != nil {
		return fmt.Errorf("stroke outline: %w", err)
	}

	return nil
}
