package compass

import (
	"image/color"

	"mad-hud/internal/core"
	"mad-hud/internal/overlay"
	"mad-hud/internal/widget"
)

const (
	size        = 32
	margin      = 8
	turnPerTick = 3.0
	needleIcon  = "needle.svg"
)

var needleTint = color.RGBA{R: 230, G: 230, B: 240, A: 255}

// Compass spins a needle icon about its centre in the top-right corner.
type Compass struct {
	needle  core.Texture
	heading float64
}

// New returns a compass drawing needle.
func New(needle core.Texture) *Compass {
	return &Compass{needle: needle}
}

// Name returns the widget identifier.
func (c *Compass) Name() string { return "compass" }

// Heading is the needle angle in degrees.
func (c *Compass) Heading() float64 { return c.heading }

// Position anchors the compass to the top-right corner.
func (c *Compass) Position(res core.Resolution) core.Point {
	return core.Point{X: res.Width - size - margin, Y: margin}
}

// Update advances the needle.
func (c *Compass) Update(uint64, core.Resolution) {
	c.heading += turnPerTick
	if c.heading >= 360 {
		c.heading -= 360
	}
}

// Draw paints the needle rotated about its centre and a label below it.
func (c *Compass) Draw(s *overlay.Session) {
	s.SetTransformationOrigin(size/2, size/2)
	s.Rotate(c.heading)
	s.DrawTexture(c.needle, 0, 0, size, size, 0, 0, 1, 1)
	s.ResetRotation()
	s.DrawString("N", size/2, size+2, core.White, core.AlignCenter, true)
}

func init() {
	widget.Register("compass", func(env widget.Env) (widget.Widget, error) {
		needle, err := env.Textures.LoadSVG(needleIcon, size, size, needleTint)
		if err != nil {
			return nil, err
		}
		return New(needle), nil
	})
}
