package badge

import (
	"math"

	"mad-hud/internal/core"
	"mad-hud/internal/overlay"
	"mad-hud/internal/widget"
)

const (
	cell       = 32
	margin     = 8
	flipTicks  = 60
	pulseTicks = 40
	badgeIcon  = "badge.svg"
)

var okTint = core.Color{R: 60, G: 170, B: 90, A: 255}

// Badge shows a pulsing status icon cut from a two-cell sprite sheet in the
// bottom-left corner.
type Badge struct {
	sheet core.Texture
	ok    bool
	pulse float64
}

// New returns a badge drawing from sheet, whose left cell is the "ok" icon
// and right cell the "failing" icon.
func New(sheet core.Texture) *Badge {
	return &Badge{sheet: sheet, ok: true, pulse: 1}
}

// Name returns the widget identifier.
func (b *Badge) Name() string { return "badge" }

// OK reports which cell is currently shown.
func (b *Badge) OK() bool { return b.ok }

// Position anchors the badge to the bottom-left corner.
func (b *Badge) Position(res core.Resolution) core.Point {
	return core.Point{X: margin, Y: res.Height - cell - margin}
}

// Update flips the status periodically and advances the pulse.
func (b *Badge) Update(tick uint64, _ core.Resolution) {
	if tick > 0 && tick%flipTicks == 0 {
		b.ok = !b.ok
	}
	phase := float64(tick%pulseTicks) / pulseTicks
	b.pulse = 1 + 0.1*math.Sin(2*math.Pi*phase)
}

// Draw paints the icon scaled about its centre and a status label.
func (b *Badge) Draw(s *overlay.Session) {
	tx := 0
	label := "§aok"
	if !b.ok {
		tx = cell
		label = "§cfailing"
	}
	s.SetTransformationOrigin(cell/2, cell/2)
	s.Scale(b.pulse)
	s.DrawTextureRegion(b.sheet, 0, 0, tx, 0, cell, cell)
	s.ResetScale()
	s.DrawText(label, cell+4, cell/2-6, core.White)
}

func init() {
	widget.Register("badge", func(env widget.Env) (widget.Widget, error) {
		sheet, err := env.Textures.LoadSVG(badgeIcon, 2*cell, cell, okTint)
		if err != nil {
			return nil, err
		}
		return New(sheet), nil
	})
}
