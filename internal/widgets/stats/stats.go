package stats

import (
	"fmt"

	"mad-hud/internal/core"
	"mad-hud/internal/overlay"
	"mad-hud/internal/widget"
)

const (
	margin     = 4
	padding    = 3
	lineHeight = 12
)

var (
	panelColor = core.Color{R: 16, G: 16, B: 20, A: 170}
	labelColor = core.Color{R: 200, G: 200, B: 210, A: 255}
)

// Stats shows the tick counter and the scaled resolution in the top-left
// corner.
type Stats struct {
	tick  uint64
	res   core.Resolution
	lines []string
}

// New returns a stats panel.
func New() *Stats { return &Stats{} }

// Name returns the widget identifier.
func (s *Stats) Name() string { return "stats" }

// Position anchors the panel to the top-left corner.
func (s *Stats) Position(core.Resolution) core.Point {
	return core.Point{X: margin, Y: margin}
}

// Update refreshes the displayed values.
func (s *Stats) Update(tick uint64, res core.Resolution) {
	s.tick = tick
	s.res = res
	s.lines = append(s.lines[:0],
		fmt.Sprintf("§7tick §f%d", tick),
		fmt.Sprintf("§7screen §f%dx%d §8@%.1fx", res.Width, res.Height, res.Factor),
	)
}

// Draw paints the panel sized to its widest line.
func (s *Stats) Draw(sess *overlay.Session) {
	width := 0
	for _, line := range s.lines {
		if w := sess.StringWidth(line); w > width {
			width = w
		}
	}
	height := len(s.lines) * lineHeight
	sess.DrawRect(panelColor, 0, 0, width+2*padding, height+2*padding)
	for i, line := range s.lines {
		sess.DrawText(line, padding, padding+i*lineHeight, labelColor)
	}
}

func init() {
	widget.Register("stats", func(widget.Env) (widget.Widget, error) {
		return New(), nil
	})
}
