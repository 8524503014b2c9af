package overlay

import (
	"mad-hud/internal/core"
	"mad-hud/internal/logging"
	"mad-hud/internal/textcode"
)

// DrawString draws text at (x, y) relative to the drawing origin and returns
// its width in pixels. Coordinates stay in unscaled pixels: the offset from
// the origin is divided by the current scale to cancel the scale on the
// matrix stack.
func (s *Session) DrawString(text string, x, y int, c core.Color, align core.Alignment, shadow bool) int {
	if !s.rendering || !s.hasFont() {
		return 0
	}
	fx, fy := float64(x), float64(y)
	if s.scale != 1 {
		fx /= s.scale
		fy /= s.scale
	}
	fx += float64(s.origin.X)
	fy += float64(s.origin.Y)
	return s.font.DrawString(text, fx, fy, c, align, shadow)
}

// DrawText draws left-aligned text with a shadow.
func (s *Session) DrawText(text string, x, y int, c core.Color) int {
	return s.DrawString(text, x, y, c, core.AlignLeft, true)
}

// StringWidth measures text in pixels, skipping formatting escapes.
func (s *Session) StringWidth(text string) int {
	if !s.hasFont() {
		return 0
	}
	return textcode.Width(text, s.font.CharWidth, s.font.CharSpacing())
}

func (s *Session) hasFont() bool {
	if s.font != nil {
		return true
	}
	if !s.warnedNoFont {
		s.warnedNoFont = true
		logging.Logger().Warn("overlay text disabled: no font service")
	}
	return false
}
