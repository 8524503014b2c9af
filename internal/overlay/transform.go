package overlay

import (
	"mad-hud/internal/core"
	"mad-hud/internal/logging"
)

// SetTransformationOrigin moves the pivot used by Scale and Rotate to (x, y)
// relative to the drawing origin.
func (s *Session) SetTransformationOrigin(x, y int) {
	s.pivot = core.Point{X: x, Y: y}
}

// TransformationOrigin returns the pivot offset.
func (s *Session) TransformationOrigin() core.Point { return s.pivot }

// CurrentScale is the product of every Scale since Begin or ResetScale.
func (s *Session) CurrentScale() float64 { return s.scale }

// CurrentRotation is the sum of every Rotate since Begin or ResetRotation,
// in degrees.
func (s *Session) CurrentRotation() float64 { return s.rotation }

// Rotate rotates subsequent drawing by degrees about the pivot.
func (s *Session) Rotate(degrees float64) {
	if !s.rendering {
		return
	}
	s.rotateAbout(degrees)
	s.rotation += degrees
}

// ResetRotation undoes the accumulated rotation.
func (s *Session) ResetRotation() {
	if !s.rendering || s.rotation == 0 {
		return
	}
	s.rotateAbout(-s.rotation)
	s.rotation = 0
}

// Scale scales subsequent drawing uniformly by multiplier about the pivot.
// A zero multiplier cannot be undone and is ignored.
func (s *Session) Scale(multiplier float64) {
	if !s.rendering {
		return
	}
	if multiplier == 0 {
		logging.Logger().Debug("overlay scale by zero ignored")
		return
	}
	s.scaleAbout(multiplier)
	s.scale *= multiplier
}

// ResetScale undoes the accumulated scale.
func (s *Session) ResetScale() {
	if !s.rendering || s.scale == 1 {
		return
	}
	s.scaleAbout(1 / s.scale)
	s.scale = 1
}

func (s *Session) anchor() (float64, float64) {
	p := s.origin.Add(s.pivot)
	return float64(p.X), float64(p.Y)
}

func (s *Session) rotateAbout(degrees float64) {
	x, y := s.anchor()
	s.gfx.Translate(x, y, 0)
	s.gfx.Rotate(degrees)
	s.gfx.Translate(-x, -y, 0)
}

func (s *Session) scaleAbout(m float64) {
	x, y := s.anchor()
	s.gfx.Translate(x, y, 0)
	s.gfx.Scale(m, m, m)
	s.gfx.Translate(-x, -y, 0)
}
