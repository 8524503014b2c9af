// Package overlay draws screen-space overlays through an immediate-mode
// graphics API.
package overlay

import (
	"github.com/pkg/errors"

	"mad-hud/internal/core"
	"mad-hud/internal/logging"
)

var (
	// ErrAlreadyRendering is returned by Begin while a session is active.
	ErrAlreadyRendering = errors.New("overlay: session already rendering")
	// ErrNotRendering is returned by End while no session is active.
	ErrNotRendering = errors.New("overlay: session not rendering")
)

// Font is the text service a session draws and measures strings with.
type Font interface {
	CharWidth(r rune) int
	CharSpacing() int
	DrawString(text string, x, y float64, c core.Color, align core.Alignment, shadow bool) int
	Reload(rm core.ResourceManager) error
}

// Session holds the render state of one overlay pass. Coordinates are
// relative to the origin given to Begin; Scale and Rotate pivot on that origin
// plus the transformation origin. It must only be used from the rendering
// goroutine.
type Session struct {
	gfx  core.Graphics
	font Font

	rendering bool
	origin    core.Point
	pivot     core.Point
	scale     float64
	rotation  float64
	// mask is reserved for clipping support and is never set.
	mask bool

	resolution   core.Resolution
	warnedNoFont bool
}

// New returns an idle session drawing into gfx. font may be nil, in which
// case text drawing and measuring are disabled.
func New(gfx core.Graphics, font Font) *Session {
	return &Session{gfx: gfx, font: font, scale: 1}
}

// Refresh re-reads the host's scaled resolution. The host tick dispatcher
// calls it once per tick; it does not depend on the session being active.
func (s *Session) Refresh(host core.Host) core.Resolution {
	s.resolution = host.ScaledResolution()
	return s.resolution
}

// ReloadResources asks the font service to reload its resources from rm.
func (s *Session) ReloadResources(rm core.ResourceManager) error {
	if s.font == nil {
		return nil
	}
	if err := s.font.Reload(rm); err != nil {
		return errors.Wrap(err, "overlay: reload font")
	}
	logging.Logger().Debug("overlay font reloaded")
	return nil
}

// Begin starts a pass with its drawing origin at (x, y). It pushes a matrix
// checkpoint, enables blending and resets the colour to opaque white.
func (s *Session) Begin(x, y int) error {
	if s.rendering {
		logging.Logger().Debug("overlay begin while rendering", "x", x, "y", y, "origin", s.origin)
		return ErrAlreadyRendering
	}
	s.rendering = true
	s.gfx.PushMatrix()
	s.origin = core.Point{X: x, Y: y}
	s.pivot = core.Point{}
	s.scale = 1
	s.rotation = 0
	s.gfx.Enable(core.CapBlend)
	core.White.Apply(s.gfx)
	return nil
}

// End undoes any scale and rotation left by the overlay, pops the matrix
// checkpoint and returns the session to idle.
func (s *Session) End() error {
	if !s.rendering {
		return ErrNotRendering
	}
	s.ResetScale()
	s.ResetRotation()
	s.gfx.Translate(float64(-s.origin.X), float64(-s.origin.Y), 0)
	s.origin = core.Point{}
	s.pivot = core.Point{}
	s.gfx.PopMatrix()
	core.White.Apply(s.gfx)
	s.rendering = false
	return nil
}

// Rendering reports whether the session is between Begin and End.
func (s *Session) Rendering() bool { return s.rendering }

// Origin is the drawing origin of the current pass.
func (s *Session) Origin() core.Point { return s.origin }

// Resolution is the scaled resolution read by the last Refresh.
func (s *Session) Resolution() core.Resolution { return s.resolution }

// IsMasking always reports false; clipping is not implemented.
func (s *Session) IsMasking() bool { return s.mask }
