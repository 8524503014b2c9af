package overlay

import (
	"mad-hud/internal/core"
	"mad-hud/internal/logging"
)

// DrawRect fills the rectangle spanned by two corners with c.
func (s *Session) DrawRect(c core.Color, x1, y1, x2, y2 int) {
	if !s.rendering {
		return
	}
	s.gfx.Disable(core.CapTexture2D)
	c.Apply(s.gfx)
	left, top, right, bottom := s.box(float64(x1), float64(y1), float64(x2), float64(y2))
	s.gfx.Begin(core.PrimitiveQuads)
	s.gfx.Vertex(left, top)
	s.gfx.Vertex(left, bottom)
	s.gfx.Vertex(right, bottom)
	s.gfx.Vertex(right, top)
	s.gfx.End()
	s.gfx.Enable(core.CapTexture2D)
}

// DrawTexture draws t into the rectangle spanned by two corners, sampling the
// region spanned by two normalised texture coordinates. Either pair of
// corners may be given in any order.
func (s *Session) DrawTexture(t core.Texture, x1, y1, x2, y2 int, u1, v1, u2, v2 float64) {
	s.texturedQuad(t, float64(x1), float64(y1), float64(x2), float64(y2), u1, v1, u2, v2)
}

// DrawTexturePixels is DrawTexture with texture coordinates in pixels.
func (s *Session) DrawTexturePixels(t core.Texture, x1, y1, x2, y2, tx1, ty1, tx2, ty2 int) {
	s.DrawTextureF(t, float64(x1), float64(y1), float64(x2), float64(y2),
		float64(tx1), float64(ty1), float64(tx2), float64(ty2))
}

// DrawTextureRegion copies a width x height region at (tx, ty) of t to (x, y)
// without stretching.
func (s *Session) DrawTextureRegion(t core.Texture, x, y, tx, ty, width, height int) {
	s.DrawTexturePixels(t, x, y, x+width, y+height, tx, ty, tx+width, ty+height)
}

// DrawTextureF is DrawTexturePixels without integer rounding of screen or
// texture coordinates.
func (s *Session) DrawTextureF(t core.Texture, x1, y1, x2, y2, tx1, ty1, tx2, ty2 float64) {
	if !s.textureReady(t) {
		return
	}
	w, h := float64(t.Width()), float64(t.Height())
	if w <= 0 || h <= 0 {
		return
	}
	s.texturedQuad(t, x1, y1, x2, y2, tx1/w, ty1/h, tx2/w, ty2/h)
}

func (s *Session) texturedQuad(t core.Texture, x1, y1, x2, y2, u1, v1, u2, v2 float64) {
	if !s.textureReady(t) {
		return
	}
	s.gfx.Enable(core.CapTexture2D)
	s.gfx.Enable(core.CapBlend)
	t.Bind()
	left, top, right, bottom := s.box(x1, y1, x2, y2)
	uMin, uMax := minmax(u1, u2)
	vMin, vMax := minmax(v1, v2)
	s.gfx.Begin(core.PrimitiveQuads)
	s.gfx.TexCoord(uMin, vMin)
	s.gfx.Vertex(left, top)
	s.gfx.TexCoord(uMin, vMax)
	s.gfx.Vertex(left, bottom)
	s.gfx.TexCoord(uMax, vMax)
	s.gfx.Vertex(right, bottom)
	s.gfx.TexCoord(uMax, vMin)
	s.gfx.Vertex(right, top)
	s.gfx.End()
}

func (s *Session) textureReady(t core.Texture) bool {
	if !s.rendering || t == nil {
		return false
	}
	if !t.Loaded() {
		logging.Logger().Debug("overlay skipped unloaded texture")
		return false
	}
	return true
}

// box normalises two corners and offsets them by the drawing origin. Quads
// are emitted from (left, top) through (left, bottom) and (right, bottom) to
// (right, top).
func (s *Session) box(x1, y1, x2, y2 float64) (left, top, right, bottom float64) {
	left, right = minmax(x1, x2)
	top, bottom = minmax(y1, y2)
	ox, oy := float64(s.origin.X), float64(s.origin.Y)
	return left + ox, top + oy, right + ox, bottom + oy
}

func minmax(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}
