//go:build ebiten

package ebitengl

import (
	"image"
	"image/color"
	"math"

	"mad-hud/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxQuadsPerDraw keeps the vertex count of one DrawTriangles call inside
// the uint16 index range.
const maxQuadsPerDraw = 16000

type pendingVertex struct {
	x, y  float32
	u, v  float64
	color core.Color
}

// Graphics draws into an ebiten image. Call SetTarget at the start of every
// frame.
type Graphics struct {
	target *ebiten.Image
	white  *ebiten.Image

	stack []ebiten.GeoM
	cur   ebiten.GeoM

	color     core.Color
	texturing bool
	blend     bool
	bound     *Texture
	u, v      float64

	pending  []pendingVertex
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ core.Graphics = (*Graphics)(nil)

// New returns a backend with texturing and blending enabled.
func New() *Graphics {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Graphics{
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		color:     core.White,
		texturing: true,
		blend:     true,
	}
}

// SetTarget directs drawing to dst and clears the matrix stack.
func (g *Graphics) SetTarget(dst *ebiten.Image) {
	g.target = dst
	g.cur.Reset()
	g.stack = g.stack[:0]
}

func (g *Graphics) PushMatrix() {
	g.stack = append(g.stack, g.cur)
}

func (g *Graphics) PopMatrix() {
	if len(g.stack) == 0 {
		return
	}
	last := len(g.stack) - 1
	g.cur = g.stack[last]
	g.stack = g.stack[:last]
}

// post multiplies m onto the current matrix so it applies to vertices before
// the transforms already in place.
func (g *Graphics) post(m ebiten.GeoM) {
	m.Concat(g.cur)
	g.cur = m
}

func (g *Graphics) Translate(x, y, _ float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	g.post(m)
}

func (g *Graphics) Rotate(degrees float64) {
	var m ebiten.GeoM
	m.Rotate(degrees * math.Pi / 180)
	g.post(m)
}

func (g *Graphics) Scale(x, y, _ float64) {
	var m ebiten.GeoM
	m.Scale(x, y)
	g.post(m)
}

func (g *Graphics) Color(c core.Color) { g.color = c }

func (g *Graphics) Enable(c core.Capability) { g.setCap(c, true) }

func (g *Graphics) Disable(c core.Capability) { g.setCap(c, false) }

func (g *Graphics) setCap(c core.Capability, on bool) {
	switch c {
	case core.CapTexture2D:
		g.texturing = on
	case core.CapBlend:
		g.blend = on
	}
}

func (g *Graphics) Begin(core.Primitive) {
	g.pending = g.pending[:0]
}

func (g *Graphics) TexCoord(u, v float64) {
	g.u, g.v = u, v
}

func (g *Graphics) Vertex(x, y float64) {
	dx, dy := g.cur.Apply(x, y)
	g.pending = append(g.pending, pendingVertex{
		x:     float32(dx),
		y:     float32(dy),
		u:     g.u,
		v:     g.v,
		color: g.color,
	})
}

func (g *Graphics) End() {
	if g.target == nil {
		g.pending = g.pending[:0]
		return
	}
	quads := len(g.pending) / 4
	for start := 0; start < quads; start += maxQuadsPerDraw {
		end := start + maxQuadsPerDraw
		if end > quads {
			end = quads
		}
		g.flush(g.pending[start*4 : end*4])
	}
	g.pending = g.pending[:0]
}

func (g *Graphics) flush(quad []pendingVertex) {
	src := g.white
	textured := g.texturing && g.bound != nil && g.bound.img != nil
	if textured {
		src = g.bound.img
	}
	b := src.Bounds()

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for i, pv := range quad {
		sx, sy := float32(b.Min.X)+0.5, float32(b.Min.Y)+0.5
		if textured {
			sx = float32(b.Min.X) + float32(pv.u*float64(b.Dx()))
			sy = float32(b.Min.Y) + float32(pv.v*float64(b.Dy()))
		}
		r, gr, bl, a := pv.color.Floats()
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX:   pv.x,
			DstY:   pv.y,
			SrcX:   sx,
			SrcY:   sy,
			ColorR: r,
			ColorG: gr,
			ColorB: bl,
			ColorA: a,
		})
		if i%4 == 3 {
			base := uint16(i - 3)
			g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	if !g.blend {
		op.Blend = ebiten.BlendCopy
	}
	g.target.DrawTriangles(g.vertices, g.indices, src, op)
}

// Texture is an ebiten image bound through a Graphics.
type Texture struct {
	g      *Graphics
	img    *ebiten.Image
	width  int
	height int
}

var (
	_ core.Texture  = (*Texture)(nil)
	_ core.Disposer = (*Texture)(nil)
)

// NewTexture uploads img.
func (g *Graphics) NewTexture(img *image.RGBA) core.Texture {
	b := img.Bounds()
	return &Texture{
		g:      g,
		img:    ebiten.NewImageFromImage(img),
		width:  b.Dx(),
		height: b.Dy(),
	}
}

func (t *Texture) Loaded() bool { return t.img != nil }
func (t *Texture) Width() int   { return t.width }
func (t *Texture) Height() int  { return t.height }
func (t *Texture) Bind()        { t.g.bound = t }

// Dispose frees the image. Drawing with a disposed texture is skipped.
func (t *Texture) Dispose() {
	if t.img == nil {
		return
	}
	if t.g.bound == t {
		t.g.bound = nil
	}
	t.img.Dispose()
	t.img = nil
}
