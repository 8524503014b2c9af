package font

import (
	"image"
	"unicode"

	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"mad-hud/internal/core"
	"mad-hud/internal/logging"
	"mad-hud/internal/textcode"
	"mad-hud/internal/texture"
)

// DefaultSpacing is the gap in pixels between two glyphs.
const DefaultSpacing = 1

const atlasColumns = 16

// Options selects the face a Renderer is built from. Resource wins over
// Builtin; with neither set the 7x13 basic font is used.
type Options struct {
	// Resource names a TTF/OTF file read through the resource manager.
	Resource string
	// Builtin is "goregular" or "gomono".
	Builtin string
	// Size in points for scalable faces. Defaults to 12.
	Size float64
	// DPI for scalable faces. Defaults to 72.
	DPI float64
	// Spacing overrides DefaultSpacing when non-zero.
	Spacing int
	// ShadowOffset is the shadow displacement in pixels. Defaults to 1.
	ShadowOffset float64
}

type glyph struct {
	advance int
	x, y    int
	w, h    int
}

// Renderer is a bitmap font service. Use New to construct one.
type Renderer struct {
	gfx      core.Graphics
	textures texture.Factory
	opts     Options

	face       xfont.Face
	atlas      core.Texture
	atlasW     float64
	atlasH     float64
	glyphs     map[rune]glyph
	fallback   glyph
	lineHeight int
}

// New builds a renderer and its glyph atlas. rm is only consulted when
// opts.Resource is set.
func New(gfx core.Graphics, textures texture.Factory, rm core.ResourceManager, opts Options) (*Renderer, error) {
	if opts.Size <= 0 {
		opts.Size = 12
	}
	if opts.DPI <= 0 {
		opts.DPI = 72
	}
	if opts.Spacing == 0 {
		opts.Spacing = DefaultSpacing
	}
	if opts.ShadowOffset == 0 {
		opts.ShadowOffset = 1
	}
	r := &Renderer{gfx: gfx, textures: textures, opts: opts}
	if err := r.Reload(rm); err != nil {
		return nil, errors.Wrap(err, "font: init")
	}
	return r, nil
}

// Reload rebuilds the face and atlas. On failure the previous face stays in
// use.
func (r *Renderer) Reload(rm core.ResourceManager) error {
	face, err := r.openFace(rm)
	if err != nil {
		return err
	}
	if err := r.build(face); err != nil {
		face.Close()
		return err
	}
	logging.Logger().Debug("font atlas built",
		"glyphs", len(r.glyphs), "width", r.atlasW, "height", r.atlasH, "line_height", r.lineHeight)
	return nil
}

func (r *Renderer) openFace(rm core.ResourceManager) (xfont.Face, error) {
	var data []byte
	switch {
	case r.opts.Resource != "":
		if rm == nil {
			return nil, errors.Errorf("font %q: no resource manager", r.opts.Resource)
		}
		b, err := rm.ReadFile(r.opts.Resource)
		if err != nil {
			return nil, errors.Wrapf(err, "font %q", r.opts.Resource)
		}
		data = b
	case r.opts.Builtin == "goregular":
		data = goregular.TTF
	case r.opts.Builtin == "gomono":
		data = gomono.TTF
	case r.opts.Builtin != "":
		return nil, errors.Errorf("font: unknown builtin %q", r.opts.Builtin)
	default:
		return basicfont.Face7x13, nil
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "font: parse")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    r.opts.Size,
		DPI:     r.opts.DPI,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "font: new face")
	}
	return face, nil
}

func atlasRunes() []rune {
	runes := make([]rune, 0, 95+95)
	for c := rune(0x20); c < 0x7f; c++ {
		runes = append(runes, c)
	}
	for c := rune(0xa1); c <= 0xff; c++ {
		runes = append(runes, c)
	}
	return runes
}

func (r *Renderer) build(face xfont.Face) error {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	cellH := ascent + metrics.Descent.Ceil()
	if cellH <= 0 {
		return errors.New("font: face has no height")
	}

	type entry struct {
		r   rune
		adv int
	}
	var present []entry
	cellW := 0
	for _, ru := range atlasRunes() {
		adv, ok := face.GlyphAdvance(ru)
		if !ok {
			continue
		}
		w := adv.Ceil()
		present = append(present, entry{r: ru, adv: w})
		if w > cellW {
			cellW = w
		}
	}
	if len(present) == 0 || cellW <= 0 {
		return errors.New("font: face covers no atlas glyphs")
	}

	rows := (len(present) + atlasColumns - 1) / atlasColumns
	img := image.NewRGBA(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))
	d := &xfont.Drawer{Dst: img, Src: image.White, Face: face}
	glyphs := make(map[rune]glyph, len(present))
	for i, e := range present {
		cx := (i % atlasColumns) * cellW
		cy := (i / atlasColumns) * cellH
		d.Dot = fixed.P(cx, cy+ascent)
		d.DrawString(string(e.r))
		glyphs[e.r] = glyph{advance: e.adv, x: cx, y: cy, w: e.adv, h: cellH}
	}

	fallback, ok := glyphs['?']
	if !ok {
		fallback = glyphs[present[0].r]
	}

	old := r.face
	r.face = face
	if r.atlas != nil {
		core.Dispose(r.atlas)
	}
	r.atlas = r.textures.NewTexture(img)
	r.atlasW = float64(img.Bounds().Dx())
	r.atlasH = float64(img.Bounds().Dy())
	r.glyphs = glyphs
	r.fallback = fallback
	r.lineHeight = cellH
	if old != nil && old != face {
		old.Close()
	}
	return nil
}

func (r *Renderer) lookup(ru rune) glyph {
	if g, ok := r.glyphs[ru]; ok {
		return g
	}
	return r.fallback
}

// CharWidth is the advance of ru in pixels, excluding spacing. Runes
// missing from the atlas measure as '?'.
func (r *Renderer) CharWidth(ru rune) int { return r.lookup(ru).advance }

// CharSpacing is the gap added after every glyph.
func (r *Renderer) CharSpacing() int { return r.opts.Spacing }

// LineHeight is the height of one line of text in pixels.
func (r *Renderer) LineHeight() int { return r.lineHeight }

// Width measures text the same way DrawString lays it out.
func (r *Renderer) Width(text string) int {
	return textcode.Width(text, r.CharWidth, r.opts.Spacing)
}

// DrawString draws text with its top edge at y and returns its width. "§0"
// to "§f" switch to a palette colour and "§r" restores c.
func (r *Renderer) DrawString(text string, x, y float64, c core.Color, align core.Alignment, shadow bool) int {
	width := r.Width(text)
	if width <= 0 {
		return width
	}
	switch align {
	case core.AlignCenter:
		x -= float64(width) / 2
	case core.AlignRight:
		x -= float64(width)
	}
	if r.atlas == nil || !r.atlas.Loaded() {
		return width
	}
	r.atlas.Bind()
	r.gfx.Begin(core.PrimitiveQuads)
	if shadow {
		r.emit(text, x+r.opts.ShadowOffset, y+r.opts.ShadowOffset, c, true)
	}
	r.emit(text, x, y, c, false)
	r.gfx.End()
	c.Apply(r.gfx)
	return width
}

func (r *Renderer) emit(text string, x, y float64, base core.Color, shadow bool) {
	tone := func(c core.Color) core.Color {
		if shadow {
			return c.Darken(shadowFactor)
		}
		return c
	}
	tone(base).Apply(r.gfx)
	pen := x
	textcode.Scan(text, func(t textcode.Token) {
		switch t.Kind {
		case textcode.Code:
			if t.Rune == 'r' || t.Rune == 'R' {
				tone(base).Apply(r.gfx)
				return
			}
			if c, ok := PaletteColor(t.Rune); ok {
				c.A = base.A
				tone(c).Apply(r.gfx)
			}
		case textcode.Glyph:
			g := r.lookup(t.Rune)
			if !unicode.IsSpace(t.Rune) {
				r.quad(pen, y, g)
			}
			pen += float64(g.advance + r.opts.Spacing)
		}
	})
}

func (r *Renderer) quad(x, y float64, g glyph) {
	u1 := float64(g.x) / r.atlasW
	v1 := float64(g.y) / r.atlasH
	u2 := float64(g.x+g.w) / r.atlasW
	v2 := float64(g.y+g.h) / r.atlasH
	right := x + float64(g.w)
	bottom := y + float64(g.h)
	r.gfx.TexCoord(u1, v1)
	r.gfx.Vertex(x, y)
	r.gfx.TexCoord(u1, v2)
	r.gfx.Vertex(x, bottom)
	r.gfx.TexCoord(u2, v2)
	r.gfx.Vertex(right, bottom)
	r.gfx.TexCoord(u2, v1)
	r.gfx.Vertex(right, y)
}
