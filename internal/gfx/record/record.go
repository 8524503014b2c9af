package record

import (
	"fmt"
	"image"

	"mad-hud/internal/core"
)

// Op identifies a recorded graphics call.
type Op int

const (
	OpPushMatrix Op = iota
	OpPopMatrix
	OpTranslate
	OpRotate
	OpScale
	OpColor
	OpEnable
	OpDisable
	OpBegin
	OpEnd
	OpTexCoord
	OpVertex
	OpBind
)

var opNames = [...]string{
	OpPushMatrix: "push",
	OpPopMatrix:  "pop",
	OpTranslate:  "translate",
	OpRotate:     "rotate",
	OpScale:      "scale",
	OpColor:      "color",
	OpEnable:     "enable",
	OpDisable:    "disable",
	OpBegin:      "begin",
	OpEnd:        "end",
	OpTexCoord:   "texcoord",
	OpVertex:     "vertex",
	OpBind:       "bind",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Call is one recorded graphics call. Only the fields relevant to Op are set.
type Call struct {
	Op      Op
	X, Y, Z float64
	Color   core.Color
	Cap     core.Capability
	Texture int
}

// Vertex is an emitted vertex together with the state that applied to it.
type Vertex struct {
	X, Y     float64
	U, V     float64
	Color    core.Color
	Textured bool
	Texture  int
}

// Recorder records graphics calls. The zero value is not usable; call New.
type Recorder struct {
	calls []Call

	depth    int
	maxDepth int
	color    core.Color
	bound    int
	enabled  map[core.Capability]bool
	textures int
}

var _ core.Graphics = (*Recorder)(nil)

// New returns a recorder with texturing enabled, matching the default state
// of the hosts this layer draws into.
func New() *Recorder {
	return &Recorder{
		color:   core.White,
		enabled: map[core.Capability]bool{core.CapTexture2D: true},
	}
}

func (r *Recorder) PushMatrix() {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
	r.calls = append(r.calls, Call{Op: OpPushMatrix})
}

func (r *Recorder) PopMatrix() {
	r.depth--
	r.calls = append(r.calls, Call{Op: OpPopMatrix})
}

func (r *Recorder) Translate(x, y, z float64) {
	r.calls = append(r.calls, Call{Op: OpTranslate, X: x, Y: y, Z: z})
}

func (r *Recorder) Rotate(degrees float64) {
	r.calls = append(r.calls, Call{Op: OpRotate, X: degrees})
}

func (r *Recorder) Scale(x, y, z float64) {
	r.calls = append(r.calls, Call{Op: OpScale, X: x, Y: y, Z: z})
}

func (r *Recorder) Color(c core.Color) {
	r.color = c
	r.calls = append(r.calls, Call{Op: OpColor, Color: c})
}

func (r *Recorder) Enable(c core.Capability) {
	r.enabled[c] = true
	r.calls = append(r.calls, Call{Op: OpEnable, Cap: c})
}

func (r *Recorder) Disable(c core.Capability) {
	r.enabled[c] = false
	r.calls = append(r.calls, Call{Op: OpDisable, Cap: c})
}

func (r *Recorder) Begin(core.Primitive) {
	r.calls = append(r.calls, Call{Op: OpBegin})
}

func (r *Recorder) End() {
	r.calls = append(r.calls, Call{Op: OpEnd})
}

func (r *Recorder) TexCoord(u, v float64) {
	r.calls = append(r.calls, Call{Op: OpTexCoord, X: u, Y: v})
}

func (r *Recorder) Vertex(x, y float64) {
	r.calls = append(r.calls, Call{
		Op:      OpVertex,
		X:       x,
		Y:       y,
		Color:   r.color,
		Texture: r.bound,
	})
}

// Calls returns every call recorded since the last Reset.
func (r *Recorder) Calls() []Call { return r.calls }

// Ops returns the op sequence of the recorded calls.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls whose op is one of ops.
func (r *Recorder) Filter(ops ...Op) []Call {
	var out []Call
	for _, c := range r.calls {
		for _, op := range ops {
			if c.Op == op {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Vertices replays the recording and returns the emitted vertices with the
// texture coordinate and texturing state in effect for each.
func (r *Recorder) Vertices() []Vertex {
	var (
		out      []Vertex
		u, v     float64
		textured = true
	)
	for _, c := range r.calls {
		switch c.Op {
		case OpTexCoord:
			u, v = c.X, c.Y
		case OpEnable:
			if c.Cap == core.CapTexture2D {
				textured = true
			}
		case OpDisable:
			if c.Cap == core.CapTexture2D {
				textured = false
			}
		case OpVertex:
			out = append(out, Vertex{
				X: c.X, Y: c.Y,
				U: u, V: v,
				Color:    c.Color,
				Textured: textured,
				Texture:  c.Texture,
			})
		}
	}
	return out
}

// Depth is the current matrix stack depth relative to the start.
func (r *Recorder) Depth() int { return r.depth }

// MaxDepth is the deepest matrix stack depth seen since the last Reset.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// CurrentColor is the most recently set colour.
func (r *Recorder) CurrentColor() core.Color { return r.color }

// Enabled reports whether c is currently enabled.
func (r *Recorder) Enabled(c core.Capability) bool { return r.enabled[c] }

// Reset drops the recorded calls. Graphics state (colour, capabilities,
// bound texture, stack depth) is kept, like a real context between frames.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.maxDepth = r.depth
}

// Texture is a recorded texture. Binding it records OpBind with its ID.
type Texture struct {
	rec      *Recorder
	id       int
	width    int
	height   int
	loaded   bool
	disposed bool
}

var (
	_ core.Texture  = (*Texture)(nil)
	_ core.Disposer = (*Texture)(nil)
)

// NewTexture registers a loaded texture of the image's size.
func (r *Recorder) NewTexture(img *image.RGBA) core.Texture {
	b := img.Bounds()
	return r.FakeTexture(b.Dx(), b.Dy(), true)
}

// FakeTexture registers a texture of the given size without pixel data.
func (r *Recorder) FakeTexture(width, height int, loaded bool) *Texture {
	r.textures++
	return &Texture{rec: r, id: r.textures, width: width, height: height, loaded: loaded}
}

func (t *Texture) Loaded() bool { return t.loaded }
func (t *Texture) Width() int   { return t.width }
func (t *Texture) Height() int  { return t.height }

// ID is the texture's identifier within its recorder.
func (t *Texture) ID() int { return t.id }

// Dispose marks the texture released.
func (t *Texture) Dispose() {
	t.loaded = false
	t.disposed = true
}

// Disposed reports whether Dispose was called.
func (t *Texture) Disposed() bool { return t.disposed }

func (t *Texture) Bind() {
	t.rec.bound = t.id
	t.rec.calls = append(t.rec.calls, Call{Op: OpBind, Texture: t.id})
}
