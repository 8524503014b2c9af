package core

// Capability is a toggleable piece of graphics state.
type Capability int

const (
	// CapTexture2D enables sampling the bound texture for emitted vertices.
	CapTexture2D Capability = iota
	// CapBlend enables source-over alpha blending.
	CapBlend
)

// Primitive selects how vertices between Begin and End are assembled.
type Primitive int

const (
	// PrimitiveQuads groups every four vertices into a quad.
	PrimitiveQuads Primitive = iota
)

// Graphics is an immediate-mode drawing API with a matrix stack. Transform
// calls post-multiply the current matrix, so the most recent call applies to
// vertices first. All calls happen on the rendering goroutine.
type Graphics interface {
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float64)
	// Rotate rotates about the Z axis by degrees.
	Rotate(degrees float64)
	Scale(x, y, z float64)

	Color(c Color)
	Enable(c Capability)
	Disable(c Capability)

	Begin(p Primitive)
	End()
	// TexCoord sets the texture coordinate used by the next Vertex.
	TexCoord(u, v float64)
	Vertex(x, y float64)
}

// Texture is an image that can be bound for textured drawing.
type Texture interface {
	Loaded() bool
	Width() int
	Height() int
	Bind()
}

// Disposer is implemented by textures that hold backend memory. A disposed
// texture reports unloaded.
type Disposer interface {
	Dispose()
}

// Dispose releases t if its backend supports it.
func Dispose(t Texture) {
	if d, ok := t.(Disposer); ok {
		d.Dispose()
	}
}
