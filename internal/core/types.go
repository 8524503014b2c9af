package core

// Point is an integer screen-space coordinate.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// Resolution describes the host's scaled screen. Width and Height are in
// logical (scaled) pixels; Factor is the number of device pixels per logical
// pixel.
type Resolution struct {
	Width  int
	Height int
	Factor float64
}

// Alignment controls horizontal placement of drawn text relative to x.
type Alignment int

const (
	// AlignLeft draws text starting at x.
	AlignLeft Alignment = iota
	// AlignCenter centres text on x.
	AlignCenter
	// AlignRight ends text at x.
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Host exposes the parts of the embedding application the overlay layer
// reads every tick.
type Host interface {
	ScaledResolution() Resolution
}

// ResourceManager loads named resources (fonts, images) for reloadable
// services.
type ResourceManager interface {
	ReadFile(name string) ([]byte, error)
}
