package texture

import (
	"image"
	"image/color"
	"path"
	"sort"

	"github.com/pkg/errors"

	"mad-hud/internal/core"
	"mad-hud/internal/logging"
)

// Factory uploads RGBA pixels to a graphics backend.
type Factory interface {
	NewTexture(img *image.RGBA) core.Texture
}

// Handle is a stable reference to a named texture. It reports unloaded until
// the texture has been uploaded, so overlays can hold on to it before the
// image is available.
type Handle struct {
	name string
	tex  core.Texture
}

var _ core.Texture = (*Handle)(nil)

// Name is the resource name the handle was requested with.
func (h *Handle) Name() string { return h.name }

func (h *Handle) Loaded() bool { return h.tex != nil && h.tex.Loaded() }

func (h *Handle) Width() int {
	if h.tex == nil {
		return 0
	}
	return h.tex.Width()
}

func (h *Handle) Height() int {
	if h.tex == nil {
		return 0
	}
	return h.tex.Height()
}

func (h *Handle) Bind() {
	if h.tex != nil {
		h.tex.Bind()
	}
}

type source struct {
	svg    bool
	width  int
	height int
	tint   color.Color
}

// Manager owns the textures of an application.
type Manager struct {
	factory   Factory
	resources core.ResourceManager
	handles   map[string]*Handle
	sources   map[string]source
}

// NewManager returns a manager uploading through factory and reading from
// resources.
func NewManager(factory Factory, resources core.ResourceManager) *Manager {
	return &Manager{
		factory:   factory,
		resources: resources,
		handles:   map[string]*Handle{},
		sources:   map[string]source{},
	}
}

// Get returns the handle for name, creating an unloaded one if needed.
func (m *Manager) Get(name string) *Handle {
	h, ok := m.handles[name]
	if !ok {
		h = &Handle{name: name}
		m.handles[name] = h
	}
	return h
}

// Load decodes the named PNG resource and uploads it.
func (m *Manager) Load(name string) (*Handle, error) {
	if path.Ext(name) == ".svg" {
		return nil, errors.Errorf("texture %q: svg needs a size, use LoadSVG", name)
	}
	m.sources[name] = source{}
	return m.load(name)
}

// LoadSVG rasterises the named SVG resource at width x height, replacing
// currentColor with tint when it is non-nil, and uploads it.
func (m *Manager) LoadSVG(name string, width, height int, tint color.Color) (*Handle, error) {
	m.sources[name] = source{svg: true, width: width, height: height, tint: tint}
	return m.load(name)
}

// Upload stores img under name, replacing any previous texture.
func (m *Manager) Upload(name string, img *image.RGBA) *Handle {
	h := m.Get(name)
	if h.tex != nil {
		core.Dispose(h.tex)
	}
	h.tex = m.factory.NewTexture(img)
	return h
}

// Reload re-reads every texture loaded through Load or LoadSVG. Textures
// that fail keep their previous contents; the first error in name order is
// returned.
func (m *Manager) Reload() error {
	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	var first error
	for _, name := range names {
		if _, err := m.load(name); err != nil {
			logging.Logger().Warn("texture reload failed", "name", name, "err", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Len is the number of known handles.
func (m *Manager) Len() int { return len(m.handles) }

func (m *Manager) load(name string) (*Handle, error) {
	src := m.sources[name]
	data, err := m.resources.ReadFile(name)
	if err != nil {
		return m.Get(name), errors.Wrapf(err, "texture %q", name)
	}
	var img *image.RGBA
	if src.svg {
		img, err = RasterizeSVG(data, src.width, src.height, src.tint)
	} else {
		img, err = Decode(data)
	}
	if err != nil {
		return m.Get(name), errors.Wrapf(err, "texture %q", name)
	}
	h := m.Upload(name, img)
	logging.Logger().Debug("texture loaded", "name", name, "width", h.Width(), "height", h.Height())
	return h, nil
}
