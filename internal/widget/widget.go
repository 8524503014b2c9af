package widget

import (
	"sort"

	"github.com/pkg/errors"

	"mad-hud/internal/core"
	"mad-hud/internal/overlay"
	"mad-hud/internal/texture"
)

// Widget is an overlay drawn once per frame inside its own session pass.
type Widget interface {
	Name() string
	// Position is the drawing origin of the widget for the given screen.
	Position(res core.Resolution) core.Point
	// Update runs once per host tick.
	Update(tick uint64, res core.Resolution)
	Draw(s *overlay.Session)
}

// Env carries the services a widget factory may need.
type Env struct {
	Textures *texture.Manager
}

// Factory constructs a widget.
type Factory func(env Env) (Widget, error)

var widgets = map[string]Factory{}

// Register adds a widget factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	widgets[name] = f
}

// Widgets exposes the registry of available widget factories.
func Widgets() map[string]Factory {
	return widgets
}

// Names lists the registered widget names in sorted order.
func Names() []string {
	names := make([]string, 0, len(widgets))
	for name := range widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named widgets in order.
func Build(names []string, env Env) ([]Widget, error) {
	out := make([]Widget, 0, len(names))
	for _, name := range names {
		f, ok := widgets[name]
		if !ok {
			return nil, errors.Errorf("unknown widget %q", name)
		}
		w, err := f(env)
		if err != nil {
			return nil, errors.Wrapf(err, "widget %q", name)
		}
		out = append(out, w)
	}
	return out, nil
}
