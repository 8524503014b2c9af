package app

import (
	"github.com/pkg/errors"

	"mad-hud/internal/core"
	"mad-hud/internal/font"
	"mad-hud/internal/logging"
	"mad-hud/internal/overlay"
	"mad-hud/internal/texture"
	"mad-hud/internal/widget"
)

// Backend is a graphics implementation that can also upload textures.
type Backend interface {
	core.Graphics
	texture.Factory
}

// StaticHost is a host whose resolution never changes.
type StaticHost core.Resolution

// ScaledResolution returns the fixed resolution.
func (h StaticHost) ScaledResolution() core.Resolution { return core.Resolution(h) }

// NewFont builds the text renderer. On failure it logs and returns nil so
// the session runs with text disabled.
func NewFont(backend Backend, rm core.ResourceManager, opts font.Options) overlay.Font {
	r, err := font.New(backend, backend, rm, opts)
	if err != nil {
		logging.Logger().Error("text rendering disabled", "err", err)
		return nil
	}
	return r
}

// Controller drives one overlay session: it dispatches host ticks and
// brackets every widget with Begin and End.
type Controller struct {
	session   *overlay.Session
	host      core.Host
	resources core.ResourceManager
	textures  *texture.Manager
	widgets   []widget.Widget

	tick   uint64
	reload bool
}

// NewController builds the font, textures and configured widgets on top of
// backend.
func NewController(cfg *Config, backend Backend, host core.Host) (*Controller, error) {
	resources := cfg.Resources()
	textures := texture.NewManager(backend, resources)
	session := overlay.New(backend, NewFont(backend, resources, cfg.FontOptions()))
	widgets, err := widget.Build(cfg.WidgetNames(), widget.Env{Textures: textures})
	if err != nil {
		return nil, errors.Wrap(err, "app: build widgets")
	}
	return newController(session, host, resources, textures, widgets), nil
}

func newController(s *overlay.Session, host core.Host, rm core.ResourceManager, textures *texture.Manager, widgets []widget.Widget) *Controller {
	return &Controller{
		session:   s,
		host:      host,
		resources: rm,
		textures:  textures,
		widgets:   widgets,
	}
}

// Session returns the controlled session.
func (c *Controller) Session() *overlay.Session { return c.session }

// Ticks is the number of ticks dispatched so far.
func (c *Controller) Ticks() uint64 { return c.tick }

// Widgets returns the widgets in drawing order.
func (c *Controller) Widgets() []widget.Widget { return c.widgets }

// RequestReload schedules a resource reload for the next tick.
func (c *Controller) RequestReload() { c.reload = true }

// Tick runs a pending reload, refreshes the resolution and updates every
// widget.
func (c *Controller) Tick() {
	if c.reload {
		c.reload = false
		c.reloadResources()
	}
	res := c.session.Refresh(c.host)
	c.tick++
	for _, w := range c.widgets {
		w.Update(c.tick, res)
	}
}

func (c *Controller) reloadResources() {
	log := logging.Logger()
	if err := c.session.ReloadResources(c.resources); err != nil {
		log.Warn("font reload failed", "err", err)
	}
	if c.textures != nil {
		if err := c.textures.Reload(); err != nil {
			log.Warn("texture reload failed", "err", err)
		}
	}
	log.Info("resources reloaded")
}

// Draw draws every widget in its own pass.
func (c *Controller) Draw() {
	res := c.session.Resolution()
	for _, w := range c.widgets {
		p := w.Position(res)
		if err := c.session.Begin(p.X, p.Y); err != nil {
			logging.Logger().Error("overlay begin failed", "widget", w.Name(), "err", err)
			continue
		}
		w.Draw(c.session)
		if err := c.session.End(); err != nil {
			logging.Logger().Error("overlay end failed", "widget", w.Name(), "err", err)
		}
	}
}
