package app

import (
	"flag"
	"strings"

	"mad-hud/internal/core"
	"mad-hud/internal/font"
	"mad-hud/internal/resource"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Widgets  string
	Scale    int
	TPS      int
	Width    int
	Height   int
	Assets   string
	Font     string
	FontSize float64
	Frames   int
	Headless bool
	Realtime bool
	Debug    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Widgets:  "stats,compass,badge",
		Scale:    2,
		TPS:      60,
		Width:    960,
		Height:   540,
		FontSize: 12,
		Frames:   120,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Widgets, "widgets", c.Widgets, "comma separated overlays to show")
	fs.IntVar(&c.Scale, "scale", c.Scale, "GUI scale factor")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory searched for fonts and textures before the built-in set")
	fs.StringVar(&c.Font, "font", c.Font, "TTF/OTF resource for text; empty uses the 7x13 basic font")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "point size of -font")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to render in headless mode")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "render into the recording backend instead of a window")
	fs.BoolVar(&c.Realtime, "realtime", c.Realtime, "pace headless frames at -tps")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// WidgetNames splits the -widgets list, dropping blanks.
func (c *Config) WidgetNames() []string {
	var names []string
	for _, name := range strings.Split(c.Widgets, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FontOptions returns the options the text renderer is built with.
func (c *Config) FontOptions() font.Options {
	return font.Options{Resource: c.Font, Size: c.FontSize}
}

// Resources layers the -assets directory over the built-in resources.
func (c *Config) Resources() core.ResourceManager {
	if c.Assets == "" {
		return resource.Builtin()
	}
	return resource.Layered{resource.Dir(c.Assets), resource.Builtin()}
}
