//go:build ebiten

package app

import (
	"github.com/pkg/errors"

	"mad-hud/internal/gfx/ebitengl"
	"mad-hud/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl *Controller
	gfx  *ebitengl.Graphics
	host *ebitengl.Host
}

// New constructs a Game drawing the configured overlays.
func New(cfg *Config) (*Game, error) {
	gfx := ebitengl.New()
	host := ebitengl.NewHost(cfg.Scale, cfg.Width, cfg.Height)
	ctrl, err := NewController(cfg, gfx, host)
	if err != nil {
		return nil, err
	}
	return &Game{ctrl: ctrl, gfx: gfx, host: host}, nil
}

// Update handles input and dispatches one host tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.ctrl.RequestReload()
	}
	g.ctrl.Tick()
	return nil
}

// Draw renders every overlay onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.gfx.SetTarget(screen)
	g.ctrl.Draw()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and blocks until it is closed.
func Run(cfg *Config) error {
	game, err := New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("mad-hud")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logging.Logger().Info("window opened", "widgets", cfg.WidgetNames(), "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "app: run game")
	}
	return nil
}
