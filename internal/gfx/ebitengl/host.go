//go:build ebiten

package ebitengl

import (
	"mad-hud/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host reports the window's scaled resolution. Layout feeds it the outside
// size every frame.
type Host struct {
	scale  int
	width  int
	height int
}

// NewHost returns a host that divides the window by the integer GUI scale.
func NewHost(scale, width, height int) *Host {
	if scale <= 0 {
		scale = 1
	}
	return &Host{scale: scale, width: width / scale, height: height / scale}
}

// Layout records the outside window size and returns the logical screen
// size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width = outsideWidth / h.scale
	h.height = outsideHeight / h.scale
	if h.width < 1 {
		h.width = 1
	}
	if h.height < 1 {
		h.height = 1
	}
	return h.width, h.height
}

func (h *Host) ScaledResolution() core.Resolution {
	return core.Resolution{
		Width:  h.width,
		Height: h.height,
		Factor: float64(h.scale) * ebiten.DeviceScaleFactor(),
	}
}
