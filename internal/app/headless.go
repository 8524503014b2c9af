package app

import (
	"time"

	"mad-hud/internal/core"
	"mad-hud/internal/gfx/record"
	"mad-hud/internal/logging"
)

// Summary totals a headless run.
type Summary struct {
	Frames   int
	Vertices int
	Binds    int
	MaxDepth int
}

// RunHeadless renders cfg.Frames frames into the recording backend and logs
// the vertex and bind counts of each. With cfg.Realtime set, frames are paced
// at cfg.TPS.
func RunHeadless(cfg *Config) (Summary, error) {
	rec := record.New()
	scale := max(cfg.Scale, 1)
	host := StaticHost{Width: cfg.Width / scale, Height: cfg.Height / scale, Factor: float64(scale)}
	ctrl, err := NewController(cfg, rec, host)
	if err != nil {
		return Summary{}, err
	}

	var pacer *core.FixedStep
	if cfg.Realtime {
		pacer = core.NewFixedStep(cfg.TPS)
	}
	log := logging.Logger()
	var sum Summary
	for sum.Frames < cfg.Frames {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(pacer.Step() / 4)
			continue
		}
		rec.Reset()
		ctrl.Tick()
		ctrl.Draw()

		verts := len(rec.Vertices())
		binds := rec.Count(record.OpBind)
		sum.Frames++
		sum.Vertices += verts
		sum.Binds += binds
		sum.MaxDepth = max(sum.MaxDepth, rec.MaxDepth())
		log.Debug("frame", "n", sum.Frames, "vertices", verts, "binds", binds)
	}
	log.Info("headless run finished",
		"frames", sum.Frames,
		"vertices", sum.Vertices,
		"binds", sum.Binds,
		"max_depth", sum.MaxDepth,
	)
	return sum, nil
}
