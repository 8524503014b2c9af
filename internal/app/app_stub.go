//go:build !ebiten

package app

import "mad-hud/internal/logging"

// Run falls back to the headless renderer; the windowed build needs the
// 'ebiten' tag.
func Run(cfg *Config) error {
	logging.Logger().Warn("built without the 'ebiten' tag, rendering headless")
	_, err := RunHeadless(cfg)
	return err
}
