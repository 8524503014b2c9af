package main

import (
	"flag"
	"log"
	"os"

	"mad-hud/internal/app"
	"mad-hud/internal/logging"
	_ "mad-hud/internal/widgets/badge"
	_ "mad-hud/internal/widgets/compass"
	_ "mad-hud/internal/widgets/stats"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logging.Set(logging.NewText(os.Stderr, cfg.Debug))

	if cfg.Headless {
		if _, err := app.RunHeadless(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
