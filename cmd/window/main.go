package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfighter/internal/app"
	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfighter",
	})

	settings, err := config.Load("")
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	logger.SetLevel(settings.Level())

	a := app.New(app.Options{Seed: settings.Seed, Logger: logger})
	if err := window.Run(a); err != nil {
		logger.Fatal("window", "err", err)
	}
}
