package main

import (
	"errors"
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	log.SetReportTimestamp(false)
	if *debugFlag {
		log.SetLevel(log.DebugLevel)
	}

	cfg, cfgPath, err := loadConfig(*configPathFlag)
	if err != nil {
		log.Fatal("loading configuration", "err", err)
	}
	if cfgPath != "" {
		log.Debug("configuration loaded", "path", cfgPath)
	}
	applyFlagOverrides(&cfg)

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatal("starting cpu profile", "err", err)
		}
		defer stop()
	}

	g := newGame(cfg)

	ebiten.SetWindowTitle(appTitle)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// The loop paces itself; the host must not add a frame cap or a tick
	// cadence of its own.
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game loop", "err", err)
	}
}

// applyFlagOverrides lets explicitly passed flags beat the config file.
func applyFlagOverrides(cfg *appConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine-fps":
			cfg.EngineFPS = clampInt(*engineFPSFlag, engineFPSMin, engineFPSMax)
		case "visual-fps":
			cfg.VisualFPS = clampInt(*visualFPSFlag, visualFPSMin, visualFPSMax)
		case "fullscreen":
			cfg.Fullscreen = *fullscreenFlag
		case "mouse":
			cfg.MouseMode = *mouseModeFlag
		case "click-audio":
			cfg.ClickAudio = *clickAudioFlag
		case "no-update-check":
			cfg.SkipUpdateCheck = *noUpdateCheckFlag
		}
	})
}
