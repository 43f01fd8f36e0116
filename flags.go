package main

import "flag"

// Command-line flags controlling startup behavior. Every flag that mirrors a
// config file field overrides the file when set explicitly.
var (
	// configPathFlag points at an explicit startup configuration file
	// instead of the default search locations.
	configPathFlag = flag.String("config", "", "path to a YAML startup configuration file")

	// engineFPSFlag sets the startup fixed-step simulation rate.
	engineFPSFlag = flag.Int("engine-fps", engineFPSDefault, "startup engine rate in steps per second")

	// visualFPSFlag sets the startup presentation rate.
	visualFPSFlag = flag.Int("visual-fps", visualFPSDefault, "startup visual rate in frames per second (0 = uncapped)")

	// fullscreenFlag starts in fullscreen.
	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")

	// mouseModeFlag starts with the mouse driving the simulation.
	mouseModeFlag = flag.Bool("mouse", false, "start in mouse mode")

	// clickAudioFlag plays a short click whenever a press edge reaches the
	// engine, for timing by ear.
	clickAudioFlag = flag.Bool("click-audio", false, "play a click when the engine applies a button edge")

	noUpdateCheckFlag = flag.Bool("no-update-check", false, "skip the startup update check")

	// debugFlag lowers the log level to include per-subsystem detail.
	debugFlag = flag.Bool("debug", false, "verbose logging")

	// cpuProfileFlag records a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
