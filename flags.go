package main

import "flag"

// Command-line flags. Everything tunable lives in the YAML config; flags pick
// the config file and switch optional runtime outputs.
var (
	// configPathFlag names a YAML overlay applied on top of the embedded defaults.
	configPathFlag = flag.String("config", "", "YAML config file (overrides embedded defaults)")

	// writeConfigFlag dumps the effective configuration and exits.
	writeConfigFlag = flag.String("write-config", "", "write the effective config as YAML to this path and exit")

	// recordDefaultPGO triggers scripted play to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "autoplay for 15s while capturing default.pgo, then exit")

	// debugFlag enables the FPS and field overlay plus periodic trigger summaries.
	debugFlag = flag.Bool("debug", false, "show FPS and field overlay, log trigger summaries")

	// muteFlag disables audio output regardless of audio.enabled.
	muteFlag = flag.Bool("mute", false, "disable audio output")

	recordFlag = flag.String("record", "", "record the audio output to this WAV file")

	triggerLogFlag = flag.String("trigger-log", "", "append every fired note to this CSV file, creating it if needed")

	// seedFlag fixes the field's random source; zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for star placement (0 uses the clock)")

	autoStartFlag = flag.Bool("autostart", false, "start the field immediately instead of waiting for Enter")
)
