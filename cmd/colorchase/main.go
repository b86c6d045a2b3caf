// Color Chase - webcam color tracking game
// Click a colored object to pick its color, then steer it into the blue
// target zone as many times as possible before the countdown runs out.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/teslashibe/colorchase/internal/config"
	clog "github.com/teslashibe/colorchase/internal/log"
	"github.com/teslashibe/colorchase/pkg/colorchase"
)

func main() {
	cfg := parseFlags()

	clog.Init(cfg.LogLevel, cfg.LogJSON)

	app, err := colorchase.New(cfg)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := app.Init(); err != nil {
		log.Fatalf("❌ Initialization failed: %v", err)
	}
	defer app.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		// Deferred cleanup does not run after log.Fatalf.
		app.Shutdown()
		log.Fatalf("❌ Runtime error: %v", err)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() colorchase.Config {
	cfg := colorchase.DefaultConfig()

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	debugTracking := flag.Bool("debug-tracking", false, "Log every blob detection (very verbose)")
	cameraID := flag.Int("camera", config.DefaultCameraID, "Camera device index")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "Write logs as JSON")
	sound := flag.Bool("sound", false, "Play a chime on every point")
	flag.Parse()

	cfg.Debug, cfg.DebugTracking, cfg.Sound = *debug, *debugTracking, *sound
	cfg.Camera.DeviceID = *cameraID
	cfg.LogLevel, cfg.LogJSON = *logLevel, *logJSON
	if cfg.Debug && *logLevel == config.DefaultLogLevel {
		cfg.LogLevel = "debug"
	}
	return cfg
}
