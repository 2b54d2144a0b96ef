package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"conevision/app"
	"conevision/hal"
	"conevision/internal/buildinfo"
	"conevision/internal/logging"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

func main() {
	var cfg hal.HeadlessConfig
	var logLevel, logFormat string
	var printConfig bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&cfg.PointerX, "pointer-x", 400, "Pointer x in headless mode.")
	flag.IntVar(&cfg.PointerY, "pointer-y", 150, "Pointer y in headless mode.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.StringVar(&logFormat, "log-format", "console", "Log format: console or json.")
	flag.BoolVar(&printConfig, "print-config", false, "Print the scene constants as YAML and exit.")
	flag.Parse()

	appCfg := app.DefaultConfig()
	if printConfig {
		if err := yaml.NewEncoder(os.Stdout).Encode(appCfg.Scene); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log, err := logging.New(logLevel, logging.Format(logFormat))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()
	appCfg.Log = log
	log.Info("starting", zap.String("build", buildinfo.Short()), zap.Bool("headless", cfg.Enabled))

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		cfg.Width, cfg.Height = screenWidth, screenHeight
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			Title:  "Cone of Vision - press p to pause (" + buildinfo.Short() + ")",
			Width:  screenWidth,
			Height: screenHeight,
		}, newApp)
	}

	if err == nil || errors.Is(err, app.ErrTerminated) || errors.Is(err, context.Canceled) {
		log.Info("bye")
		return
	}
	log.Error("run failed", zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
