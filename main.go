package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"parabola/app"
	"parabola/hal"
	"parabola/internal/buildinfo"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var hcfg hal.HeadlessConfig
	var tui, demo bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&demo, "demo", false, "Replay a scripted drag in headless mode.")
	flag.BoolVar(&tui, "tui", false, "Render in the terminal with mouse input.")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flag.BoolVar(&cfg.DragAll, "drag-all", cfg.DragAll, "Allow dragging every point, not only the middle one.")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log every pointer event.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	switch {
	case hcfg.Enabled:
		hcfg.Width, hcfg.Height = cfg.Width, cfg.Height
		if demo {
			hcfg.Script = app.DemoScript(cfg.Width, cfg.Height)
			if hcfg.Ticks == 0 {
				hcfg.Ticks = uint64(len(hcfg.Script)) + 1
			}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hcfg)
		if errors.Is(err, context.Canceled) {
			return
		}

	case tui:
		err = hal.RunTerminal(hal.TerminalConfig{Width: cfg.Width, Height: cfg.Height, Hz: hcfg.Hz}, newApp)

	default:
		err = hal.RunWindow(hal.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Scale:  cfg.Scale,
			Title:  "Parabola (" + buildinfo.Short() + ")",
		}, newApp)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
