package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flipbook/config"
)

func main() {
	configPath := flag.String("config", "flipbook.yaml", "YAML config file; built-in defaults are used when it does not exist")
	assetRoot := flag.String("assets", "", "asset root directory (overrides the config)")
	debug := flag.Bool("debug", false, "enable debug mode")
	watchAssets := flag.Bool("watch", false, "rebuild frames when files under the asset root change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config %s not found, using defaults", *configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := applyFlags(cfg, *assetRoot, *watchAssets); err != nil {
		log.Fatalf("flags: %v", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, *debug || cfg.Debug)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// applyFlags overrides config values from the command line. A -assets path is
// made absolute so it stays relative to the working directory rather than the
// config file.
func applyFlags(cfg *config.Config, assetRoot string, watchAssets bool) error {
	if assetRoot != "" {
		abs, err := filepath.Abs(assetRoot)
		if err != nil {
			return err
		}
		cfg.Assets.Root = abs
	}
	if watchAssets {
		cfg.Assets.Watch = true
	}
	return nil
}
