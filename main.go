package main

import (
	"flag"
	"log/slog"
	"os"

	"the.quetzal.community/orrery/internal"
)

func main() {
	var (
		config = flag.String("config", "", "TOML scene file, the built-in scene is used when empty")
		width  = flag.Int("width", 0, "window width, overrides the scene file")
		height = flag.Int("height", 0, "window height, overrides the scene file")
	)
	flag.Parse()

	cfg := internal.DefaultConfig()
	if *config != "" {
		loaded, err := internal.LoadConfig(*config)
		if err != nil {
			slog.Error("loading scene", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	if err := internal.Run(cfg); err != nil {
		slog.Error("orrery", "err", err)
		os.Exit(1)
	}
}
