// Command nanogallery shows the images under the configured library roots
// as a scrollable grid of thumbnails.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/config"
	"github.com/gogpu/nanogallery/gui"
	"github.com/gogpu/nanogallery/internal/parallel"
	"github.com/gogpu/nanogallery/internal/window"
	"github.com/gogpu/nanogallery/library"
	"github.com/gogpu/nanogallery/text"
)

// captionSize is the caption font size in pixels.
const captionSize = 14

func main() {
	var (
		configPath = flag.String("config", defaultConfigPath(), "configuration file")
		verbose    = flag.Bool("v", false, "verbose logging")
		noCaptions = flag.Bool("no-captions", false, "hide file names")
		width      = flag.Int("width", 1280, "initial window width")
		height     = flag.Int("height", 720, "initial window height")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gallery.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
	}

	lib := library.New(library.WithBounds(gallery.V2(cfg.ThumbnailSize, cfg.ThumbnailSize)))
	for _, root := range cfg.Libraries {
		lib.Load(root)
	}
	for _, root := range flag.Args() {
		lib.Load(root)
	}

	pool := parallel.NewPool(cfg.Workers)

	var opts []gui.Option
	if !*noCaptions {
		face, err := text.Default(captionSize)
		if err != nil {
			log.Fatalf("caption font: %v", err)
		}
		defer face.Close()
		opts = append(opts, gui.WithCaptions(text.NewCaptioner(face, cfg.TextColor, cfg.BackgroundColor)))
	}

	state := gui.NewState(cfg, lib, pool, opts...)
	if err := window.Run(state, gui.ClampWindow(*width, *height)); err != nil {
		log.Fatalf("window: %v", err)
	}
}

// defaultConfigPath places the configuration next to the executable.
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.FileName
	}
	return filepath.Join(filepath.Dir(exe), config.FileName)
}
