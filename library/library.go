// Package library discovers images on disk and owns their lazily decoded
// surfaces.
//
// A Library is built once at startup from the configured roots. Each
// entry records a display size from a header-only probe; pixels are only
// decoded when the gallery first asks for an entry through a Loader.
package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/internal/image"
)

// Option configures a Library.
type Option func(*Library)

// WithBounds sets the thumbnail bounding box. A zero size keeps native sizes.
func WithBounds(bounds gallery.Vec2) Option {
	return func(lib *Library) {
		lib.bounds = bounds
	}
}

// WithHome sets the directory relative roots resolve against.
// The default is the user home directory.
func WithHome(dir string) Option {
	return func(lib *Library) {
		lib.home = dir
	}
}

// WithProbeWorkers caps how many headers Load probes at once.
// Values below 1 probe sequentially.
func WithProbeWorkers(n int) Option {
	return func(lib *Library) {
		lib.probeWorkers = max(n, 1)
	}
}

// Library is the ordered list of discovered images. Order follows
// discovery; the same file reached through two roots appears twice.
//
// Loading is not safe for concurrent use. Once loaded, the entries may be
// read from any goroutine.
type Library struct {
	images       []*Image
	bounds       gallery.Vec2
	home         string
	probeWorkers int
}

// New creates an empty library.
func New(opts ...Option) *Library {
	lib := &Library{
		bounds:       DefaultBounds,
		probeWorkers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Images returns the entries in discovery order.
func (lib *Library) Images() []*Image {
	return lib.images
}

// Len returns the number of entries.
func (lib *Library) Len() int {
	return len(lib.images)
}

// Load adds every image below root.
//
// A relative root resolves against the home directory. A missing root is
// created so the user has somewhere to put pictures. A root naming a file
// loads that file. Directories are walked recursively in lexical order;
// unreadable entries and non-image files are skipped.
func (lib *Library) Load(root string) {
	log := gallery.Logger()
	root = lib.resolve(root)

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(root, 0o755); err != nil {
			log.Debug("library: create root", "path", root, "err", err)
		}
		return
	case err != nil:
		log.Debug("library: stat root", "path", root, "err", err)
		return
	case !info.IsDir():
		if err := lib.LoadFile(root); err != nil {
			log.Debug("library: skip file", "path", root, "err", err)
		}
		return
	}

	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("library: walk", "path", path, "err", err)
			return nil
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})

	found := lib.probeAll(paths)
	lib.images = append(lib.images, found...)
	log.Info("library: loaded root", "path", root, "images", len(found))
}

// probeAll probes paths concurrently and returns the images among them in
// the order of paths.
func (lib *Library) probeAll(paths []string) []*Image {
	out := make([]*Image, len(paths))
	var g errgroup.Group
	g.SetLimit(lib.probeWorkers)
	for i, path := range paths {
		g.Go(func() error {
			img, err := lib.probe(path)
			if err != nil {
				gallery.Logger().Debug("library: skip file", "path", path, "err", err)
				return nil
			}
			out[i] = img
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, img := range out {
		if img != nil {
			out[n] = img
			n++
		}
	}
	return out[:n]
}

// LoadFile probes the header of path and appends an entry sized to fit the
// bounding box. It returns an error if path is not a readable image.
func (lib *Library) LoadFile(path string) error {
	img, err := lib.probe(path)
	if err != nil {
		return err
	}
	lib.images = append(lib.images, img)
	return nil
}

func (lib *Library) probe(path string) (*Image, error) {
	cfg, _, err := image.Probe(path)
	if err != nil {
		return nil, err
	}
	native := gallery.V2(uint32(cfg.Width), uint32(cfg.Height))
	name := norm.NFC.String(filepath.Base(path))
	return NewImage(path, name, FitSize(native, lib.bounds)), nil
}

// Loaded returns how many entries currently hold a decoded surface.
func (lib *Library) Loaded() int {
	n := 0
	for _, img := range lib.images {
		if img.Loaded() {
			n++
		}
	}
	return n
}

// UnloadAll drops every decoded surface.
func (lib *Library) UnloadAll() {
	for _, img := range lib.images {
		img.Unload()
	}
}

func (lib *Library) resolve(root string) string {
	if filepath.IsAbs(root) {
		return root
	}
	home := lib.home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return root
		}
		home = h
	}
	return filepath.Join(home, root)
}
