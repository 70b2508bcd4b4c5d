// Package config reads and writes the nanogallery configuration file.
//
// The file is line oriented, one "key;value" pair per line:
//
//	library;Pictures
//	library;/mnt/photos
//	background_color;#FF1A1A1A
//	text_color;#FFEEEEEE
//	primary_color;#FFEEEEEE
//	secondary_color;#FF4B4B4B
//	workers;6
//	thumbnail_size;500
//	max_loaded;0
//	pico;
//
// library may repeat. Colors are "#RRGGBB" (opaque) or "#AARRGGBB". pico is
// a flag: its presence enables constrained mode. Unknown keys and malformed
// values are ignored.
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gallery "github.com/gogpu/nanogallery"
)

// FileName is the configuration file name looked up next to the executable.
const FileName = "nanogallery.cfg"

// Config holds the user settings.
type Config struct {
	// Libraries are the roots scanned for images. Relative paths resolve
	// against the home directory.
	Libraries []string

	BackgroundColor uint32
	TextColor       uint32
	PrimaryColor    uint32
	SecondaryColor  uint32

	// Pico enables constrained mode: inline decoding under an allocation cap.
	Pico bool

	// Workers caps the decode pool.
	Workers int
	// ThumbnailSize is the edge of the square thumbnail bounding box.
	// 0 shows images at native size.
	ThumbnailSize uint32
	// MaxLoaded is the number of decoded images kept resident. 0 means unlimited.
	MaxLoaded int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Libraries:       []string{"Pictures"},
		BackgroundColor: 0xFF1A1A1A,
		TextColor:       0xFFEEEEEE,
		PrimaryColor:    0xFFEEEEEE,
		SecondaryColor:  0xFF4B4B4B,
		Workers:         6,
		ThumbnailSize:   500,
	}
}

// Load reads path into a copy of Default.
//
// A missing file is created with the defaults. Any other read error is
// returned along with the defaults. Once the file is read, its library lines
// replace the default library list, even if there are none.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		gallery.Logger().Info("config: writing defaults", "path", path)
		return c, c.Save(path)
	}
	if err != nil {
		return c, fmt.Errorf("config: read: %w", err)
	}

	c.Libraries = nil
	if err := c.parse(bytes.NewReader(data)); err != nil {
		return c, fmt.Errorf("config: parse: %w", err)
	}
	return c, nil
}

// parse applies every recognized line of r to c.
func (c *Config) parse(r io.Reader) error {
	log := gallery.Logger()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		key, value, ok := strings.Cut(strings.TrimRight(sc.Text(), "\r"), ";")
		if !ok {
			continue
		}
		if err := c.set(key, value); err != nil {
			log.Debug("config: ignoring line", "line", line, "key", key, "err", err)
		}
	}
	return sc.Err()
}

// set applies one key. Unknown keys are ignored.
func (c *Config) set(key, value string) error {
	switch key {
	case "library":
		if value != "" {
			c.Libraries = append(c.Libraries, value)
		}
	case "background_color":
		return setColor(&c.BackgroundColor, value)
	case "text_color":
		return setColor(&c.TextColor, value)
	case "primary_color":
		return setColor(&c.PrimaryColor, value)
	case "secondary_color":
		return setColor(&c.SecondaryColor, value)
	case "pico":
		c.Pico = true
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid worker count %q", value)
		}
		c.Workers = n
	case "thumbnail_size":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid thumbnail size %q", value)
		}
		c.ThumbnailSize = uint32(n)
	case "max_loaded":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid max_loaded %q", value)
		}
		c.MaxLoaded = n
	}
	return nil
}

func setColor(dst *uint32, value string) error {
	v, err := gallery.ParseHex(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Save writes every field of c to path.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// WriteTo writes c in file format.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, lib := range c.Libraries {
		fmt.Fprintf(&b, "library;%s\n", lib)
	}
	fmt.Fprintf(&b, "background_color;%s\n", gallery.FormatHex(c.BackgroundColor))
	fmt.Fprintf(&b, "text_color;%s\n", gallery.FormatHex(c.TextColor))
	fmt.Fprintf(&b, "primary_color;%s\n", gallery.FormatHex(c.PrimaryColor))
	fmt.Fprintf(&b, "secondary_color;%s\n", gallery.FormatHex(c.SecondaryColor))
	fmt.Fprintf(&b, "workers;%d\n", c.Workers)
	fmt.Fprintf(&b, "thumbnail_size;%d\n", c.ThumbnailSize)
	fmt.Fprintf(&b, "max_loaded;%d\n", c.MaxLoaded)
	if c.Pico {
		b.WriteString("pico;\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
