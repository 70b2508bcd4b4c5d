package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Registered decoders. image.Decode sniffs the format from the header.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	_ "github.com/xfmoulet/qoi"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when no registered decoder recognizes the data.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyFile is returned for zero-length files.
	ErrEmptyFile = errors.New("image: empty file")

	// ErrTooLarge is returned when decoding would exceed the allocation cap.
	ErrTooLarge = errors.New("image: exceeds allocation limit")
)

// bytesPerPixel is the worst-case in-memory cost the allocation cap assumes.
const bytesPerPixel = 4

// Probe reads only the image header at path and returns its dimensions
// and format name.
func Probe(path string) (image.Config, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", wrapDecodeErr("probe", err)
	}
	return cfg, format, nil
}

// Load opens path and decodes it, auto-detecting the format.
// A positive maxAlloc rejects images whose decoded pixels would need more
// than maxAlloc bytes, before any pixel data is read.
func Load(path string, maxAlloc int64) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("image: stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, "", ErrEmptyFile
	}

	return Decode(f, maxAlloc)
}

// Decode decodes an image from r, auto-detecting the format.
// See Load for the meaning of maxAlloc.
func Decode(r io.ReadSeeker, maxAlloc int64) (image.Image, string, error) {
	if maxAlloc > 0 {
		cfg, _, err := image.DecodeConfig(r)
		if err != nil {
			return nil, "", wrapDecodeErr("decode", err)
		}
		if need := int64(cfg.Width) * int64(cfg.Height) * bytesPerPixel; need > maxAlloc {
			return nil, "", fmt.Errorf("%w: %dx%d needs %d bytes, limit %d",
				ErrTooLarge, cfg.Width, cfg.Height, need, maxAlloc)
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("image: rewind: %w", err)
		}
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", wrapDecodeErr("decode", err)
	}
	return img, format, nil
}

func wrapDecodeErr(op string, err error) error {
	if errors.Is(err, image.ErrFormat) {
		return ErrUnsupportedFormat
	}
	return fmt.Errorf("image: %s: %w", op, err)
}
