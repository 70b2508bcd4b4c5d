package gallery

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

// Packed colors are 0xAARRGGBB.
const (
	Black       uint32 = 0xFF000000
	White       uint32 = 0xFFFFFFFF
	Transparent uint32 = 0x00000000

	opaque uint32 = 0xFF << 24
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("gallery: invalid hex color")

// Pack builds a packed 0xAARRGGBB color.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed color into its channels.
func Unpack(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// FromColor converts a standard color.Color to a packed color.
// The color is un-premultiplied so translucent pixels keep their hue.
func FromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.A, n.R, n.G, n.B)
}

// ToColor converts a packed color to color.NRGBA.
func ToColor(c uint32) color.NRGBA {
	a, r, g, b := Unpack(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" (hex digits in either case).
// Six-digit colors are opaque.
func ParseHex(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, ErrInvalidHex
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, ErrInvalidHex
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, ErrInvalidHex
	}
	c := uint32(v)
	if len(hex) == 6 {
		c |= opaque
	}
	return c, nil
}

// FormatHex formats a packed color as "#AARRGGBB".
func FormatHex(c uint32) string {
	s := strings.ToUpper(strconv.FormatUint(uint64(c), 16))
	return "#" + strings.Repeat("0", 8-len(s)) + s
}
