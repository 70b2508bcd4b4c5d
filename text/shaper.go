package text

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Measure returns the shaped advance width of s in pixels.
func (f *Face) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// gtfont.Face is not safe for concurrent use; NewFace is cheap.
		Face:     gtfont.NewFace(f.shapeFont),
		Size:     fixed.Int26_6(f.size * 64),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shaperPool.Put(hb)

	return float64(out.Advance) / 64
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
