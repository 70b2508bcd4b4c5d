package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Ellipsis is appended to names that had to be shortened.
const Ellipsis = "…"

// Ellipsize shortens s so that it measures at most maxWidth pixels,
// cutting on grapheme cluster boundaries and appending Ellipsis. It returns
// s unchanged if it already fits and "" if not even the ellipsis fits.
func Ellipsize(f *Face, s string, maxWidth float64) string {
	if f.Measure(s) <= maxWidth {
		return s
	}
	if f.Measure(Ellipsis) > maxWidth {
		return ""
	}

	// Cluster end offsets, so cuts never split a combining sequence.
	var ends []int
	state := -1
	rest := s
	offset := 0
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		ends = append(ends, offset)
	}

	// Largest prefix that fits, found by binary search over clusters.
	lo, hi := 0, len(ends)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.Measure(trimmed(s[:ends[mid-1]])) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return Ellipsis
	}
	return trimmed(s[:ends[lo-1]])
}

func trimmed(prefix string) string {
	return strings.TrimRight(prefix, " ") + Ellipsis
}
