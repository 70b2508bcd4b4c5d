package gallery

import "math"

// Weights holds the contributions of a run of source samples to one
// output sample. W[i] applies to source index Start+i.
type Weights struct {
	Start uint32
	W     []float32
}

// ComputeWeights builds the per-output weight table for resampling one axis
// from src samples to target samples with a tent filter.
//
// The filter support is max(src/target, 1): downsampling widens the tent
// to cover every source sample under the output pixel, upsampling
// interpolates between neighbours. Sample i sits at distance
// |i - input - 0.5| from the output center input, which places the tent
// half a sample to the right; a 1:1 mapping therefore reads sample o+1.
// Each output's weights sum to 1. A window whose weights are all zero
// (the last output of a 1:1 or upsampling table) takes the nearest sample
// instead. Zero weights at the window edges are trimmed.
//
// Returns nil if src or target is zero.
func ComputeWeights(src, target uint32) []Weights {
	if src == 0 || target == 0 {
		return nil
	}

	ratio := float32(src) / float32(target)
	support := ratio
	if support < 1 {
		support = 1
	}

	table := make([]Weights, target)
	for out := range target {
		input := (float32(out) + 0.5) * ratio
		start := clampInt(int(math.Floor(float64(input-support))), 0, int(src)-1)
		end := clampInt(int(math.Ceil(float64(input+support))), start+1, int(src))

		wts := make([]float32, end-start)
		var sum float32
		for i := start; i < end; i++ {
			x := abs32((float32(i) - input - 0.5) / support)
			var w float32
			if x < 1 {
				w = 1 - x
			}
			wts[i-start] = w
			sum += w
		}

		if sum == 0 {
			// Nearest-sample fallback keeps the band from going black.
			wts[clampInt(int(input), start, end-1)-start] = 1
		} else {
			for i := range wts {
				wts[i] /= sum
			}
		}

		lo, hi := 0, len(wts)
		for lo < hi-1 && wts[lo] == 0 {
			lo++
		}
		for hi > lo+1 && wts[hi-1] == 0 {
			hi--
		}
		table[out] = Weights{Start: uint32(start + lo), W: wts[lo:hi]}
	}
	return table
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
