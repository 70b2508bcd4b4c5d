package gallery

import (
	"math"
	"reflect"
	"testing"
)

func TestComputeWeights_Normalized(t *testing.T) {
	sizes := []uint32{1, 2, 3, 5, 7, 16, 33, 100, 640}
	for _, src := range sizes {
		for _, target := range sizes {
			table := ComputeWeights(src, target)
			if len(table) != int(target) {
				t.Fatalf("ComputeWeights(%d, %d) len = %d, want %d", src, target, len(table), target)
			}
			for o, w := range table {
				if len(w.W) == 0 {
					t.Fatalf("ComputeWeights(%d, %d)[%d] has an empty window", src, target, o)
				}
				if int(w.Start)+len(w.W) > int(src) {
					t.Fatalf("ComputeWeights(%d, %d)[%d] window [%d,%d) exceeds source",
						src, target, o, w.Start, int(w.Start)+len(w.W))
				}
				var sum float64
				for _, v := range w.W {
					if v < 0 {
						t.Fatalf("ComputeWeights(%d, %d)[%d] has negative weight %v", src, target, o, v)
					}
					sum += float64(v)
				}
				if math.Abs(sum-1) > 1e-4 {
					t.Errorf("ComputeWeights(%d, %d)[%d] sum = %v, want 1", src, target, o, sum)
				}
			}
		}
	}
}

func TestComputeWeights_Identity(t *testing.T) {
	// The tent is centered half a sample right of the output, so output o
	// reads sample o+1. The last window is all zeros and falls back to the
	// nearest sample.
	for _, n := range []uint32{1, 4, 37} {
		for o, w := range ComputeWeights(n, n) {
			want := min(uint32(o)+1, n-1)
			if w.Start != want || len(w.W) != 1 || w.W[0] != 1 {
				t.Errorf("ComputeWeights(%d, %d)[%d] = %+v, want {Start:%d W:[1]}", n, n, o, w, want)
			}
		}
	}
}

func TestComputeWeights_Downsample(t *testing.T) {
	tests := []struct {
		src, target uint32
		out         int
		start       uint32
		want        []float64
	}{
		// input 1, support 2: |i-1.5|/2 gives 0.75, 0.25, 0.25 for i = 0..2.
		{4, 2, 0, 0, []float64{1.0 / 7, 3.0 / 7, 3.0 / 7}},
		// input 3: i = 2, 3 at distances 0.75, 0.25; i = 1 falls off the tent.
		{4, 2, 1, 2, []float64{0.25, 0.75}},
		// input 0.75, support 1.5: raw 1/6, 5/6, 1/2.
		{3, 2, 0, 0, []float64{1.0 / 9, 5.0 / 9, 3.0 / 9}},
		// input 2.25: only i = 2 is inside the tent.
		{3, 2, 1, 2, []float64{1}},
	}
	for _, tt := range tests {
		w := ComputeWeights(tt.src, tt.target)[tt.out]
		if w.Start != tt.start || len(w.W) != len(tt.want) {
			t.Errorf("ComputeWeights(%d, %d)[%d] = %+v, want Start %d with %d weights",
				tt.src, tt.target, tt.out, w, tt.start, len(tt.want))
			continue
		}
		for i := range tt.want {
			if math.Abs(float64(w.W[i])-tt.want[i]) > 1e-6 {
				t.Errorf("ComputeWeights(%d, %d)[%d].W = %v, want %v", tt.src, tt.target, tt.out, w.W, tt.want)
				break
			}
		}
	}
}

func TestComputeWeights_UpsampleFallback(t *testing.T) {
	// 2 -> 4: output 3 centers at 1.75, where both samples are a full
	// support away.
	table := ComputeWeights(2, 4)
	want := []Weights{
		{Start: 0, W: []float32{0.25, 0.75}},
		{Start: 1, W: []float32{1}},
		{Start: 1, W: []float32{1}},
		{Start: 1, W: []float32{1}},
	}
	for o := range want {
		if !reflect.DeepEqual(table[o], want[o]) {
			t.Errorf("ComputeWeights(2, 4)[%d] = %+v, want %+v", o, table[o], want[o])
		}
	}
}

func TestComputeWeights_Zero(t *testing.T) {
	if ComputeWeights(0, 4) != nil || ComputeWeights(4, 0) != nil {
		t.Error("ComputeWeights with a zero length should return nil")
	}
}
