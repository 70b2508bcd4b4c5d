package gallery

import (
	"image"
	"image/color"
	"testing"
)

func TestImageView_Formats(t *testing.T) {
	rect := image.Rect(0, 0, 2, 1)

	nrgba := image.NewNRGBA(rect)
	nrgba.Set(1, 0, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x40})

	rgba := image.NewRGBA(rect)
	rgba.Set(1, 0, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})

	gray := image.NewGray(rect)
	gray.SetGray(1, 0, color.Gray{Y: 0x77})

	paletted := image.NewPaletted(rect, color.Palette{color.Black, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}})
	paletted.SetColorIndex(1, 0, 1)

	tests := []struct {
		name string
		img  image.Image
		want uint32
	}{
		{"nrgba ignores alpha", nrgba, 0xFF112233},
		{"rgba", rgba, 0xFF112233},
		{"gray", gray, 0xFF777777},
		{"paletted", paletted, 0xFF112233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewImageView(tt.img)
			if v.Size() != V2(2, 1) {
				t.Fatalf("Size() = %v, want {2 1}", v.Size())
			}
			if got := v.Get(V2(1, 0)); got != tt.want {
				t.Errorf("Get(1,0) = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestImageView_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.NRGBA{R: 0xAA, A: 0xFF})
	v := NewImageView(img)
	if v.Size() != V2(3, 2) {
		t.Fatalf("Size() = %v, want {3 2}", v.Size())
	}
	if got := v.Get(V2(0, 0)); got != 0xFFAA0000 {
		t.Errorf("Get(0,0) = %#08x, want 0xFFAA0000", got)
	}
}

func TestImageView_YCbCr(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)
	for i := range img.Y {
		img.Y[i] = 235
	}
	for i := range img.Cb {
		img.Cb[i] = 128
		img.Cr[i] = 128
	}
	r, g, b := color.YCbCrToRGB(235, 128, 128)
	want := Pack(0xFF, r, g, b)
	if got := NewImageView(img).Get(V2(1, 1)); got != want {
		t.Errorf("Get = %#08x, want %#08x", got, want)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	b := patterned(4, 3)
	back := FromImage(b.ToImage())
	equalBuffers(t, back, b)
}
