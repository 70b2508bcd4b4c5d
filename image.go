package gallery

import (
	"image"
	"image/color"
)

// ImageView exposes a decoded image.Image as an opaque BufferView without
// copying it, so decoded pictures can be resampled straight into a Buffer.
// Alpha is ignored: every pixel reads as 0xFF.
type ImageView struct {
	img    image.Image
	origin image.Point
	size   Vec2
}

// NewImageView wraps img.
func NewImageView(img image.Image) *ImageView {
	b := img.Bounds()
	return &ImageView{
		img:    img,
		origin: b.Min,
		size:   V2(uint32(b.Dx()), uint32(b.Dy())),
	}
}

var _ BufferView = (*ImageView)(nil)

// Size implements BufferView.
func (v *ImageView) Size() Vec2 {
	return v.size
}

// Get implements BufferView.
func (v *ImageView) Get(pos Vec2) uint32 {
	x, y := v.origin.X+int(pos.X), v.origin.Y+int(pos.Y)

	// Fast paths for the types the stdlib and x/image decoders produce.
	switch img := v.img.(type) {
	case *image.YCbCr:
		c := img.YCbCrAt(x, y)
		r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
		return Pack(0xFF, r, g, b)
	case *image.NRGBA:
		i := img.PixOffset(x, y)
		return Pack(0xFF, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	case *image.RGBA:
		i := img.PixOffset(x, y)
		return Pack(0xFF, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	case *image.Gray:
		g := img.Pix[img.PixOffset(x, y)]
		return Pack(0xFF, g, g, g)
	}

	n := color.NRGBAModel.Convert(v.img.At(x, y)).(color.NRGBA)
	return Pack(0xFF, n.R, n.G, n.B)
}

// FromImage copies img into a new Buffer.
func FromImage(img image.Image) *Buffer {
	return Clone(NewImageView(img))
}

// ToImage copies b into a new *image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(b.size.X), int(b.size.Y)))
	b.RGBA(img.Pix[:0])
	return img
}
