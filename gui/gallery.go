package gui

import (
	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/library"
)

// gutter is the spacing around and between tiles.
const gutter = 20

// tile is one laid-out library image.
type tile struct {
	img *library.Image
	// pos is the content-space top-left corner.
	pos gallery.Vec2
	// size covers the image and its caption.
	size gallery.Vec2
}

// Gallery lays the library out in rows, left to right, wrapping at the
// viewport edge.
type Gallery struct {
	tiles    []tile
	viewport gallery.Vec2
}

// Resize implements Widget.
func (g *Gallery) Resize(s *State) {
	g.viewport = s.screen.Size()

	if g.tiles == nil {
		images := s.library.Images()
		g.tiles = make([]tile, len(images))
		for i, img := range images {
			g.tiles[i].img = img
		}
	}
	var captionH uint32
	if s.captions != nil {
		captionH = s.captions.Height()
	}

	right := g.viewport.SatSub(gutter).X
	left, top := uint32(gutter), uint32(gutter)
	var rowH uint32
	for i := range g.tiles {
		t := &g.tiles[i]
		t.size = t.img.Size()
		t.size.Y += captionH

		// A tile wider than the viewport still gets a row of its own.
		if left+t.size.X > right && left > gutter {
			left = gutter
			top += rowH + gutter
			rowH = 0
		}
		rowH = max(rowH, t.size.Y)
		t.pos = gallery.V2(left, top)
		left += t.size.X + gutter
	}
	s.view.height = top + rowH + gutter
}

// Draw implements Widget. Visible tiles claim their decode; ready ones are
// copied, the rest get a placeholder and are retried on a later frame.
func (g *Gallery) Draw(s *State) {
	scroll := int64(s.view.scroll)
	visible := 0
	for i := range g.tiles {
		t := &g.tiles[i]
		y := int64(t.pos.Y) - scroll
		if y <= -int64(t.size.Y) || y >= int64(g.viewport.Y) {
			continue
		}
		visible++
		g.drawTile(s, t, int32(y))
	}

	if limit := s.config.MaxLoaded; limit > 0 {
		s.resident.Trim(max(limit, visible))
	}
}

func (g *Gallery) drawTile(s *State, t *tile, y int32) {
	img := t.img
	size := img.Size()

	slot := img.Get(s.loader)
	s.resident.Touch(img)
	drawn := slot.TryView(func(v gallery.BufferView) {
		s.screen.CopyFrom(v, t.pos.X, y)
	})
	if !drawn {
		placeholder(s.screen, t.pos.X, y, size, s.config.SecondaryColor)
	}

	if s.captions != nil {
		strip := s.captions.Render(img.Name(), size.X)
		s.screen.CopyFrom(strip, t.pos.X, y+int32(size.Y))
	}
}

// placeholder fills the part of a not-yet-decoded tile below the top edge.
func placeholder(screen *gallery.Buffer, x uint32, y int32, size gallery.Vec2, c uint32) {
	top := max(y, 1)
	if int64(top) >= int64(y)+int64(size.Y) {
		return
	}
	h := uint32(int64(y) + int64(size.Y) - int64(top))
	screen.FillRect(gallery.V2(x, uint32(top)), gallery.V2(size.X, h), c)
}
