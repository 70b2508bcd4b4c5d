package gui

// Widget is one element of a View.
type Widget interface {
	// Resize recomputes layout after the screen size changed.
	Resize(s *State)
	// Draw renders into s.Screen().
	Draw(s *State)
}

// View is an ordered set of widgets sharing one scroll offset.
type View struct {
	widgets []Widget

	// height is the content height reported by the layout.
	height uint32
	scroll uint32

	scroller Scroller
}

// NewView returns the gallery view: the tile grid with a scrollbar on top.
func NewView() *View {
	return &View{
		widgets: []Widget{&Gallery{}, &Scrollbar{}},
	}
}

func (v *View) resize(s *State) {
	for _, w := range v.widgets {
		w.Resize(s)
	}
	v.scroll = min(v.scroll, v.maxScroll(s.screen.Size().Y))
	v.scroller.Stop()
}

func (v *View) draw(s *State) {
	for _, w := range v.widgets {
		w.Draw(s)
	}
}

// maxScroll returns the largest offset that still fills the viewport.
func (v *View) maxScroll(viewport uint32) uint32 {
	return v.height - min(viewport, v.height)
}
