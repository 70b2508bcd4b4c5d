// Package window runs the gallery in a desktop window.
//
// Frames are rendered on the CPU into the gui.State screen buffer and
// uploaded to an ebiten image only when the state was redrawn.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	gallery "github.com/gogpu/nanogallery"
	"github.com/gogpu/nanogallery/gui"
)

// Title is the window title.
const Title = "NanoGallery"

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

var keymap = map[ebiten.Key]gui.Action{
	ebiten.KeyArrowUp:   gui.ScrollUp,
	ebiten.KeyArrowDown: gui.ScrollDown,
	ebiten.KeyHome:      gui.Home,
	ebiten.KeyEnd:       gui.End,
	ebiten.KeyPageUp:    gui.PageUp,
	ebiten.KeyPageDown:  gui.PageDown,
	ebiten.KeyF10:       gui.Report,
}

// Game adapts a gui.State to ebiten.
type Game struct {
	state *gui.State
	size  gallery.Vec2

	frame *ebiten.Image
	pix   []byte
}

// New returns a Game drawing state at the given initial size.
func New(state *gui.State, size gallery.Vec2) *Game {
	return &Game{
		state: state,
		size:  gui.ClampWindow(int(size.X), int(size.Y)),
	}
}

// Run opens the window and blocks until it is closed.
func Run(state *gui.State, size gallery.Vec2) error {
	g := New(state, size)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(int(g.size.X), int(g.size.Y))
	ebiten.SetWindowSizeLimits(int(gui.MinWindow.X), int(gui.MinWindow.Y), int(gui.MaxWindow.X), int(gui.MaxWindow.Y))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	gallery.Logger().Info("window: opening", "size", g.size)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	s := g.state
	if s.Resize(g.size) {
		gallery.Logger().Debug("window: resized", "size", g.size)
	}

	for key, action := range keymap {
		if pressed(key, action) {
			s.Apply(action)
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		s.Wheel(dy)
	}

	s.Tick(1 / float32(ebiten.TPS()))
	if s.Render() {
		g.upload()
	}
	return nil
}

// pressed reports a key press, repeating while held except for Report.
func pressed(key ebiten.Key, action gui.Action) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	if action == gui.Report {
		return false
	}
	d := inpututil.KeyPressDuration(key)
	return d > repeatDelay && d%repeatInterval == 0
}

func (g *Game) upload() {
	screen := g.state.Screen()
	size := screen.Size()
	if g.frame == nil || g.frame.Bounds().Dx() != int(size.X) || g.frame.Bounds().Dy() != int(size.Y) {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(int(size.X), int(size.Y))
	}
	g.pix = screen.RGBA(g.pix)
	g.frame.WritePixels(g.pix)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

// Layout implements ebiten.Game. The logical screen follows the window,
// within the gallery's size limits.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = gui.ClampWindow(outsideWidth, outsideHeight)
	return int(g.size.X), int(g.size.Y)
}
