package gui

import (
	"math"

	gallery "github.com/gogpu/nanogallery"
)

// Action is a user command decoded from keyboard input.
type Action int

const (
	ScrollUp Action = iota
	ScrollDown
	Home
	End
	PageUp
	PageDown
	Report
)

var actionNames = [...]string{
	ScrollUp:   "scroll-up",
	ScrollDown: "scroll-down",
	Home:       "home",
	End:        "end",
	PageUp:     "page-up",
	PageDown:   "page-down",
	Report:     "report",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

const (
	// lineStep is the distance of one arrow key press.
	lineStep = 100
	// wheelStep scales one wheel notch.
	wheelStep = 9
)

// Apply performs a. Scrolling actions animate towards their target.
func (s *State) Apply(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view
	viewport := s.screen.Size().Y
	limit := v.maxScroll(viewport)
	cur := v.scroller.Target(v.scroll)

	var target uint32
	switch a {
	case ScrollUp:
		target = cur - min(cur, lineStep)
	case ScrollDown:
		target = min(cur+lineStep, limit)
	case Home:
		target = 0
	case End:
		target = limit
	case PageUp:
		target = cur - min(cur, viewport)
	case PageDown:
		target = min(cur+viewport, limit)
	case Report:
		if err := s.writeReport(s.reportOut); err != nil {
			gallery.Logger().Warn("gui: report", "err", err)
		}
		return
	default:
		return
	}

	v.scroller.Start(v.scroll, target)
	s.MarkDirty()
}

// Wheel scrolls immediately by dy wheel notches. Positive dy scrolls up.
func (s *State) Wheel(dy float64) {
	if dy == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view
	limit := float64(v.maxScroll(s.screen.Size().Y))
	next := float64(v.scroll) - dy*wheelStep
	next = math.Min(math.Max(next, 0), limit)

	v.scroller.Stop()
	if uint32(next) != v.scroll {
		v.scroll = uint32(next)
		s.MarkDirty()
	}
}
