package gui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollDuration is how long a keyboard scroll animates, in seconds.
const scrollDuration = 0.15

// Scroller animates the scroll offset towards a target.
type Scroller struct {
	tween  *gween.Tween
	target uint32
}

// Start animates from one offset to another. Equal offsets stop any
// running animation.
func (sc *Scroller) Start(from, to uint32) {
	sc.target = to
	if from == to {
		sc.tween = nil
		return
	}
	sc.tween = gween.New(float32(from), float32(to), scrollDuration, ease.OutQuad)
}

// Active reports whether an animation is running.
func (sc *Scroller) Active() bool {
	return sc.tween != nil
}

// Target returns where the running animation ends, or cur when idle.
// Repeated key presses accumulate from the target, not the current frame.
func (sc *Scroller) Target(cur uint32) uint32 {
	if sc.tween == nil {
		return cur
	}
	return sc.target
}

// Update advances the animation by dt seconds and returns the offset.
func (sc *Scroller) Update(dt float32) (uint32, bool) {
	if sc.tween == nil {
		return sc.target, true
	}
	val, done := sc.tween.Update(dt)
	if done {
		sc.tween = nil
		return sc.target, true
	}
	return uint32(max(math.Round(float64(val)), 0)), false
}

// Stop cancels the animation where it is.
func (sc *Scroller) Stop() {
	sc.tween = nil
}
