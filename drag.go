package sheet

import (
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"

	"github.com/esimov/sheet/utils"
)

// The settle protocol: how a released drag turns into an animation
// command.
const (
	// FlingVelocityThreshold is the downward release speed, in pixels
	// per second, past which the sheet is flung along the gesture
	// instead of settled by position.
	FlingVelocityThreshold float32 = 700
	// CloseProgressThreshold is the progress fraction under which a
	// released sheet settles closed instead of reopening.
	CloseProgressThreshold float32 = 0.5
)

// processDrag turns the pointer events of the current frame into
// animation commands. extent is the drag extent of the most recent
// layout pass, used to convert pixel deltas into progress fractions.
func (s *Sheet) processDrag(gtx layout.Context, extent float32) {
	for _, e := range s.drag.Events(gtx.Metric, gtx, gesture.Vertical) {
		switch e.Type {
		case pointer.Press:
			s.velocity.Reset()
			s.velocity.Add(e.Time, e.Position.Y)
			s.lastY = e.Position.Y
			s.dragStart()
		case pointer.Drag:
			s.velocity.Add(e.Time, e.Position.Y)
			delta := e.Position.Y - s.lastY
			s.lastY = e.Position.Y
			s.dragUpdate(delta, extent)
		case pointer.Release:
			s.dragEnd(s.velocity.Velocity(), extent)
		case pointer.Cancel:
			s.dragEnd(0, extent)
		}
	}
}

// dragStart enters the dragging state and switches the driver to
// linear tracking so the sheet follows the finger exactly.
func (s *Sheet) dragStart() {
	s.dragging = true
	s.closeBegun = false
	s.curve = Linear{}
	if s.OnDragStart != nil {
		s.OnDragStart()
	}
}

// dragUpdate applies a vertical finger movement, in pixels, to the
// driver value. Positive deltas point down and close the sheet.
func (s *Sheet) dragUpdate(delta, extent float32) {
	if s.dismissUnderway() {
		return
	}
	if extent <= 0 || delta == 0 {
		return
	}
	unit := delta / extent
	v := s.Anim.Value()
	if v <= 0 && unit > 0 {
		return
	}
	if v >= 1 && unit < 0 {
		return
	}
	if s.Anim.Status() == StatusDismissed {
		// A dismissed driver would report the reopening gesture as
		// another dismissal. Snapping it in place first flips it to a
		// forward resting state without moving the value.
		s.Anim.AnimateTo(v, 0)
	}
	s.Anim.SetValue(utils.Clamp(v-unit, 0, 1))
}

// dragEnd settles the sheet once the finger lifts. velocity is the
// release speed in pixels per second, positive pointing down.
func (s *Sheet) dragEnd(velocity, extent float32) {
	s.dragging = false
	if s.dismissUnderway() {
		return
	}
	v := s.Anim.Value()
	closing := false
	switch {
	case velocity > FlingVelocityThreshold && extent > 0:
		flingVelocity := -velocity / extent
		if v > 0 {
			s.Anim.Fling(flingVelocity)
		}
		closing = flingVelocity < 0
	case v < CloseProgressThreshold:
		if v > 0 {
			s.Anim.Fling(-1)
		}
		closing = true
	default:
		s.Anim.Forward()
	}
	// Ease the rest of the travel from wherever the finger released.
	s.curve = NewSplit(s.Anim.Value(), EaseInOut)
	if s.OnDragEnd != nil {
		s.OnDragEnd(closing)
	}
	if closing {
		s.beginClose()
	}
}

// dismissUnderway reports whether a close animation is in flight.
// Drag input is ignored for its duration so a gesture cannot fight
// the closing sheet.
func (s *Sheet) dismissUnderway() bool {
	return s.Anim.Status() == StatusReverse
}

// beginClose fires the closing hook once per closing episode. A sheet
// may report closing several times over its life without reaching the
// closed position, as a collaborator can reopen it midway.
func (s *Sheet) beginClose() {
	if s.closeBegun {
		return
	}
	s.closeBegun = true
	if s.OnClosing != nil {
		s.OnClosing()
	}
}
