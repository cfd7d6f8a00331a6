package sheet

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/esimov/sheet/utils"
)

// newTestSheet returns a sheet resting at v in a neutral forward
// state, as if it had been animated there.
func newTestSheet(v float32) *Sheet {
	s := NewSheet()
	s.Anim.AnimateTo(v, 0)
	return s
}

func TestDrag_StartSwitchesToLinearTracking(t *testing.T) {
	s := newTestSheet(0.5)
	started := 0
	s.OnDragStart = func() { started++ }

	s.dragStart()
	if !s.Dragging() {
		t.Errorf("the sheet should report dragging after a drag start")
	}
	if _, ok := s.curve.(Linear); !ok {
		t.Errorf("curve expected to be %T. Got %T", Linear{}, s.curve)
	}
	if started != 1 {
		t.Errorf("drag start hook expected to fire %v time. Got %v", 1, started)
	}
}

func TestDrag_FlingVelocityClosesSheet(t *testing.T) {
	s := newTestSheet(0.6)
	var ends []bool
	closes := 0
	s.OnDragEnd = func(closing bool) { ends = append(ends, closing) }
	s.OnClosing = func() { closes++ }

	s.dragStart()
	s.dragEnd(800, 400)

	if s.Anim.Status() != StatusReverse {
		t.Errorf("status expected to be %v. Got %v", StatusReverse, s.Anim.Status())
	}
	if len(ends) != 1 || !ends[0] {
		t.Errorf("the gesture expected to be classified closing. Got %v", ends)
	}
	if closes != 1 {
		t.Errorf("closing hook expected to fire %v time. Got %v", 1, closes)
	}
}

// An upward release at the same speed must not take the fling branch;
// it falls through to the progress threshold.
func TestDrag_UpwardVelocityFallsThrough(t *testing.T) {
	s := newTestSheet(0.6)
	var ends []bool
	s.OnDragEnd = func(closing bool) { ends = append(ends, closing) }

	s.dragStart()
	s.dragEnd(-800, 400)

	if s.Anim.Status() != StatusForward {
		t.Errorf("status expected to be %v. Got %v", StatusForward, s.Anim.Status())
	}
	if len(ends) != 1 || ends[0] {
		t.Errorf("the gesture expected to be classified opening. Got %v", ends)
	}
}

func TestDrag_LowProgressSettlesClosed(t *testing.T) {
	s := newTestSheet(0.3)
	closes := 0
	s.OnClosing = func() { closes++ }

	s.dragStart()
	s.dragEnd(0, 400)

	if s.Anim.Status() != StatusReverse {
		t.Errorf("status expected to be %v. Got %v", StatusReverse, s.Anim.Status())
	}
	if closes != 1 {
		t.Errorf("closing hook expected to fire %v time. Got %v", 1, closes)
	}
}

func TestDrag_HighProgressReopens(t *testing.T) {
	s := newTestSheet(0.8)
	closes := 0
	s.OnClosing = func() { closes++ }

	s.dragStart()
	s.dragEnd(0, 400)

	if s.Anim.Status() != StatusForward {
		t.Errorf("status expected to be %v. Got %v", StatusForward, s.Anim.Status())
	}
	if closes != 0 {
		t.Errorf("an opening release should not fire the closing hook. Got %v", closes)
	}

	// The handover curve is anchored where the finger released, so
	// the transition is continuous.
	split, ok := s.curve.(Split)
	if !ok {
		t.Fatalf("curve expected to be %T. Got %T", Split{}, s.curve)
	}
	if res := split.Transform(0.8); res != 0.8 {
		t.Errorf("curve output at the anchor expected to be %v. Got %v", 0.8, res)
	}
}

func TestDrag_BoundaryUpdatesAreNoOps(t *testing.T) {
	s := NewSheet()
	s.Anim.Changed()

	// Closing drag on an already closed sheet.
	s.dragUpdate(40, 400)
	if v := s.Anim.Value(); v != 0 {
		t.Errorf("value expected to be %v. Got %v", 0, v)
	}
	if s.Anim.Changed() {
		t.Errorf("a boundary update should not report a change")
	}
	if s.Anim.Status() != StatusDismissed {
		t.Errorf("status expected to be %v. Got %v", StatusDismissed, s.Anim.Status())
	}

	// Opening drag on a fully open sheet.
	s2 := newTestSheet(1)
	s2.Anim.Changed()
	s2.dragUpdate(-40, 400)
	if v := s2.Anim.Value(); v != 1 {
		t.Errorf("value expected to be %v. Got %v", 1, v)
	}
	if s2.Anim.Changed() {
		t.Errorf("a boundary update should not report a change")
	}
}

func TestDrag_ReanchorsDismissedDriver(t *testing.T) {
	s := newTestSheet(0.5)
	s.Anim.Reverse()
	s.Anim.Update(animFrame(epoch))
	s.Anim.Update(animFrame(epoch.Add(time.Second)))
	if s.Anim.Status() != StatusDismissed {
		t.Fatalf("status expected to be %v. Got %v", StatusDismissed, s.Anim.Status())
	}

	// Dragging the dismissed sheet open reports forward motion, not
	// another dismissal.
	s.dragUpdate(-40, 400)
	if v := s.Anim.Value(); utils.Abs(v-0.1) > 1e-4 {
		t.Errorf("value expected to be %v. Got %v", 0.1, v)
	}
	if s.Anim.Status() != StatusForward {
		t.Errorf("status expected to be %v. Got %v", StatusForward, s.Anim.Status())
	}
}

func TestDrag_DismissUnderwayBlocksInput(t *testing.T) {
	s := newTestSheet(0.6)
	s.Anim.Reverse()
	closes := 0
	ends := 0
	s.OnClosing = func() { closes++ }
	s.OnDragEnd = func(bool) { ends++ }

	s.dragUpdate(-40, 400)
	if v := s.Anim.Value(); v != 0.6 {
		t.Errorf("value expected to be %v. Got %v", 0.6, v)
	}

	s.dragEnd(800, 400)
	if s.Anim.Status() != StatusReverse {
		t.Errorf("status expected to be %v. Got %v", StatusReverse, s.Anim.Status())
	}
	if ends != 0 || closes != 0 {
		t.Errorf("hooks should not fire while a dismissal is underway. Got %v end, %v closing", ends, closes)
	}
	if s.Dragging() {
		t.Errorf("the dragged state should clear even while a dismissal is underway")
	}
}

func TestDrag_ZeroExtentIsNoOp(t *testing.T) {
	s := newTestSheet(0.6)
	s.Anim.Changed()

	s.dragUpdate(40, 0)
	if v := s.Anim.Value(); v != 0.6 {
		t.Errorf("value expected to be %v. Got %v", 0.6, v)
	}

	// The fling branch divides by the extent, so it must be skipped.
	s.dragEnd(800, 0)
	if s.Anim.Status() != StatusForward {
		t.Errorf("status expected to be %v. Got %v", StatusForward, s.Anim.Status())
	}

	s2 := newTestSheet(0.3)
	s2.dragEnd(800, 0)
	if s2.Anim.Status() != StatusReverse {
		t.Errorf("status expected to be %v. Got %v", StatusReverse, s2.Anim.Status())
	}
}

// End to end: synthetic pointer input routed into a real layout moves
// the sheet and settles it on release.
func TestDrag_PointerInputMovesSheet(t *testing.T) {
	s := NewSheet()
	var r router.Router

	handle := func(gtx C) D { return D{Size: image.Pt(gtx.Constraints.Max.X, 20)} }
	content := func(gtx C) D { return D{Size: image.Pt(gtx.Constraints.Max.X, 600)} }
	frame := func(now time.Time) {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Exact(image.Pt(400, 800)),
			Queue:       &r,
			Now:         now,
		}
		s.Layout(gtx, nil, handle, content)
		r.Frame(gtx.Ops)
	}

	frame(epoch)

	r.Queue(
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 790),
		},
		pointer.Event{
			Type:     pointer.Move,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 700),
			Time:     20 * time.Millisecond,
		},
	)
	frame(epoch.Add(16 * time.Millisecond))

	if !s.Dragging() {
		t.Fatalf("the sheet should be dragging after a press and a move")
	}
	if v := s.Anim.Value(); v <= 0.1 {
		t.Errorf("an upward drag of 90px over an extent of 780px should open past 0.1. Got %v", v)
	}

	r.Queue(
		pointer.Event{
			Type:     pointer.Release,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 700),
			Time:     30 * time.Millisecond,
		},
	)
	frame(epoch.Add(32 * time.Millisecond))

	if s.Dragging() {
		t.Errorf("the sheet should not be dragging after the release")
	}
	if s.Anim.Status() != StatusReverse {
		t.Errorf("a release below the close threshold should settle closed. Got %v", s.Anim.Status())
	}
}
