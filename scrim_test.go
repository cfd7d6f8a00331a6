package sheet

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/esimov/sheet/utils"
)

func TestScrim_OpacityRamp(t *testing.T) {
	table := []struct {
		t, opacity float32
	}{
		{0, 0},
		{0.5, 0},
		{0.7, 0},
		{0.85, 0.16},
		{1, 0.32},
	}
	for _, item := range table {
		if res := ScrimOpacity(item.t); utils.Abs(res-item.opacity) > 1e-3 {
			t.Errorf("opacity at %v expected to be %v. Got %v", item.t, item.opacity, res)
		}
	}
}

func TestScrim_TapReportsOnce(t *testing.T) {
	var s Scrim
	var r router.Router
	frame := func(v float32, now time.Time) {
		gtx := testCtx()
		gtx.Queue = &r
		gtx.Now = now
		s.Layout(gtx, v)
		r.Frame(gtx.Ops)
	}

	frame(1, epoch)
	r.Queue(
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 100),
		},
		pointer.Event{
			Type:     pointer.Release,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 100),
			Time:     50 * time.Millisecond,
		},
	)
	frame(1, epoch.Add(16*time.Millisecond))

	if !s.Clicked() {
		t.Fatalf("a tap on the visible backdrop should report a click")
	}
	if s.Clicked() {
		t.Errorf("a reported click should be consumed")
	}
}

func TestScrim_InvisibleBackdropIgnoresTaps(t *testing.T) {
	var s Scrim
	var r router.Router
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: testCtx().Constraints,
		Queue:       &r,
		Now:         epoch,
	}
	s.Layout(gtx, 0.5)
	r.Frame(gtx.Ops)

	r.Queue(
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 100),
		},
		pointer.Event{
			Type:     pointer.Release,
			Source:   pointer.Touch,
			Position: f32.Pt(200, 100),
			Time:     50 * time.Millisecond,
		},
	)
	gtx.Ops = new(op.Ops)
	s.Layout(gtx, 0.5)
	r.Frame(gtx.Ops)

	if s.Clicked() {
		t.Errorf("a backdrop below the dead zone should not register taps")
	}
}
