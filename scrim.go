package sheet

import (
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Backdrop opacity ramp. The scrim stays fully transparent over the
// first part of the travel and fades in across the remainder, so a
// collapsed or barely open sheet leaves the layers beneath readable
// and interactive.
const (
	// ScrimDeadZone is the progress fraction below which the backdrop
	// stays invisible.
	ScrimDeadZone float32 = 0.7
	// ScrimMaxOpacity is the backdrop opacity of a fully open sheet.
	ScrimMaxOpacity float32 = 0.32
)

// ScrimOpacity maps the animation value to the backdrop opacity.
func ScrimOpacity(t float32) float32 {
	if t <= ScrimDeadZone {
		return 0
	}
	return (t - ScrimDeadZone) / (1 - ScrimDeadZone) * ScrimMaxOpacity
}

// Scrim is the modal backdrop behind an open sheet. While visible it
// absorbs pointer input headed for the layers beneath and reports
// taps, which hosts commonly answer by closing the sheet. The zero
// value draws a black backdrop.
type Scrim struct {
	// Color is the backdrop color. The alpha channel is ignored; it
	// is derived from the animation value.
	Color color.NRGBA

	click   gesture.Click
	clicked bool
}

// Clicked reports whether the backdrop was tapped since the last call.
func (s *Scrim) Clicked() bool {
	c := s.clicked
	s.clicked = false
	return c
}

// Layout draws the backdrop at the opacity the animation value t
// implies. Below the dead zone the scrim neither draws nor registers
// a tap target.
func (s *Scrim) Layout(gtx C, t float32) D {
	for _, e := range s.click.Events(gtx) {
		if e.Type == gesture.TypeClick {
			s.clicked = true
		}
	}

	size := gtx.Constraints.Max
	if alpha := ScrimOpacity(t); alpha > 0 {
		col := s.Color
		col.A = uint8(alpha*255 + 0.5)
		defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
		paint.Fill(gtx.Ops, col)
		s.click.Add(gtx.Ops)
	}
	return D{Size: size}
}
