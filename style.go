package sheet

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Default measurements of the sheet chrome.
var (
	defaultCornerRadius  = unit.Dp(12)
	defaultHandleHeight  = unit.Dp(20)
	defaultPillWidth     = unit.Dp(32)
	defaultPillThickness = unit.Dp(4)
)

// SheetStyle dresses a Sheet in the material look: a modal scrim, a
// surface panel with rounded top corners and a pill shaped grab
// handle. Colors left at their zero value resolve from the theme
// palette, so an explicit value always wins over the theme.
type SheetStyle struct {
	// Surface is the panel color. Zero resolves to the theme
	// background.
	Surface color.NRGBA
	// HandleColor is the grab pill color. Zero resolves to a
	// translucent theme foreground.
	HandleColor color.NRGBA
	// ScrimColor is the backdrop color. Zero resolves to black.
	ScrimColor color.NRGBA
	// CornerRadius rounds the two top corners of the panel.
	CornerRadius unit.Value

	th    *material.Theme
	sheet *Sheet
}

// Modal returns a style rendering s with the standard modal look.
func Modal(th *material.Theme, s *Sheet) SheetStyle {
	return SheetStyle{
		CornerRadius: defaultCornerRadius,
		th:           th,
		sheet:        s,
	}
}

// Layout draws the scrim, the panel surface, the handle and the
// content. A tap on the visible scrim closes the sheet.
func (st SheetStyle) Layout(gtx C, nav, content layout.Widget) D {
	s := st.sheet
	s.requireDriver()

	surface := st.Surface
	if surface == (color.NRGBA{}) {
		surface = st.th.Bg
	}
	pill := st.HandleColor
	if pill == (color.NRGBA{}) {
		pill = mulAlpha(st.th.Fg, 0x66)
	}

	s.scrim.Color = st.ScrimColor
	s.scrim.Layout(gtx, s.Anim.Value())
	if s.scrim.Clicked() {
		s.Close()
	}

	return s.Layout(gtx, nav,
		func(gtx C) D { return st.layoutHandle(gtx, surface, pill) },
		func(gtx C) D { return st.layoutSurface(gtx, surface, content) },
	)
}

// layoutHandle draws the top strip of the panel: the rounded surface
// corners and the centered grab pill.
func (st SheetStyle) layoutHandle(gtx C, surface, pill color.NRGBA) D {
	w := gtx.Constraints.Max.X
	h := gtx.Px(defaultHandleHeight)
	r := gtx.Px(st.CornerRadius)

	defer clip.RRect{Rect: image.Rect(0, 0, w, h), NW: r, NE: r}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, surface)

	pw, ph := gtx.Px(defaultPillWidth), gtx.Px(defaultPillThickness)
	rect := image.Rect((w-pw)/2, (h-ph)/2, (w+pw)/2, (h+ph)/2)
	paint.FillShape(gtx.Ops, pill, clip.UniformRRect(rect, ph/2).Op(gtx.Ops))

	return D{Size: image.Pt(w, h)}
}

// layoutSurface paints the panel color behind the content. The fill
// spans the whole height budget, so a short content still sits on an
// unbroken surface down to the bottom edge.
func (st SheetStyle) layoutSurface(gtx C, surface color.NRGBA, content layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := content(gtx)
	call := macro.Stop()

	paint.FillShape(gtx.Ops, surface,
		clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())
	call.Add(gtx.Ops)

	return dims
}

func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xff)
	return c
}
