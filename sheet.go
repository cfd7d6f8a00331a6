package sheet

import (
	"image"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/esimov/sheet/utils"
)

type (
	// C is a shorthand for layout.Context.
	C = layout.Context
	// D is a shorthand for layout.Dimensions.
	D = layout.Dimensions
)

// Sheet is a draggable bottom panel. It rests collapsed above the
// lower edge of its box, opens to cover most of it and tracks the
// finger while dragged. The zero value is not usable: a Sheet needs an
// animation driver, which NewSheet wires up.
//
// A Sheet comes in two variants. Handing Layout a navigation bar
// widget selects the companion variant, where the bar collapses as the
// sheet expands over it and the travel distance follows the content
// height. With a nil navigation bar the sheet is standalone and the
// travel distance spans from the collapsed extent to the top of the
// box.
type Sheet struct {
	// Anim drives the open progress. Replace it to share one driver
	// between several collaborators.
	Anim *Animation

	// MinHeight is an explicit lower bound for the collapsed sheet
	// extent. The effective extent is never smaller than the drag
	// handle plus MinContentHeight.
	MinHeight unit.Value
	// MinContentHeight is the content strip kept visible below the
	// drag handle while the sheet is collapsed.
	MinContentHeight unit.Value
	// MaxHeight caps the expanded sheet height. Zero means the whole
	// box, less the visible navigation bar.
	MaxHeight unit.Value

	// OnDragStart fires when a drag gesture is recognized.
	OnDragStart func()
	// OnDragEnd fires when the finger lifts, after the settle decision
	// was taken. closing reports whether the sheet is on its way shut.
	OnDragEnd func(closing bool)
	// OnClosing fires once per closing episode, at the moment a
	// gesture, a command or a scrim tap set the sheet closing.
	OnClosing func()

	dims       *Dimensions
	curve      Curve
	drag       gesture.Drag
	scrim      Scrim
	velocity   velocityTracker
	lastY      float32
	dragging   bool
	closeBegun bool
}

// NewSheet returns a sheet with a default animation driver.
func NewSheet() *Sheet {
	return &Sheet{
		Anim:  NewAnimation(),
		dims:  NewDimensions(),
		curve: EaseInOut,
	}
}

// Dims exposes the measurements of the most recent layout pass.
func (s *Sheet) Dims() *Dimensions {
	if s.dims == nil {
		s.dims = NewDimensions()
	}
	return s.dims
}

// Open animates the sheet to the fully open position.
func (s *Sheet) Open() {
	s.closeBegun = false
	s.Anim.Forward()
}

// Close animates the sheet shut and fires the closing hook.
func (s *Sheet) Close() {
	s.Anim.Reverse()
	s.beginClose()
}

// Toggle opens a closed or closing sheet and closes an open or
// opening one.
func (s *Sheet) Toggle() {
	switch s.Anim.Status() {
	case StatusForward, StatusCompleted:
		s.Close()
	default:
		s.Open()
	}
}

// Dragging reports whether a drag gesture is holding the sheet.
func (s *Sheet) Dragging() bool {
	return s.dragging
}

// A sheet without a driver has no progress to lay out by; this is a
// configuration error, not a runtime condition to tolerate.
func (s *Sheet) requireDriver() {
	if s.Anim == nil {
		panic("sheet: an Animation driver is required")
	}
}

// Layout processes pointer input, advances the animation and lays the
// sheet out inside the current constraints box. nav selects the
// companion variant and may be nil, as may handle. The sheet claims
// the whole box; the panel itself covers only its lower part.
//
// The children are measured in dependency order: the navigation bar
// first, since its height shapes the sheet budget, then the handle,
// then the content inside whatever height remains.
func (s *Sheet) Layout(gtx C, nav, handle, content layout.Widget) D {
	s.requireDriver()
	if s.curve == nil {
		s.curve = EaseInOut
	}
	if s.dims == nil {
		s.dims = NewDimensions()
	}

	s.processDrag(gtx, float32(s.dims.DragExtent.Get()))

	t := s.Anim.Update(gtx)
	eased := s.curve.Transform(t)
	total := gtx.Constraints.Max

	var navCall op.CallOp
	var navH int
	if nav != nil {
		cgtx := gtx
		cgtx.Constraints.Min = image.Pt(total.X, 0)
		macro := op.Record(gtx.Ops)
		dims := nav(cgtx)
		navCall = macro.Stop()
		navH = dims.Size.Y
	}
	// The bar cedes its room linearly as the sheet opens.
	visibleNavH := int(utils.Lerp(float32(navH), 0, t))

	maxH := total.Y - visibleNavH
	if s.MaxHeight.V > 0 {
		maxH = utils.Min(maxH, gtx.Px(s.MaxHeight))
	}

	var handleCall op.CallOp
	var handleW, handleH int
	if handle != nil {
		cgtx := gtx
		cgtx.Constraints = layout.Constraints{Max: image.Pt(total.X, maxH)}
		macro := op.Record(gtx.Ops)
		dims := handle(cgtx)
		handleCall = macro.Stop()
		handleW, handleH = dims.Size.X, dims.Size.Y
	}

	cgtx := gtx
	cgtx.Constraints = layout.Constraints{
		Min: image.Pt(total.X, 0),
		Max: image.Pt(total.X, utils.Max(maxH-handleH, 0)),
	}
	macro := op.Record(gtx.Ops)
	contentDims := content(cgtx)
	contentCall := macro.Stop()
	contentH := contentDims.Size.Y

	minContentH := gtx.Px(s.MinContentHeight)
	minExtent := utils.Max(gtx.Px(s.MinHeight), handleH+minContentH)

	var extent int
	if nav != nil {
		extent = contentH - navH
	} else {
		extent = maxH - minExtent
	}
	extent = utils.Max(extent, 0)

	s.dims.NavBarHeight.Set(navH)
	s.dims.DragHandleHeight.Set(handleH)
	s.dims.ContentHeight.Set(contentH)
	s.dims.MinContentHeight.Set(minContentH)
	s.dims.DragExtent.Set(extent)

	var contentTop float32
	if nav != nil {
		contentTop = float32(total.Y-navH) - float32(extent)*eased
	} else {
		height := float32(minExtent) + float32(extent)*eased
		contentTop = float32(total.Y) - height + float32(handleH)
	}
	handleTop := contentTop - float32(handleH)

	// The drag surface is registered outside the moving offsets, in
	// the sheet's own coordinate space, so the reported positions stay
	// comparable across frames while the panel travels. The children
	// replay inside its scope: their input areas nest under the drag
	// surface instead of shadowing it.
	area := clip.Rect(image.Rect(0, int(handleTop), total.X, total.Y)).Push(gtx.Ops)
	s.drag.Add(gtx.Ops)
	if handle != nil {
		tr := op.Offset(f32.Pt(float32(total.X-handleW)/2, handleTop)).Push(gtx.Ops)
		handleCall.Add(gtx.Ops)
		tr.Pop()
	}
	tr := op.Offset(f32.Pt(0, contentTop)).Push(gtx.Ops)
	contentCall.Add(gtx.Ops)
	tr.Pop()
	area.Pop()

	// The bar paints last: the panel emerges from beneath it while the
	// bar slides down and out of view.
	if nav != nil && visibleNavH > 0 {
		tr := op.Offset(f32.Pt(0, float32(total.Y-visibleNavH))).Push(gtx.Ops)
		navCall.Add(gtx.Ops)
		tr.Pop()
	}

	return D{Size: total}
}
