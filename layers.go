package sheet

import (
	"gioui.org/layout"
	"gioui.org/op"
)

// BaseLayer identifies the base layer in the compositor order lists.
const BaseLayer = -1

// LayerFunc returns the overlay widget at the given stacking index,
// index 0 being the visually topmost overlay. Returning false reports
// that no more overlays exist. dims carries the shared measurement
// cells overlays populate for the layers below them.
type LayerFunc func(index int, dims *Dimensions) (layout.Widget, bool)

// Compositor assembles a stack of overlay layers over one base layer.
// Layers are measured in ascending index order with the base last,
// and painted in the exact reverse. Measurement and paint order are
// decoupled so a measurement can flow from an overlay into the base
// within a single frame: the base may size a placeholder from cells
// the sheet overlay wrote moments earlier, even though the base is
// painted beneath it.
type Compositor struct {
	// Dims is the measurement bundle handed to every overlay.
	Dims *Dimensions

	layoutOrder []int
	paintOrder  []int
}

// NewCompositor returns a compositor sharing dims with its layers.
func NewCompositor(dims *Dimensions) *Compositor {
	return &Compositor{Dims: dims}
}

// Layout measures the overlays produced by next, then base, and
// paints them back to front. Every layer is offered the full
// constraints box.
func (c *Compositor) Layout(gtx layout.Context, next LayerFunc, base layout.Widget) layout.Dimensions {
	c.layoutOrder = c.layoutOrder[:0]
	c.paintOrder = c.paintOrder[:0]

	var overlays []op.CallOp
	for i := 0; ; i++ {
		w, ok := next(i, c.Dims)
		if !ok {
			break
		}
		macro := op.Record(gtx.Ops)
		w(gtx)
		overlays = append(overlays, macro.Stop())
		c.layoutOrder = append(c.layoutOrder, i)
	}

	macro := op.Record(gtx.Ops)
	base(gtx)
	baseCall := macro.Stop()
	c.layoutOrder = append(c.layoutOrder, BaseLayer)

	baseCall.Add(gtx.Ops)
	c.paintOrder = append(c.paintOrder, BaseLayer)
	for i := len(overlays) - 1; i >= 0; i-- {
		overlays[i].Add(gtx.Ops)
		c.paintOrder = append(c.paintOrder, i)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// LayoutOrder returns the measurement order of the most recent frame,
// the base layer identified by BaseLayer.
func (c *Compositor) LayoutOrder() []int {
	return c.layoutOrder
}

// PaintOrder returns the paint order of the most recent frame.
func (c *Compositor) PaintOrder() []int {
	return c.paintOrder
}
