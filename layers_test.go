package sheet

import (
	"image"
	"testing"

	"gioui.org/layout"
	"github.com/stretchr/testify/assert"
)

func TestCompositor_MeasureAscendingPaintReversed(t *testing.T) {
	assert := assert.New(t)

	c := NewCompositor(NewDimensions())
	var measured []int
	next := func(i int, dims *Dimensions) (layout.Widget, bool) {
		if i > 1 {
			return nil, false
		}
		return func(gtx C) D {
			measured = append(measured, i)
			return D{Size: gtx.Constraints.Max}
		}, true
	}
	base := func(gtx C) D {
		measured = append(measured, BaseLayer)
		return D{Size: gtx.Constraints.Max}
	}

	c.Layout(testCtx(), next, base)

	assert.Equal([]int{0, 1, BaseLayer}, measured)
	assert.Equal([]int{0, 1, BaseLayer}, c.LayoutOrder())
	assert.Equal([]int{BaseLayer, 1, 0}, c.PaintOrder())
}

// A measurement published by an overlay is readable by the base layer
// in the same frame, even though the base paints first.
func TestCompositor_BaseReadsOverlayCells(t *testing.T) {
	assert := assert.New(t)

	c := NewCompositor(NewDimensions())
	next := func(i int, dims *Dimensions) (layout.Widget, bool) {
		if i > 0 {
			return nil, false
		}
		return func(gtx C) D {
			dims.DragHandleHeight.Set(42)
			dims.MinContentHeight.Set(120)
			return D{Size: gtx.Constraints.Max}
		}, true
	}
	seen := 0
	base := func(gtx C) D {
		seen = c.Dims.DragHandleHeight.Get() + c.Dims.MinContentHeight.Get()
		return D{Size: gtx.Constraints.Max}
	}

	c.Layout(testCtx(), next, base)

	assert.Equal(42+120, seen)
}

func TestCompositor_BaseOnly(t *testing.T) {
	assert := assert.New(t)

	c := NewCompositor(NewDimensions())
	next := func(i int, dims *Dimensions) (layout.Widget, bool) {
		return nil, false
	}
	laid := false
	base := func(gtx C) D {
		laid = true
		return D{Size: gtx.Constraints.Max}
	}

	dims := c.Layout(testCtx(), next, base)

	assert.True(laid)
	assert.Equal([]int{BaseLayer}, c.LayoutOrder())
	assert.Equal([]int{BaseLayer}, c.PaintOrder())
	assert.Equal(image.Pt(400, 800), dims.Size)
}
