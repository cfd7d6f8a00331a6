package sheet

// Dimensions collects the measurements the sheet layout produces on
// every pass. The base layer of a Compositor reads them to reserve
// room under the sheet, and outside collaborators can subscribe to be
// told when any of them changed.
//
// All values are in pixels.
type Dimensions struct {
	// DragHandleHeight is the measured height of the drag handle.
	DragHandleHeight *Cell[int]
	// NavBarHeight is the measured height of the companion navigation
	// bar, 0 in the standalone variant.
	NavBarHeight *Cell[int]
	// ContentHeight is the measured height of the sheet content.
	ContentHeight *Cell[int]
	// MinContentHeight is the resolved content height kept visible in
	// the collapsed state.
	MinContentHeight *Cell[int]
	// DragExtent is the distance in pixels a full drag travels.
	DragExtent *Cell[int]

	nextID    int
	listeners map[int]func()
}

// NewDimensions returns an empty measurement bundle.
func NewDimensions() *Dimensions {
	d := &Dimensions{
		DragHandleHeight: NewCell[int](),
		NavBarHeight:     NewCell[int](),
		ContentHeight:    NewCell[int](),
		MinContentHeight: NewCell[int](),
		DragExtent:       NewCell[int](),
		listeners:        make(map[int]func()),
	}
	notify := func(int) { d.notify() }
	d.DragHandleHeight.OnChange(notify)
	d.NavBarHeight.OnChange(notify)
	d.ContentHeight.OnChange(notify)
	d.MinContentHeight.OnChange(notify)
	d.DragExtent.OnChange(notify)
	return d
}

// Listen registers fn to be invoked whenever any of the cells receives
// a new value, typically to request a window invalidation. The
// returned function cancels the subscription.
func (d *Dimensions) Listen(fn func()) (cancel func()) {
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

func (d *Dimensions) notify() {
	for _, fn := range d.listeners {
		fn()
	}
}
