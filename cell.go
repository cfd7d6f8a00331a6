package sheet

// Cell is a single slot value holder used to hand a measurement from
// one layout participant to another within the same frame. The layout
// pass ordering guarantees the producer writes the cell before any
// consumer reads it.
type Cell[T comparable] struct {
	val  T
	set  bool
	hook func(T)
}

// NewCell returns an empty cell.
func NewCell[T comparable]() *Cell[T] {
	return &Cell[T]{}
}

// Set stores v. Storing a value equal to the current one is a no-op
// and does not invoke the change hook.
func (c *Cell[T]) Set(v T) {
	if c.set && c.val == v {
		return
	}
	c.val = v
	c.set = true
	if c.hook != nil {
		c.hook(v)
	}
}

// Get returns the stored value, or the zero value of T when the cell
// was never written.
func (c *Cell[T]) Get() T {
	return c.val
}

// IsSet reports whether the cell holds a value.
func (c *Cell[T]) IsSet() bool {
	return c.set
}

// OnChange registers fn to be invoked on every effective write.
func (c *Cell[T]) OnChange(fn func(T)) {
	c.hook = fn
}
