package sheet

import "testing"

func TestDimensions_ListenAndCancel(t *testing.T) {
	dims := NewDimensions()

	var first, second int
	cancel := dims.Listen(func() { first++ })
	dims.Listen(func() { second++ })

	dims.DragExtent.Set(320)
	if first != 1 || second != 1 {
		t.Errorf("both listeners expected to fire once. Got %d and %d", first, second)
	}

	// A repeated equal measurement must stay silent.
	dims.DragExtent.Set(320)
	if first != 1 || second != 1 {
		t.Errorf("no listener should fire on an equal write. Got %d and %d", first, second)
	}

	cancel()
	dims.NavBarHeight.Set(56)
	if first != 1 {
		t.Errorf("cancelled listener expected to stay at 1. Got %d", first)
	}
	if second != 2 {
		t.Errorf("remaining listener expected to be %d. Got %d", 2, second)
	}
}
