package sheet

import "testing"

func TestCell_EqualWriteIsNoOp(t *testing.T) {
	var fired int
	c := NewCell[int]()
	c.OnChange(func(int) { fired++ })

	if c.IsSet() {
		t.Error("a fresh cell should report unset")
	}

	// The first write counts even when it stores the zero value.
	c.Set(0)
	if !c.IsSet() {
		t.Error("cell expected to report set after the first write")
	}
	if fired != 1 {
		t.Errorf("hook expected to fire once. Got %d", fired)
	}

	c.Set(0)
	if fired != 1 {
		t.Errorf("equal write should not fire the hook. Got %d calls", fired)
	}

	c.Set(42)
	if got := c.Get(); got != 42 {
		t.Errorf("cell value expected to be %d. Got %d", 42, got)
	}
	if fired != 2 {
		t.Errorf("hook expected to fire twice. Got %d", fired)
	}
}
