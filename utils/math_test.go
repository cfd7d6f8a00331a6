package utils

import "testing"

func TestUtils_MinMax(t *testing.T) {
	if min := Min(2, 5); min != 2 {
		t.Errorf("Min value expected to be %v. Got %v", 2, min)
	}
	if min := Min(0.5, -0.5); min != -0.5 {
		t.Errorf("Min value expected to be %v. Got %v", -0.5, min)
	}
	if max := Max(2, 5); max != 5 {
		t.Errorf("Max value expected to be %v. Got %v", 5, max)
	}
	if max := Max(-2, -5); max != -2 {
		t.Errorf("Max value expected to be %v. Got %v", -2, max)
	}
}

func TestUtils_Abs(t *testing.T) {
	if abs := Abs(-3); abs != 3 {
		t.Errorf("Abs value expected to be %v. Got %v", 3, abs)
	}
	if abs := Abs(float32(1.5)); abs != 1.5 {
		t.Errorf("Abs value expected to be %v. Got %v", 1.5, abs)
	}
}

func TestUtils_Clamp(t *testing.T) {
	table := []struct {
		x, min, max, expected float32
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{1.2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, item := range table {
		if res := Clamp(item.x, item.min, item.max); res != item.expected {
			t.Errorf("Clamp(%v) expected to be %v. Got %v", item.x, item.expected, res)
		}
	}
}

func TestUtils_Lerp(t *testing.T) {
	if res := Lerp(float32(0), 10, 0.5); res != 5 {
		t.Errorf("Lerp value expected to be %v. Got %v", 5, res)
	}
	if res := Lerp(float32(10), 0, 0.25); res != 7.5 {
		t.Errorf("Lerp value expected to be %v. Got %v", 7.5, res)
	}
}

func TestUtils_Contains(t *testing.T) {
	modes := []string{"fill", "fit", "center"}
	if !Contains(modes, "fit") {
		t.Errorf("Expected %v to contain %q", modes, "fit")
	}
	if Contains(modes, "stretch") {
		t.Errorf("Expected %v not to contain %q", modes, "stretch")
	}
}

func TestUtils_HexToRGBA(t *testing.T) {
	table := []struct {
		hex        string
		r, g, b, a uint8
	}{
		{"#fff", 0xff, 0xff, 0xff, 0xff},
		{"#000000", 0x00, 0x00, 0x00, 0xff},
		{"#1e1e2e", 0x1e, 0x1e, 0x2e, 0xff},
		{"1e1e2e80", 0x1e, 0x1e, 0x2e, 0x80},
	}
	for _, item := range table {
		col := HexToRGBA(item.hex)
		if col.R != item.r || col.G != item.g || col.B != item.b || col.A != item.a {
			t.Errorf("HexToRGBA(%q) expected to be %v. Got %v", item.hex,
				[4]uint8{item.r, item.g, item.b, item.a}, col)
		}
	}
}
