package sheet

// Curve shapes the progress of an animation. Implementations map a
// normalized input in the [0, 1] interval to a normalized output,
// where 0 is the closed and 1 is the fully open sheet position.
type Curve interface {
	Transform(t float32) float32
}

var (
	_ Curve = Linear{}
	_ Curve = CubicBezier{}
	_ Curve = Split{}
)

// Linear leaves the animation progress unchanged. It is installed
// while a drag gesture is active so the sheet tracks the finger.
type Linear struct{}

// Transform returns t.
func (Linear) Transform(t float32) float32 {
	return t
}

// CubicBezier is an easing curve described by the two control points
// of a cubic Bézier segment with fixed endpoints at (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float32
}

// EaseInOut is the standard material motion curve used to settle the
// sheet once a gesture released it.
var EaseInOut = CubicBezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}

// Transform evaluates the curve at t. The horizontal axis is solved
// for the Bézier parameter first, then the vertical axis is evaluated
// at that parameter.
func (c CubicBezier) Transform(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	// The horizontal axis is monotonic for control points inside the
	// unit square, which keeps the bisection below convergent.
	var lo, hi float32 = 0, 1
	for i := 0; i < 32; i++ {
		mid := (lo + hi) / 2
		if bezier(c.X1, c.X2, mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return bezier(c.Y1, c.Y2, (lo+hi)/2)
}

// bezier evaluates one axis of a cubic Bézier with endpoint values
// 0 and 1 at the parameter s.
func bezier(p1, p2, s float32) float32 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

// Split composes the identity below an anchor point with a rescaled
// end curve above it. Its output equals the anchor value at the anchor
// itself, so replacing a Linear tracking curve with a Split at the
// moment the finger lifts never produces a visible jump.
type Split struct {
	at  float32
	end Curve
}

// NewSplit returns a Split anchored at x0, the animation value at the
// time of the handover.
func NewSplit(x0 float32, end Curve) Split {
	return Split{at: x0, end: end}
}

// Transform returns t below the anchor and the end curve, rescaled to
// the remaining interval, above it.
func (s Split) Transform(t float32) float32 {
	if t <= s.at || s.at >= 1 {
		return t
	}
	p := (t - s.at) / (1 - s.at)
	return s.at + (1-s.at)*s.end.Transform(p)
}
