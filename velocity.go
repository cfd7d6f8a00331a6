package sheet

import "time"

// Velocity estimation parameters. Samples older than the window are
// discarded so a hesitation before lifting the finger does not turn
// into a phantom fling.
const (
	velocityWindow  = 100 * time.Millisecond
	velocitySamples = 20
)

type velocitySample struct {
	t time.Duration
	y float32
}

// velocityTracker records the vertical pointer positions seen during a
// drag and estimates the release velocity with a least squares fit
// over the recent history.
type velocityTracker struct {
	samples []velocitySample
}

// Reset discards the recorded history.
func (v *velocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records a pointer position. t is the event timestamp relative to
// an arbitrary epoch, as reported by pointer events.
func (v *velocityTracker) Add(t time.Duration, y float32) {
	v.prune(t)
	if len(v.samples) == velocitySamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:velocitySamples-1]
	}
	v.samples = append(v.samples, velocitySample{t: t, y: y})
}

// Velocity returns the estimated vertical velocity in pixels per
// second, positive pointing down. Fewer than two usable samples
// estimate to zero.
func (v *velocityTracker) Velocity() float32 {
	n := len(v.samples)
	if n < 2 {
		return 0
	}

	var meanT, meanY float32
	for _, s := range v.samples {
		meanT += float32(s.t.Seconds())
		meanY += s.y
	}
	meanT /= float32(n)
	meanY /= float32(n)

	var num, den float32
	for _, s := range v.samples {
		dt := float32(s.t.Seconds()) - meanT
		num += dt * (s.y - meanY)
		den += dt * dt
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func (v *velocityTracker) prune(now time.Duration) {
	cutoff := now - velocityWindow
	i := 0
	for i < len(v.samples) && v.samples[i].t < cutoff {
		i++
	}
	if i > 0 {
		v.samples = v.samples[:copy(v.samples, v.samples[i:])]
	}
}
