package sheet

import (
	"math"
	"time"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/esimov/sheet/utils"
)

// Status describes what the animation driver is doing and, once it
// settled, which command direction produced the resting state.
type Status uint8

const (
	// StatusDismissed is the resting state at the lower bound, reached
	// through a reverse direction command. It is also the state of a
	// driver that never ran.
	StatusDismissed Status = iota
	// StatusForward is reported while the value is moving under a
	// forward direction command, or rests mid-range after one.
	StatusForward
	// StatusReverse is reported while the value is moving under a
	// reverse direction command, or rests mid-range after one.
	StatusReverse
	// StatusCompleted is the resting state at the upper bound, reached
	// through a forward direction command.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

const (
	enterDuration = 250 * time.Millisecond
	exitDuration  = 200 * time.Millisecond
)

// Spring parameters of the fling settle motion. The spring is
// critically damped, so the value approaches the bound without
// oscillating around it.
const (
	springOmega        = 22.4 // angular frequency, rad/s
	springRestDelta    = 1e-3
	springRestVelocity = 1e-2
)

type animMode uint8

const (
	animIdle animMode = iota
	animTimed
	animFling
)

// Animation drives a scalar value across the [0, 1] interval, 0 being
// the closed and 1 the fully open sheet. Commands select between timed
// runs toward a bound, physics based flings and direct assignment, and
// the driver keeps track of the direction of the last command so a
// resting value can always be attributed to an opening or a closing
// motion.
//
// The driver is advanced by calling Update once per frame. It is not
// safe for concurrent use; commands and Update belong on the event
// loop goroutine.
type Animation struct {
	// Duration is the time a full forward run takes.
	Duration time.Duration
	// ReverseDuration, when non-zero, replaces Duration for reverse
	// runs.
	ReverseDuration time.Duration

	value   float32
	status  Status
	forward bool
	changed bool

	mode   animMode
	target float32
	dur    time.Duration
	vel    float32
	last   time.Time
}

// NewAnimation returns a driver with the standard enter and exit
// durations.
func NewAnimation() *Animation {
	return &Animation{
		Duration:        enterDuration,
		ReverseDuration: exitDuration,
	}
}

// Value returns the current animation value.
func (a *Animation) Value() float32 {
	return a.value
}

// Status returns the current driver status.
func (a *Animation) Status() Status {
	return a.status
}

// Animating reports whether a timed run or a fling is in flight.
func (a *Animation) Animating() bool {
	return a.mode != animIdle
}

// Changed reports whether the value changed since the last call.
func (a *Animation) Changed() bool {
	c := a.changed
	a.changed = false
	return c
}

// Forward starts a timed run toward the open position.
func (a *Animation) Forward() {
	a.startTimed(1, a.Duration, true)
}

// Reverse starts a timed run toward the closed position.
func (a *Animation) Reverse() {
	d := a.ReverseDuration
	if d == 0 {
		d = a.Duration
	}
	a.startTimed(0, d, false)
}

// AnimateTo starts a timed run toward an arbitrary target, always in
// the forward direction. A zero duration assigns the clamped target
// immediately and reports StatusCompleted whatever the value; this is
// the idiom for neutralizing the direction of a dismissed driver
// before a reopening drag.
func (a *Animation) AnimateTo(target float32, d time.Duration) {
	a.startTimed(utils.Clamp(target, 0, 1), d, true)
}

// Toggle sends the value toward the opposite bound: a driver moving
// forward or resting completed reverses, anything else runs forward.
func (a *Animation) Toggle() {
	switch a.status {
	case StatusForward, StatusCompleted:
		a.Reverse()
	default:
		a.Forward()
	}
}

// Fling starts a spring driven settle seeded with velocity, expressed
// in value fraction per second. Negative velocities settle at 0 with
// the driver in reverse, all others settle at 1 going forward.
func (a *Animation) Fling(velocity float32) {
	a.forward = velocity >= 0
	if a.forward {
		a.target = 1
		a.status = StatusForward
	} else {
		a.target = 0
		a.status = StatusReverse
	}
	a.mode = animFling
	a.vel = velocity
	a.last = time.Time{}
}

// SetValue assigns the value directly, canceling any run in flight.
// It is used to track the finger during a drag. Assigning the value a
// resting driver already holds is a no-op and does not schedule a
// frame.
func (a *Animation) SetValue(v float32) {
	if a.mode == animIdle && v == a.value {
		return
	}
	a.mode = animIdle
	a.setValue(v)
}

// Update advances the driver to gtx.Now and returns the value. While
// a run is in flight it requests the next frame, so hosts only need
// to call it from their layout pass.
func (a *Animation) Update(gtx layout.Context) float32 {
	switch a.mode {
	case animTimed:
		if dt := a.delta(gtx.Now); dt > 0 {
			step := float32(dt.Seconds() / a.dur.Seconds())
			v := a.value
			if a.target > v {
				v = utils.Min(v+step, a.target)
			} else {
				v = utils.Max(v-step, a.target)
			}
			a.move(v)
			if v == a.target {
				a.settle()
			}
		}
	case animFling:
		if dt := float32(a.delta(gtx.Now).Seconds()); dt > 0 {
			d := a.value - a.target
			b := a.vel + springOmega*d
			decay := float32(math.Exp(float64(-springOmega * dt)))
			a.vel = (b - springOmega*(d+b*dt)) * decay
			a.move(utils.Clamp(a.target+(d+b*dt)*decay, 0, 1))
			if utils.Abs(a.value-a.target) < springRestDelta && utils.Abs(a.vel) < springRestVelocity {
				a.move(a.target)
				a.settle()
			}
		}
	default:
		return a.value
	}
	if a.mode != animIdle {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return a.value
}

func (a *Animation) startTimed(target float32, d time.Duration, forward bool) {
	a.forward = forward
	if d <= 0 || a.value == target {
		a.mode = animIdle
		a.setValue(target)
		a.settle()
		return
	}
	a.mode = animTimed
	a.target = target
	a.dur = d
	a.last = time.Time{}
	if forward {
		a.status = StatusForward
	} else {
		a.status = StatusReverse
	}
}

// setValue assigns v and derives the status: bounds win over
// direction, interior values report the direction of the last
// command.
func (a *Animation) setValue(v float32) {
	a.move(v)
	switch {
	case v <= 0:
		a.status = StatusDismissed
	case v >= 1:
		a.status = StatusCompleted
	default:
		if a.forward {
			a.status = StatusForward
		} else {
			a.status = StatusReverse
		}
	}
}

func (a *Animation) settle() {
	a.mode = animIdle
	if a.forward {
		a.status = StatusCompleted
	} else {
		a.status = StatusDismissed
	}
}

func (a *Animation) move(v float32) {
	if v != a.value {
		a.value = v
		a.changed = true
	}
}

// delta returns the time elapsed since the previous frame. The first
// frame after a command primes the clock and contributes nothing.
func (a *Animation) delta(now time.Time) time.Duration {
	if a.last.IsZero() {
		a.last = now
		return 0
	}
	dt := now.Sub(a.last)
	a.last = now
	return dt
}
