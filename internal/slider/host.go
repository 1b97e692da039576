package slider

import "time"

// Surface is the rendered strip the engine moves.
type Surface interface {
	// Offset reports the offset currently on screen, including the
	// intermediate value of a running animation.
	Offset() Offset
	// SetOffset places the strip immediately.
	SetOffset(to Offset)
	// Animate moves the strip over d and calls done once when it arrives.
	// done is not called for an animation halted by Stop.
	Animate(to Offset, d time.Duration, done func())
	// Stop halts a running animation where it is.
	Stop()
}

// Accelerated is implemented by surfaces with a transform path.
type Accelerated interface {
	// CanTransform reports whether the platform supports the path.
	CanTransform() bool
	// Transform starts a transition to the offset lasting d. ended is the
	// platform's transition-end notification; it may arrive late, more than
	// once, or not at all.
	Transform(to Offset, d time.Duration, ended func())
}

// Host is what a slider is mounted on.
type Host interface {
	Surface
	// Bounds measures the container and items.
	Bounds() Bounds
}

// Presenter is implemented by hosts that want every re-rendered
// Presentation pushed to them.
type Presenter interface {
	Present(Presentation)
}

// Teardowner is implemented by hosts that restore themselves on Destroy.
type Teardowner interface {
	Teardown()
}

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Callbacks must be delivered on
// the goroutine that drives the slider.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
