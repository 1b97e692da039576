// Package slider implements the position and animation engine of a carousel.
//
// # Overview
//
// A Slider owns the logical position of a strip of items inside a display
// that shows ItemsToDisplay of them at a time. Navigation (Next, Previous,
// Page, autoplay advances and drag gestures) changes the position; the engine
// turns it into an offset, commits the offset to its Host and re-derives the
// button, pager, item and site state hosts render.
//
// The package knows nothing about terminals or documents. Everything it needs
// from the outside world is a small capability interface:
//
//   - Host: measures the container and moves the strip (Surface)
//   - Accelerated: optional transform path with its own end notification
//   - Presenter: optional sink for every re-rendered Presentation
//   - Teardowner: optional cleanup when the slider is destroyed
//   - Scheduler: timers for autoplay and the commit fallback
//
// # Position and Wraparound
//
// Without wraparound the position is clamped to [0, itemCount-ItemsToDisplay]
// before every commit.
//
// With wraparound the strip carries ItemsToDisplay clones at both ends
// (see Strip and BuildClones). The position may step into the clone region;
// the frame is valid because the clones show the items from the other end.
// Once the animated commit lands, the position snaps to its real equivalent
// without animation:
//
//	itemCount=4, ItemsToDisplay=1
//
//	slots:   [c3][ 0][ 1][ 2][ 3][c0]
//	Previous from 0 → position -1 (shows c3) → lands → snap to 3
//	Next from 3     → position  4 (shows c0) → lands → snap to 0
//
// # Commits
//
// Every commit ends in exactly one completion. The transform path arms two
// sources, the host's end notification and a fallback timer of Duration;
// whichever fires first wins. A newer commit cancels the completion of an
// older one.
//
// While an animated commit is outstanding Transitioning reports true and
// Next, Previous and Page are dropped rather than queued.
//
// # Serialization
//
// Each slider runs its operations through a private queue. Calls made while
// another operation is in progress (from OnUpdate, or from a completion the
// host delivers synchronously) run after it finishes. The queue drains on the
// calling goroutine; a Slider is not safe for concurrent use and its
// Scheduler must deliver callbacks on the goroutine that drives it.
//
// # Gestures
//
// PointerDown, PointerMove and PointerUp drive a small state machine:
//
//	Idle → Armed (pointer down, not transitioning)
//	     → Dragging (axis movement beyond DirectionTolerance)
//	     → Idle (pointer up or cancel)
//
// While dragging the strip follows the pointer without animation. On
// release a drag of at least Tolerance moves one page against the drag
// direction; anything shorter settles back on the current page.
//
// A press always stops autoplay, even during a transition.
package slider
