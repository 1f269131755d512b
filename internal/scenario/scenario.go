// Package scenario contains the two demonstration controllers. Both are
// plain state records advanced one frame at a time by Step, with no
// knowledge of any particular rendering surface or event loop; the TUI, the
// desktop window, and the headless runner all drive them the same way.
package scenario

import "context"

// World is the logical coordinate space both scenes are laid out in.
// Renderers scale it to whatever surface they own.
const (
	WorldW = 200.0
	WorldH = 140.0
)

// Stepper is a scenario controller advanced once per frame.
type Stepper interface {
	Step()
	Reset()
}

// Run advances s for up to frames steps, calling onFrame after each step.
// onFrame returning false stops the run early. The context check at the loop
// head allows cancellation of headless runs.
func Run(ctx context.Context, s Stepper, frames int, onFrame func(frame int) bool) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step()

		if onFrame != nil && !onFrame(i) {
			return nil
		}
	}
	return nil
}
