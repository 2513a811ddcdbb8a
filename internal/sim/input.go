package sim

import "strings"

// Input is the set of driving controls held this frame. Key callbacks write
// the flags, the integrator reads them once per step; both run on the frame
// loop thread, so plain bools are safe.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Brake    bool
}

// KeyDown marks the control bound to key as held.
func (in *Input) KeyDown(key string) { in.set(key, true) }

// KeyUp releases the control bound to key.
func (in *Input) KeyUp(key string) { in.set(key, false) }

// set maps a textual key identifier (primary letter or arrow alias) to its
// control flag. Unbound keys are ignored.
func (in *Input) set(key string, down bool) {
	switch strings.ToLower(key) {
	case "w", "up", "arrowup":
		in.Forward = down
	case "s", "down", "arrowdown":
		in.Backward = down
	case "a", "left", "arrowleft":
		in.Left = down
	case "d", "right", "arrowright":
		in.Right = down
	case " ", "space":
		in.Brake = down
	}
}
