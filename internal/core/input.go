package core

import "strings"

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // rotate counter-clockwise
	ActionRight          // rotate clockwise
	ActionUp             // more thrust
	ActionDown           // less thrust
	ActionFire           // launch a bullet
	ActionShield         // toggle the shield
	ActionPause          // pause or resume
	ActionRestart        // new game after game over
	ActionQuit           // leave the program
	numActions
)

var actionNames = [numActions]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionFire:    "fire",
	ActionShield:  "shield",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

// String returns the action name.
func (a Action) String() string {
	if a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions collected between two ticks.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set adds a to the frame. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.bits&(1<<a) != 0
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	n := 0
	for a := range numActions {
		if f.Has(a) {
			n++
		}
	}
	return n
}

// Clear empties the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the actions in the frame, e.g. "[left fire]".
func (f InputFrame) String() string {
	var names []string
	for a := range numActions {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
