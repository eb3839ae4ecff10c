package interact

import "seehuhn.de/go/geom/vec"

type EventKind int

const (
	PointerMoved EventKind = iota
	ButtonDown
	ButtonUp
	RemoveKey
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Event is a raw input event as reported by the windowing layer.
// Position is in screen coordinates and only set for PointerMoved.
type Event struct {
	Kind     EventKind
	Button   Button
	Position vec.Vec2
}

// PointerState is the input snapshot the machine works from each frame.
type PointerState struct {
	// Position is the latest pointer sample in screen coordinates.
	// It is meaningless unless Known is set.
	Position vec.Vec2
	Known    bool

	LeftHeld      bool
	RightPressed  bool
	RemovePressed bool
}

// Tracker folds raw events into a PointerState. Held levels and the
// pointer position carry over between frames; pressed edges last for
// exactly one frame.
type Tracker struct {
	state PointerState
}

// Feed applies the events received since the previous frame and returns
// the snapshot for the current one. Only the last pointer sample counts.
func (t *Tracker) Feed(events []Event) PointerState {
	t.state.RightPressed = false
	t.state.RemovePressed = false
	for _, ev := range events {
		switch ev.Kind {
		case PointerMoved:
			t.state.Position = ev.Position
			t.state.Known = true
		case ButtonDown:
			switch ev.Button {
			case ButtonLeft:
				t.state.LeftHeld = true
			case ButtonRight:
				t.state.RightPressed = true
			}
		case ButtonUp:
			if ev.Button == ButtonLeft {
				t.state.LeftHeld = false
			}
		case RemoveKey:
			t.state.RemovePressed = true
		}
	}
	return t.state
}

// State returns the snapshot produced by the last Feed.
func (t *Tracker) State() PointerState {
	return t.state
}
