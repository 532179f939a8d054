package core

// Key identifies a game-relevant key, abstracted from physical key names.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// EventType discriminates the kinds of input events a frame can carry.
type EventType int

const (
	EventQuit EventType = iota // window close / ctrl+c
	EventKeyDown
	EventKeyUp
)

// Event is a single discrete input event. Quit events carry no key.
type Event struct {
	Type EventType
	Key  Key
}

// InputFrame is the ordered sequence of input events observed during one
// simulation tick. Order matters: a down followed by an up in the same frame
// must resolve as a tap.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// PushKeyDown appends a key-down event.
func (f *InputFrame) PushKeyDown(k Key) {
	f.Events = append(f.Events, Event{Type: EventKeyDown, Key: k})
}

// PushKeyUp appends a key-up event.
func (f *InputFrame) PushKeyUp(k Key) {
	f.Events = append(f.Events, Event{Type: EventKeyUp, Key: k})
}

// PushQuit appends a quit request.
func (f *InputFrame) PushQuit() {
	f.Events = append(f.Events, Event{Type: EventQuit})
}

// Clear resets the frame for the next tick, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
