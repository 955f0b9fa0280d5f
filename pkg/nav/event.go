// Package nav holds the navigation state machine that decides which color
// is on screen and how input moves between colors.
package nav

// EventKind is the abstract kind of input or window event.
type EventKind int

const (
	// EventQuit is a request from the window system to close.
	EventQuit EventKind = iota
	// EventKeyDown is a key press. It never changes state.
	EventKeyDown
	// EventKeyUp is a key release and drives navigation.
	EventKeyUp
	// EventRedraw covers expose, resize and move notifications.
	EventRedraw
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// Event is one input delivered by an EventSource. Key is the key name in
// bubbletea notation ("enter", "left", " ", "q", "ctrl+l", ...).
type Event struct {
	Kind EventKind
	Key  string
}

// Quit returns a window close event.
func Quit() Event { return Event{Kind: EventQuit} }

// Redraw returns an expose/resize event.
func Redraw() Event { return Event{Kind: EventRedraw} }

// KeyUp returns a key release event for key.
func KeyUp(key string) Event { return Event{Kind: EventKeyUp, Key: key} }

// KeyDown returns a key press event for key.
func KeyDown(key string) Event { return Event{Kind: EventKeyDown, Key: key} }

// Action is what a released key asks the controller to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionQuit
	ActionRedraw
	ActionHelp
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionQuit:
		return "quit"
	case ActionRedraw:
		return "redraw"
	case ActionHelp:
		return "help"
	default:
		return "none"
	}
}

// KeyResolver maps a key name to an action.
type KeyResolver interface {
	Resolve(key string) Action
}
