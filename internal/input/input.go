// Package input holds decoded input events. Polling the platform and
// turning its state into these events happens in the state package.
package input

import "go-arena-shooter/internal/utils"

type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	MouseButtonDown
	MouseMotion
	Quit
)

// Key is a mapped game key, independent of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF // toggles shooting
	KeyEscape
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Event is one input occurrence for the current frame.
type Event struct {
	Type   EventType
	Key    Key
	Button MouseButton
	Cursor utils.Vec2 // screen space, set for MouseMotion
}

func KeyDownEvent(k Key) Event {
	return Event{Type: KeyDown, Key: k}
}

func KeyUpEvent(k Key) Event {
	return Event{Type: KeyUp, Key: k}
}

func ClickEvent(b MouseButton) Event {
	return Event{Type: MouseButtonDown, Button: b}
}

func MotionEvent(x, y float64) Event {
	return Event{Type: MouseMotion, Cursor: utils.NewVec2(x, y)}
}

// IsQuit reports whether the event asks the game loop to stop.
func (e Event) IsQuit() bool {
	return e.Type == Quit || (e.Type == KeyDown && e.Key == KeyEscape)
}
