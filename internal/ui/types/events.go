package types

import "github.com/yohamta/donburi"

type InteractionType int

const (
	HoverStart InteractionType = iota
	HoverStop
	ClickStart
	ClickStop
	Click
)

func (t InteractionType) String() string {
	switch t {
	case HoverStart:
		return "HoverStart"
	case HoverStop:
		return "HoverStop"
	case ClickStart:
		return "ClickStart"
	case ClickStop:
		return "ClickStop"
	case Click:
		return "Click"
	default:
		return "Unknown"
	}
}

// InteractionEvent is a semantic pointer event aimed at one entity.
type InteractionEvent struct {
	Type   InteractionType
	Target donburi.Entity
}

type WindowEventType int

const (
	WindowCloseRequested WindowEventType = iota
	WindowKeyDown
	WindowMouseDown
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type WindowEvent struct {
	Type   WindowEventType
	Key    Key
	Button MouseButton
}

func IsCloseRequested(ev WindowEvent) bool {
	return ev.Type == WindowCloseRequested
}

func IsKeyDown(ev WindowEvent, key Key) bool {
	return ev.Type == WindowKeyDown && ev.Key == key
}

func IsMouseButtonDown(ev WindowEvent, button MouseButton) bool {
	return ev.Type == WindowMouseDown && ev.Button == button
}

// StateEvent is what the active screen receives: exactly one of Window or UI is set.
type StateEvent struct {
	Window *WindowEvent
	UI     *InteractionEvent
}

func WindowStateEvent(ev WindowEvent) StateEvent {
	return StateEvent{Window: &ev}
}

func UIStateEvent(ev InteractionEvent) StateEvent {
	return StateEvent{UI: &ev}
}

// InputState is one frame of raw input as polled from the window.
type InputState struct {
	Window   []WindowEvent
	CursorX  float64
	CursorY  float64
	LeftDown bool
}
