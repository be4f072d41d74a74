package types

type ScreenType int

const (
	ScreenSplash ScreenType = iota
	ScreenMainMenu
	ScreenGame
	ScreenAbout
	ScreenPause
	ScreenCredits
)

func (s ScreenType) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenGame:
		return "Game"
	case ScreenAbout:
		return "About"
	case ScreenPause:
		return "Pause"
	case ScreenCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

type TransitionType int

const (
	TransNone TransitionType = iota
	TransSwitch
	TransQuit
)

// Transition is returned by every screen hook that may leave the screen.
type Transition struct {
	Type TransitionType
	Next ScreenType
}

func None() Transition {
	return Transition{Type: TransNone}
}

func Switch(next ScreenType) Transition {
	return Transition{Type: TransSwitch, Next: next}
}

func Quit() Transition {
	return Transition{Type: TransQuit}
}
