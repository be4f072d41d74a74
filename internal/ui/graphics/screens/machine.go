package screens

import (
	"fmt"
	"log/slog"

	"corylus/internal/ui/types"
)

// Machine owns the active screen. The screen set is closed, so every hook is
// dispatched with a switch over the active type.
type Machine struct {
	ctx     *Context
	active  types.ScreenType
	running bool

	splash  *SplashScreen
	menu    *MainMenuScreen
	game    *GameScreen
	about   *AboutScreen
	pause   *PauseScreen
	credits *CreditsScreen
}

func NewMachine(ctx *Context, initial types.ScreenType) *Machine {
	return &Machine{ctx: ctx, active: initial}
}

// Start enters the initial screen.
func (m *Machine) Start() {
	if m.running {
		return
	}
	m.running = true
	slog.Info("Screens: starting", "screen", m.active)
	m.enter(m.active)
}

func (m *Machine) Active() types.ScreenType {
	return m.active
}

func (m *Machine) Running() bool {
	return m.running
}

func (m *Machine) HandleEvent(ev types.StateEvent) {
	if !m.running {
		return
	}
	var t types.Transition
	switch m.active {
	case types.ScreenSplash:
		t = m.splash.HandleEvent(m.ctx, ev)
	case types.ScreenMainMenu:
		t = m.menu.HandleEvent(m.ctx, ev)
	case types.ScreenGame:
		t = m.game.HandleEvent(m.ctx, ev)
	case types.ScreenAbout:
		t = m.about.HandleEvent(m.ctx, ev)
	case types.ScreenPause, types.ScreenCredits:
		t = quitOnClose(ev)
	}
	m.apply(t)
}

func (m *Machine) Update() {
	if !m.running {
		return
	}
	var t types.Transition
	switch m.active {
	case types.ScreenMainMenu:
		t = m.menu.Update(m.ctx)
	case types.ScreenAbout:
		t = m.about.Update(m.ctx)
	default:
		t = types.None()
	}
	m.apply(t)
}

func (m *Machine) FixedUpdate() {
	if !m.running {
		return
	}
	t := types.None()
	if m.active == types.ScreenSplash {
		t = m.splash.FixedUpdate(m.ctx)
	}
	m.apply(t)
}

// Stop leaves the active screen and halts the machine.
func (m *Machine) Stop() {
	if !m.running {
		return
	}
	m.exit()
	m.running = false
	slog.Info("Screens: stopped")
}

func (m *Machine) apply(t types.Transition) {
	switch t.Type {
	case types.TransSwitch:
		slog.Debug("Screens: switching", "from", m.active, "to", t.Next)
		m.exit()
		m.active = t.Next
		m.enter(t.Next)
	case types.TransQuit:
		m.Stop()
	}
}

func (m *Machine) enter(s types.ScreenType) {
	switch s {
	case types.ScreenSplash:
		m.splash = &SplashScreen{}
		m.splash.OnStart(m.ctx)
	case types.ScreenMainMenu:
		m.menu = &MainMenuScreen{}
		m.menu.OnStart(m.ctx)
	case types.ScreenGame:
		m.game = &GameScreen{}
		m.game.OnStart(m.ctx)
	case types.ScreenAbout:
		m.about = &AboutScreen{}
		m.about.OnStart(m.ctx)
	case types.ScreenPause:
		m.pause = &PauseScreen{}
		m.pause.OnStart(m.ctx)
	case types.ScreenCredits:
		m.credits = &CreditsScreen{}
		m.credits.OnStart(m.ctx)
	default:
		panic(fmt.Sprintf("unknown screen %d", s))
	}
}

func (m *Machine) exit() {
	switch m.active {
	case types.ScreenSplash:
		m.splash.OnStop(m.ctx)
		m.splash = nil
	case types.ScreenMainMenu:
		m.menu.OnStop(m.ctx)
		m.menu = nil
	case types.ScreenGame:
		m.game.OnStop(m.ctx)
		m.game = nil
	case types.ScreenAbout:
		m.about.OnStop(m.ctx)
		m.about = nil
	case types.ScreenPause:
		m.pause.OnStop(m.ctx)
		m.pause = nil
	case types.ScreenCredits:
		m.credits.OnStop(m.ctx)
		m.credits = nil
	}
}
