package app

import (
	"errors"
	"fmt"
	"log/slog"

	"corylus/internal/config"
	"corylus/internal/ecs"
	"corylus/internal/ui/events"
	"corylus/internal/ui/graphics/screens"
	"corylus/internal/ui/layout"
	"corylus/internal/ui/link"
	"corylus/internal/ui/locale"
	"corylus/internal/ui/pointer"
	"corylus/internal/ui/router"
	"corylus/internal/ui/types"
)

// App wires the entity store, the interaction channel, the router and the
// screen machine together and advances them one frame at a time. It knows
// nothing about the window; the graphics engine feeds it polled input.
type App struct {
	cfg *config.Config

	store        *ecs.Store
	interactions *events.Channel[types.InteractionEvent]
	screenReader *events.ReaderID

	layouts *layout.Loader
	router  *router.Router
	machine *screens.Machine
	pointer pointer.Tracker

	width  float64
	height float64
}

type Options struct {
	Config  *config.Config
	Text    locale.Translator
	Fonts   layout.FontResolver
	Links   link.Opener
	Initial types.ScreenType
}

func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("app needs a config")
	}
	if opts.Fonts == nil {
		return nil, errors.New("app needs a font resolver")
	}

	layouts, err := layout.NewLoader(opts.Text, opts.Fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to load layouts: %w", err)
	}

	store := ecs.NewStore()
	interactions := events.NewChannel[types.InteractionEvent]()

	a := &App{
		cfg:          opts.Config,
		store:        store,
		interactions: interactions,
		screenReader: interactions.Register(),
		layouts:      layouts,
		router:       router.New(store, interactions),
		width:        float64(opts.Config.Display.CanvasWidth),
		height:       float64(opts.Config.Display.CanvasHeight),
	}
	a.machine = screens.NewMachine(&screens.Context{
		Store:   store,
		Layouts: layouts,
		Links:   opts.Links,
		Text:    opts.Text,
		Config:  opts.Config,
	}, opts.Initial)

	return a, nil
}

func (a *App) Start() {
	a.machine.Start()
	slog.Info("App started", "screen", a.machine.Active())
}

// Stop leaves the active screen if the app is still running.
func (a *App) Stop() {
	a.machine.Stop()
}

func (a *App) Running() bool {
	return a.machine.Running()
}

func (a *App) Active() types.ScreenType {
	return a.machine.Active()
}

func (a *App) Store() *ecs.Store {
	return a.store
}

// Size is the logical canvas the UI is laid out on.
func (a *App) Size() (float64, float64) {
	return a.width, a.height
}

// Frame advances one frame and reports whether the app is still running.
func (a *App) Frame(in types.InputState) bool {
	if !a.machine.Running() {
		return false
	}

	a.layouts.Process(a.store)

	var over ecs.Ref
	if e, ok := ecs.HitTest(a.store.Layout(a.width, a.height), in.CursorX, in.CursorY); ok {
		over = ecs.Some(e)
	}
	a.pointer.Update(a.interactions, over, in.LeftDown)

	for _, ev := range in.Window {
		a.machine.HandleEvent(types.WindowStateEvent(ev))
	}
	for _, ev := range a.interactions.Read(a.screenReader) {
		a.machine.HandleEvent(types.UIStateEvent(ev))
	}

	a.router.Run()

	a.machine.Update()
	a.machine.FixedUpdate()

	a.interactions.Compact()
	return a.machine.Running()
}
