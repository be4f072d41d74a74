package screens

import (
	"log/slog"

	"corylus/internal/ecs"
	"corylus/internal/ui/graphics/components"
	"corylus/internal/ui/locale"
	"corylus/internal/ui/types"
)

const (
	ButtonStart   = "start"
	ButtonLoad    = "load"
	ButtonOptions = "options"
	ButtonAbout   = "about"
)

var menuButtons = []struct {
	id  string
	key string
}{
	{ButtonStart, locale.MenuStart},
	{ButtonLoad, locale.MenuLoad},
	{ButtonOptions, locale.MenuOptions},
	{ButtonAbout, locale.MenuAbout},
}

type MainMenuScreen struct {
	root    ecs.Ref
	buttons [4]ecs.Ref // indexed like menuButtons
}

func (s *MainMenuScreen) OnStart(ctx *Context) {
	s.root = stretchedRoot(ctx, "menu")
	root, _ := s.root.Get()

	cfg := ctx.Config.Menu
	count := float64(len(menuButtons))
	for i, b := range menuButtons {
		btn := components.Button{
			Text:     ctx.text(b.key),
			ID:       b.id,
			Width:    cfg.ButtonWidth,
			Height:   cfg.ButtonHeight,
			Border:   cfg.ButtonBorder,
			FontSize: cfg.FontSize,
		}
		btn.Create(ctx.Store, root, ecs.TransformData{
			ID:     b.id + "_container",
			Width:  cfg.ButtonWidth,
			Height: cfg.ButtonHeight,
			Y:      float64(i)*(cfg.ButtonHeight+cfg.ButtonSpacing) - (count/2-0.5)*cfg.ButtonHeight,
		})
	}
}

func (s *MainMenuScreen) Update(ctx *Context) types.Transition {
	s.resolve(ctx.Store)
	return types.None()
}

// resolve looks up the buttons that have not been found yet and reports
// whether all of them are known. Once everything is found it stops querying.
func (s *MainMenuScreen) resolve(f ecs.Finder) bool {
	done := true
	for i := range s.buttons {
		if s.buttons[i].IsSome() {
			continue
		}
		if e, ok := f.Find(menuButtons[i].id); ok {
			s.buttons[i] = ecs.Some(e)
		} else {
			done = false
		}
	}
	return done
}

func (s *MainMenuScreen) button(id string) ecs.Ref {
	for i, b := range menuButtons {
		if b.id == id {
			return s.buttons[i]
		}
	}
	return ecs.Ref{}
}

func (s *MainMenuScreen) HandleEvent(ctx *Context, ev types.StateEvent) types.Transition {
	switch {
	case ev.UI != nil && ev.UI.Type == types.Click:
		target := ev.UI.Target
		switch {
		case s.button(ButtonAbout).Is(target):
			slog.Info("MainMenu: switching to About")
			return types.Switch(types.ScreenAbout)
		case s.button(ButtonStart).Is(target):
			slog.Info("MainMenu: switching to Game")
			return types.Switch(types.ScreenGame)
		case s.button(ButtonLoad).Is(target) || s.button(ButtonOptions).Is(target):
			slog.Info("MainMenu: this button's functionality is not yet implemented")
		}
	case ev.Window != nil:
		if types.IsCloseRequested(*ev.Window) || types.IsKeyDown(*ev.Window, types.KeyEscape) {
			slog.Info("MainMenu: quitting application")
			return types.Quit()
		}
	}
	return types.None()
}

func (s *MainMenuScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "MainMenu")
	s.buttons = [4]ecs.Ref{}
}
