package screens

import (
	"log/slog"

	"corylus/internal/ecs"
	"corylus/internal/ui/layout"
	"corylus/internal/ui/types"
)

type SplashScreen struct {
	root   ecs.Ref
	frames int
}

func (s *SplashScreen) OnStart(ctx *Context) {
	s.root = ecs.Some(ctx.Layouts.Create(ctx.Store, layout.Splash, nil))
}

// FixedUpdate runs once per fixed tick, so the threshold is a duration.
func (s *SplashScreen) FixedUpdate(ctx *Context) types.Transition {
	s.frames++
	if s.frames > ctx.Config.Splash.Frames {
		slog.Info("Splash: switching to MainMenu")
		return types.Switch(types.ScreenMainMenu)
	}
	return types.None()
}

func (s *SplashScreen) HandleEvent(ctx *Context, ev types.StateEvent) types.Transition {
	if ev.Window == nil {
		return types.None()
	}
	w := *ev.Window
	switch {
	case types.IsCloseRequested(w) || types.IsKeyDown(w, types.KeyEscape):
		slog.Info("Splash: quitting application")
		return types.Quit()
	case types.IsMouseButtonDown(w, types.MouseLeft):
		slog.Info("Splash: switching to MainMenu")
		return types.Switch(types.ScreenMainMenu)
	}
	return types.None()
}

func (s *SplashScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "SplashScreen")
}
