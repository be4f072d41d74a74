package screens

import (
	"log/slog"

	"corylus/internal/ecs"
	"corylus/internal/ui/locale"
	"corylus/internal/ui/types"
)

// GameScreen is a placeholder until gameplay exists.
type GameScreen struct {
	root ecs.Ref
}

func (s *GameScreen) OnStart(ctx *Context) {
	s.root = stretchedRoot(ctx, "game")
	root, _ := s.root.Get()

	ctx.Store.NewEntity().
		WithTransform(ecs.TransformData{ID: "game_placeholder", Width: 900, Height: 120}).
		WithLabel(ecs.LabelData{
			Text:  ctx.text(locale.GamePlaceholder),
			Size:  60,
			Color: types.ColorTextLight,
		}).
		ChildOf(root).
		Build()
}

func (s *GameScreen) HandleEvent(ctx *Context, ev types.StateEvent) types.Transition {
	if ev.Window == nil {
		return types.None()
	}
	if types.IsCloseRequested(*ev.Window) {
		slog.Info("Game: quitting application")
		return types.Quit()
	}
	if types.IsKeyDown(*ev.Window, types.KeyEscape) {
		slog.Info("Game: switching to MainMenu")
		return types.Switch(types.ScreenMainMenu)
	}
	return types.None()
}

func (s *GameScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "Game")
}

// PauseScreen and CreditsScreen are not reachable yet.
type PauseScreen struct {
	root ecs.Ref
}

func (s *PauseScreen) OnStart(ctx *Context) {
	s.root = stretchedRoot(ctx, "pause")
}

func (s *PauseScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "Pause")
}

type CreditsScreen struct {
	root ecs.Ref
}

func (s *CreditsScreen) OnStart(ctx *Context) {
	s.root = stretchedRoot(ctx, "credits")
}

func (s *CreditsScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "CreditsScreen")
}

func quitOnClose(ev types.StateEvent) types.Transition {
	if ev.Window != nil && types.IsCloseRequested(*ev.Window) {
		return types.Quit()
	}
	return types.None()
}
