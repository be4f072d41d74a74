package screens

import (
	"log/slog"

	"corylus/internal/ecs"
	"corylus/internal/ui/layout"
	"corylus/internal/ui/types"
)

const LinkID = "twitter-link"

type AboutScreen struct {
	root ecs.Ref
	link ecs.Ref
}

func (s *AboutScreen) OnStart(ctx *Context) {
	s.root = ecs.Some(ctx.Layouts.Create(ctx.Store, layout.About, map[string]string{
		"version": ctx.Config.About.Version,
	}))
}

func (s *AboutScreen) Update(ctx *Context) types.Transition {
	if !s.link.IsSome() {
		if e, ok := ctx.Store.Find(LinkID); ok {
			s.link = ecs.Some(e)
		}
	}
	return types.None()
}

func (s *AboutScreen) HandleEvent(ctx *Context, ev types.StateEvent) types.Transition {
	switch {
	case ev.UI != nil && ev.UI.Type == types.Click:
		if s.link.Is(ev.UI.Target) {
			s.openLink(ctx)
			return types.None()
		}
		slog.Info("About: switching to MainMenu")
		return types.Switch(types.ScreenMainMenu)
	case ev.Window != nil:
		w := *ev.Window
		if types.IsCloseRequested(w) {
			slog.Info("About: quitting application")
			return types.Quit()
		}
		if types.IsKeyDown(w, types.KeyEscape) {
			slog.Info("About: switching to MainMenu")
			return types.Switch(types.ScreenMainMenu)
		}
	}
	return types.None()
}

func (s *AboutScreen) openLink(ctx *Context) {
	url := ctx.Config.About.LinkURL
	slog.Info("About: opening link", "url", url)
	if ctx.Links == nil {
		return
	}
	if err := ctx.Links.Open(url); err != nil {
		slog.Warn("About: error opening link", "url", url, "err", err)
	}
}

func (s *AboutScreen) OnStop(ctx *Context) {
	deleteRoot(ctx, &s.root, "AboutScreen")
	s.link = ecs.Ref{}
}
