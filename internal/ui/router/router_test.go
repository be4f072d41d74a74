package router

import (
	"image/color"
	"testing"

	"corylus/internal/ecs"
	"corylus/internal/ui/events"
	"corylus/internal/ui/graphics/components"
	"corylus/internal/ui/types"
)

func setup(t *testing.T) (*ecs.Store, *events.Channel[types.InteractionEvent], *Router) {
	t.Helper()
	s := ecs.NewStore()
	ch := events.NewChannel[types.InteractionEvent]()
	return s, ch, New(s, ch)
}

func fill(t *testing.T, s *ecs.Store, id string) color.RGBA {
	t.Helper()
	e, ok := s.Find(id)
	if !ok {
		t.Fatalf("%s not found", id)
	}
	c, _ := s.Fill(e)
	return c
}

func TestHighlightSequence(t *testing.T) {
	s, ch, r := setup(t)
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "menu"}).Build()
	components.NewButton("Start Game", "start").Create(s, root, ecs.TransformData{})
	catch, _ := s.Find("start")

	steps := []struct {
		ev   types.InteractionType
		want color.RGBA
	}{
		{types.HoverStart, types.ColorBackgroundHighlighted},
		{types.HoverStop, types.ColorBackground},
		{types.ClickStart, types.ColorActing},
		{types.ClickStop, types.ColorBackground},
	}
	for _, step := range steps {
		ch.Write(types.InteractionEvent{Type: step.ev, Target: catch})
		r.Run()
		if got := fill(t, s, "start_background"); got != step.want {
			t.Fatalf("after %v: background = %v, want %v", step.ev, got, step.want)
		}
	}

	if got := fill(t, s, "start_border"); got != types.ColorBorder {
		t.Errorf("border recolored to %v", got)
	}
}

func TestEventsAppliedInOrderWithinFrame(t *testing.T) {
	s, ch, r := setup(t)
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "menu"}).Build()
	components.NewButton("Start Game", "start").Create(s, root, ecs.TransformData{})
	catch, _ := s.Find("start")

	ch.Write(types.InteractionEvent{Type: types.HoverStart, Target: catch})
	ch.Write(types.InteractionEvent{Type: types.ClickStart, Target: catch})
	r.Run()
	if got := fill(t, s, "start_background"); got != types.ColorActing {
		t.Errorf("background = %v, want acting", got)
	}

	// nothing new: a second run must not replay the hover
	r.Run()
	if got := fill(t, s, "start_background"); got != types.ColorActing {
		t.Errorf("background after idle run = %v", got)
	}
}

func TestClickIsIgnored(t *testing.T) {
	s, ch, r := setup(t)
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "menu"}).Build()
	components.NewButton("About", "about").Create(s, root, ecs.TransformData{})
	catch, _ := s.Find("about")

	ch.Write(types.InteractionEvent{Type: types.Click, Target: catch})
	r.Run()
	if got := fill(t, s, "about_background"); got != types.ColorBackground {
		t.Errorf("background = %v", got)
	}
}

func TestPrefixNotSubstring(t *testing.T) {
	s, ch, r := setup(t)
	target := s.NewEntity().WithTransform(ecs.TransformData{ID: "start"}).Interactable().Build()
	s.NewEntity().
		WithTransform(ecs.TransformData{ID: "start_background"}).
		WithFill(types.ColorBackground).
		Highlightable().
		Build()
	s.NewEntity().
		WithTransform(ecs.TransformData{ID: "restart_background"}).
		WithFill(types.ColorBackground).
		Highlightable().
		Build()

	ch.Write(types.InteractionEvent{Type: types.HoverStart, Target: target})
	r.Run()

	if got := fill(t, s, "start_background"); got != types.ColorBackgroundHighlighted {
		t.Errorf("start_background = %v", got)
	}
	if got := fill(t, s, "restart_background"); got != types.ColorBackground {
		t.Errorf("restart_background recolored to %v", got)
	}
}

func TestWidgetRelationSeparatesPrefixedIDs(t *testing.T) {
	s, ch, r := setup(t)
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "menu"}).Build()
	components.NewButton("Load", "load").Create(s, root, ecs.TransformData{})
	components.NewButton("Load Last", "load_last").Create(s, root, ecs.TransformData{Y: 200})
	catch, _ := s.Find("load")

	ch.Write(types.InteractionEvent{Type: types.HoverStart, Target: catch})
	r.Run()

	if got := fill(t, s, "load_background"); got != types.ColorBackgroundHighlighted {
		t.Errorf("load_background = %v", got)
	}
	if got := fill(t, s, "load_last_background"); got != types.ColorBackground {
		t.Errorf("load_last_background recolored to %v", got)
	}
}

func TestDeletedTargetIsDiscarded(t *testing.T) {
	s, ch, r := setup(t)
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "menu"}).Build()
	components.NewButton("Start", "start").Create(s, root, ecs.TransformData{})
	catch, _ := s.Find("start")

	ch.Write(types.InteractionEvent{Type: types.HoverStart, Target: catch})
	if err := s.Delete(root); err != nil {
		t.Fatal(err)
	}
	before := s.Len()
	r.Run()
	if s.Len() != before {
		t.Error("router changed the entity set")
	}
	if ch.Pending(r.reader) != 0 {
		t.Error("event was not consumed")
	}
}
