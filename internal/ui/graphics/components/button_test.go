package components

import (
	"testing"

	"corylus/internal/ecs"
	"corylus/internal/ui/types"
)

func TestCreateBuildsSevenEntities(t *testing.T) {
	s := ecs.NewStore()
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "root", Stretch: true}).Build()
	before := s.Len()

	handle := NewButton("Start Game", "start").Create(s, root, ecs.TransformData{ID: "start_handle"})

	if got := s.Len() - before; got != 7 {
		t.Fatalf("created %d entities, want 7", got)
	}
	if p, ok := s.Parent(handle); !ok || p != root {
		t.Errorf("handle parent = %v, %v", p, ok)
	}

	for _, id := range []string{
		"start_border",
		"start_border_overlay_1",
		"start_border_overlay_2",
		"start_background",
		"start_text",
		"start",
	} {
		e, ok := s.Find(id)
		if !ok {
			t.Errorf("%s missing", id)
			continue
		}
		if !descendsFrom(s, e, handle) {
			t.Errorf("%s is not owned by the handle", id)
		}
	}

	bg, _ := s.Find("start_background")
	if !s.HasTag(bg, ecs.Highlightable) {
		t.Error("background is not highlightable")
	}
	if c, _ := s.Fill(bg); c != types.ColorBackground {
		t.Errorf("background fill = %v", c)
	}
	border, _ := s.Find("start_border")
	if c, _ := s.Fill(border); c != types.ColorBorder {
		t.Errorf("border fill = %v", c)
	}
	text, _ := s.Find("start_text")
	if l, ok := s.Label(text); !ok || l.Color != types.ColorTextLight || l.Text != "Start Game" {
		t.Errorf("label = %+v, %v", l, ok)
	}

	catch, _ := s.Find("start")
	if !s.HasTag(catch, ecs.Interactable) {
		t.Error("catch region is not interactable")
	}
	if s.HasTag(bg, ecs.Interactable) {
		t.Error("background should not take pointer events")
	}

	placed := s.Layout(1920, 1080)
	if top := placed[len(placed)-1].Entity; top != catch {
		t.Error("catch region is not topmost")
	}
	if hit, ok := ecs.HitTest(placed, 960, 540); !ok || hit != catch {
		t.Errorf("hit = %v, %v", hit, ok)
	}

	bw, _ := s.WidgetOf(bg)
	cw, _ := s.WidgetOf(catch)
	if bw != cw {
		t.Error("background and catch region belong to different widgets")
	}
}

func TestDeletingRootRemovesButton(t *testing.T) {
	s := ecs.NewStore()
	before := s.Len()
	root := s.NewEntity().WithTransform(ecs.TransformData{ID: "root"}).Build()
	NewButton("A", "a").Create(s, root, ecs.TransformData{})
	NewButton("B", "b").Create(s, root, ecs.TransformData{Y: 200})

	if err := s.Delete(root); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Len() != before {
		t.Errorf("Len = %d, want %d", s.Len(), before)
	}
}

func TestCreateRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name   string
		button Button
	}{
		{"zero width", Button{ID: "x", Width: 0, Height: 10, Border: 1}},
		{"negative border", Button{ID: "x", Width: 10, Height: 10, Border: -1}},
		{"border too large", Button{ID: "x", Width: 100, Height: 10, Border: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ecs.NewStore()
			root := s.NewEntity().WithTransform(ecs.TransformData{ID: "root"}).Build()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.button.Create(s, root, ecs.TransformData{})
		})
	}
}

func descendsFrom(s *ecs.Store, e, ancestor ecs.Entity) bool {
	for {
		p, ok := s.Parent(e)
		if !ok {
			return false
		}
		if p == ancestor {
			return true
		}
		e = p
	}
}
