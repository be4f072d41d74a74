package ecs

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	transforms     = donburi.NewQuery(filter.Contains(Transform))
	highlightables = donburi.NewQuery(filter.Contains(Transform, Highlightable))
)

// Store wraps the entity world and keeps the parent/child index used for
// cascading deletes.
type Store struct {
	world      donburi.World
	children   map[Entity][]Entity
	nextWidget WidgetID
}

func NewStore() *Store {
	return &Store{
		world:    donburi.NewWorld(),
		children: make(map[Entity][]Entity),
	}
}

func (s *Store) Len() int {
	return s.world.Len()
}

func (s *Store) Valid(e Entity) bool {
	return s.world.Valid(e)
}

func (s *Store) NewWidgetID() WidgetID {
	s.nextWidget++
	return s.nextWidget
}

// Delete removes e and, transitively, every entity parented to it.
func (s *Store) Delete(e Entity) error {
	if !s.world.Valid(e) {
		return fmt.Errorf("entity %v does not exist", e)
	}

	if p, ok := s.Parent(e); ok {
		s.unlink(p, e)
	}
	s.deleteTree(e)
	return nil
}

func (s *Store) deleteTree(e Entity) {
	for _, child := range s.children[e] {
		if s.world.Valid(child) {
			s.deleteTree(child)
		}
	}
	delete(s.children, e)
	s.world.Remove(e)
}

func (s *Store) link(parent, child Entity) {
	s.children[parent] = append(s.children[parent], child)
}

func (s *Store) unlink(parent, child Entity) {
	kids := s.children[parent]
	for i, k := range kids {
		if k == child {
			s.children[parent] = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

func (s *Store) Children(e Entity) []Entity {
	kids := s.children[e]
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out
}

func (s *Store) Parent(e Entity) (Entity, bool) {
	if !s.world.Valid(e) {
		return donburi.Null, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Parent) {
		return donburi.Null, false
	}
	return Parent.Get(entry).Entity, true
}

// Find returns the first entity whose transform id equals id.
func (s *Store) Find(id string) (Entity, bool) {
	found := donburi.Null
	transforms.Each(s.world, func(entry *donburi.Entry) {
		if found == donburi.Null && Transform.Get(entry).ID == id {
			found = entry.Entity()
		}
	})
	return found, found != donburi.Null
}

func (s *Store) Transform(e Entity) (TransformData, bool) {
	if !s.world.Valid(e) {
		return TransformData{}, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Transform) {
		return TransformData{}, false
	}
	return *Transform.Get(entry), true
}

func (s *Store) TransformID(e Entity) (string, bool) {
	t, ok := s.Transform(e)
	return t.ID, ok
}

func (s *Store) WidgetOf(e Entity) (WidgetID, bool) {
	if !s.world.Valid(e) {
		return 0, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Member) {
		return 0, false
	}
	return Member.Get(entry).Widget, true
}

func (s *Store) EachHighlightable(fn func(e Entity, id string, widget WidgetID, member bool)) {
	highlightables.Each(s.world, func(entry *donburi.Entry) {
		var widget WidgetID
		member := entry.HasComponent(Member)
		if member {
			widget = Member.Get(entry).Widget
		}
		fn(entry.Entity(), Transform.Get(entry).ID, widget, member)
	})
}

func (s *Store) Fill(e Entity) (color.RGBA, bool) {
	if !s.world.Valid(e) {
		return color.RGBA{}, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Fill) {
		return color.RGBA{}, false
	}
	return Fill.Get(entry).Color, true
}

// SetFill recolors e, adding a fill if it had none.
func (s *Store) SetFill(e Entity, c color.RGBA) {
	if !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Fill) {
		entry.AddComponent(Fill)
	}
	Fill.SetValue(entry, FillData{Color: c})
}

func (s *Store) Label(e Entity) (LabelData, bool) {
	if !s.world.Valid(e) {
		return LabelData{}, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(Label) {
		return LabelData{}, false
	}
	return *Label.Get(entry), true
}

func (s *Store) HasTag(e Entity, tag *donburi.ComponentType[donburi.Tag]) bool {
	if !s.world.Valid(e) {
		return false
	}
	return s.world.Entry(e).HasComponent(tag)
}
