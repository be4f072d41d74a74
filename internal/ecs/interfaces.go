package ecs

import "image/color"

// Finder resolves transform ids to entities.
type Finder interface {
	Find(id string) (Entity, bool)
}

// Spawner creates entities and widget ids.
type Spawner interface {
	NewEntity() *EntityBuilder
	NewWidgetID() WidgetID
}

// Painter is the router's view of the store: transforms and tags are read,
// only fills are written.
type Painter interface {
	TransformID(e Entity) (string, bool)
	WidgetOf(e Entity) (WidgetID, bool)
	EachHighlightable(fn func(e Entity, id string, widget WidgetID, member bool))
	SetFill(e Entity, c color.RGBA)
}

// Owner is the screen's view: it may create and delete its own subtree.
type Owner interface {
	Finder
	Spawner
	Valid(e Entity) bool
	Delete(e Entity) error
}

var (
	_ Owner   = (*Store)(nil)
	_ Painter = (*Store)(nil)
)
