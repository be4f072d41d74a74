package ecs

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
)

// EntityBuilder collects components and creates the entity in one step on Build.
//
//	e := store.NewEntity().
//		WithTransform(ecs.TransformData{ID: "start"}).
//		ChildOf(root).
//		Build()
type EntityBuilder struct {
	store     *Store
	types     []component.IComponentType
	apply     []func(*donburi.Entry)
	parent    Entity
	hasParent bool
	built     bool
}

func (s *Store) NewEntity() *EntityBuilder {
	return &EntityBuilder{store: s}
}

func (b *EntityBuilder) add(ct component.IComponentType, fn func(*donburi.Entry)) *EntityBuilder {
	if b.built {
		panic("entity already built - cannot add components after Build()")
	}
	b.types = append(b.types, ct)
	if fn != nil {
		b.apply = append(b.apply, fn)
	}
	return b
}

func (b *EntityBuilder) WithTransform(t TransformData) *EntityBuilder {
	return b.add(Transform, func(e *donburi.Entry) { Transform.SetValue(e, t) })
}

func (b *EntityBuilder) WithFill(c color.RGBA) *EntityBuilder {
	return b.add(Fill, func(e *donburi.Entry) { Fill.SetValue(e, FillData{Color: c}) })
}

func (b *EntityBuilder) WithLabel(l LabelData) *EntityBuilder {
	return b.add(Label, func(e *donburi.Entry) { Label.SetValue(e, l) })
}

func (b *EntityBuilder) WithMember(w WidgetID) *EntityBuilder {
	return b.add(Member, func(e *donburi.Entry) { Member.SetValue(e, MemberData{Widget: w}) })
}

func (b *EntityBuilder) Highlightable() *EntityBuilder {
	return b.add(Highlightable, nil)
}

func (b *EntityBuilder) Interactable() *EntityBuilder {
	return b.add(Interactable, nil)
}

func (b *EntityBuilder) ChildOf(parent Entity) *EntityBuilder {
	b.parent = parent
	b.hasParent = true
	return b.add(Parent, func(e *donburi.Entry) { Parent.SetValue(e, ParentData{Entity: parent}) })
}

// Build creates the entity. It panics if the parent no longer exists.
func (b *EntityBuilder) Build() Entity {
	if b.built {
		panic("entity already built")
	}
	if len(b.types) == 0 {
		panic("entity has no components")
	}
	if b.hasParent && !b.store.world.Valid(b.parent) {
		panic("parent entity does not exist")
	}
	b.built = true

	e := b.store.world.Create(b.types...)
	entry := b.store.world.Entry(e)
	for _, fn := range b.apply {
		fn(entry)
	}
	if b.hasParent {
		b.store.link(b.parent, e)
	}
	return e
}
