package ecs

// Ref is an optional entity reference. The zero value refers to nothing.
type Ref struct {
	entity Entity
	set    bool
}

func Some(e Entity) Ref {
	return Ref{entity: e, set: true}
}

func (r Ref) Get() (Entity, bool) {
	return r.entity, r.set
}

func (r Ref) IsSome() bool {
	return r.set
}

// Is reports whether r refers to e.
func (r Ref) Is(e Entity) bool {
	return r.set && r.entity == e
}
