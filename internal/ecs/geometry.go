package ecs

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
)

type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorTopLeft
	AnchorTopMiddle
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
)

var anchorNames = map[string]Anchor{
	"middle":        AnchorMiddle,
	"top_left":      AnchorTopLeft,
	"top_middle":    AnchorTopMiddle,
	"top_right":     AnchorTopRight,
	"middle_left":   AnchorMiddleLeft,
	"middle_right":  AnchorMiddleRight,
	"bottom_left":   AnchorBottomLeft,
	"bottom_middle": AnchorBottomMiddle,
	"bottom_right":  AnchorBottomRight,
}

func ParseAnchor(name string) (Anchor, error) {
	if name == "" {
		return AnchorMiddle, nil
	}
	a, ok := anchorNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown anchor %q", name)
	}
	return a, nil
}

// fraction returns the anchor's position inside a rect, as fractions of its size.
func (a Anchor) fraction() (float64, float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopMiddle:
		return 0.5, 0
	case AnchorTopRight:
		return 1, 0
	case AnchorMiddleLeft:
		return 0, 0.5
	case AnchorMiddleRight:
		return 1, 0.5
	case AnchorBottomLeft:
		return 0, 1
	case AnchorBottomMiddle:
		return 0.5, 1
	case AnchorBottomRight:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Placed is an entity resolved to screen space.
type Placed struct {
	Entity       Entity
	Rect         Rect
	Z            float64
	Interactable bool
}

// Layout resolves every transform to a screen rect inside a width x height
// viewport. The result is ordered back to front.
func (s *Store) Layout(width, height float64) []Placed {
	screen := Rect{Width: width, Height: height}
	resolved := make(map[Entity]Placed)

	var resolve func(e Entity) (Placed, bool)
	resolve = func(e Entity) (Placed, bool) {
		if p, ok := resolved[e]; ok {
			return p, true
		}
		t, ok := s.Transform(e)
		if !ok {
			return Placed{}, false
		}

		parentRect, parentZ := screen, 0.0
		if pe, ok := s.Parent(e); ok {
			if pp, ok := resolve(pe); ok {
				parentRect, parentZ = pp.Rect, pp.Z
			}
		}

		p := Placed{
			Entity:       e,
			Rect:         place(t, parentRect),
			Z:            parentZ + t.Z,
			Interactable: s.HasTag(e, Interactable),
		}
		resolved[e] = p
		return p, true
	}

	out := make([]Placed, 0, s.world.Len())
	transforms.Each(s.world, func(entry *donburi.Entry) {
		if p, ok := resolve(entry.Entity()); ok {
			out = append(out, p)
		}
	})

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}

func place(t TransformData, parent Rect) Rect {
	if t.Stretch {
		return parent
	}
	ax, ay := t.Anchor.fraction()
	px, py := t.Pivot.fraction()
	return Rect{
		X:      parent.X + parent.Width*ax + t.X - t.Width*px,
		Y:      parent.Y + parent.Height*ay + t.Y - t.Height*py,
		Width:  t.Width,
		Height: t.Height,
	}
}

// HitTest returns the topmost interactable entity under (x, y).
func HitTest(placed []Placed, x, y float64) (Entity, bool) {
	for i := len(placed) - 1; i >= 0; i-- {
		p := placed[i]
		if p.Interactable && p.Rect.Contains(x, y) {
			return p.Entity, true
		}
	}
	return donburi.Null, false
}
