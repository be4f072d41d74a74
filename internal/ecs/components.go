package ecs

import (
	"image/color"

	"github.com/yohamta/donburi"

	"corylus/internal/assets"
)

type Entity = donburi.Entity

// WidgetID ties together the sub-entities of one composite widget.
type WidgetID int

type TransformData struct {
	ID      string
	Anchor  Anchor
	Pivot   Anchor
	X, Y, Z float64
	Width   float64
	Height  float64
	Stretch bool
}

type ParentData struct {
	Entity Entity
}

type FillData struct {
	Color color.RGBA
}

type LabelData struct {
	Text  string
	Font  assets.FontHandle
	Size  float64
	Color color.RGBA
}

type MemberData struct {
	Widget WidgetID
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Parent    = donburi.NewComponentType[ParentData]()
	Fill      = donburi.NewComponentType[FillData]()
	Label     = donburi.NewComponentType[LabelData]()
	Member    = donburi.NewComponentType[MemberData]()

	// Highlightable marks entities the router may recolor.
	Highlightable = donburi.NewTag()
	// Interactable marks entities that take part in pointer hit testing.
	Interactable = donburi.NewTag()
)
