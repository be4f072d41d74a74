package components

import (
	"fmt"

	"corylus/internal/assets"
	"corylus/internal/ecs"
	"corylus/internal/ui/types"
)

const (
	DefaultButtonWidth    = 800
	DefaultButtonHeight   = 150
	DefaultButtonBorder   = 5
	DefaultButtonFontSize = 70
)

// Button describes a clickable widget. Create turns it into entities.
type Button struct {
	Text     string
	ID       string
	Width    float64
	Height   float64
	Border   float64
	FontSize float64
	Font     *assets.FontHandle
}

func NewButton(buttonText, id string) Button {
	return Button{
		Text:     buttonText,
		ID:       id,
		Width:    DefaultButtonWidth,
		Height:   DefaultButtonHeight,
		Border:   DefaultButtonBorder,
		FontSize: DefaultButtonFontSize,
	}
}

// Create builds the seven entities of the button under parent and returns
// the handle entity that owns them. The catch region carries the button id
// and sits on top of everything else so it receives the pointer.
func (b Button) Create(s ecs.Spawner, parent ecs.Entity, placement ecs.TransformData) ecs.Entity {
	if b.Width <= 0 || b.Height <= 0 || b.Border <= 0 {
		panic(fmt.Sprintf("button %q: sizes must be positive", b.ID))
	}
	if b.Border >= min(b.Width, b.Height) {
		panic(fmt.Sprintf("button %q: border %.1f too large for %.1fx%.1f", b.ID, b.Border, b.Width, b.Height))
	}

	var font assets.FontHandle
	if b.Font != nil {
		font = *b.Font
	}
	widget := s.NewWidgetID()
	inner := func(suffix string, z float64) ecs.TransformData {
		return ecs.TransformData{
			ID:     b.ID + suffix,
			Z:      z,
			Width:  b.Width - b.Border,
			Height: b.Height - b.Border,
		}
	}
	corner := func(n int, anchor ecs.Anchor) ecs.TransformData {
		return ecs.TransformData{
			ID:     fmt.Sprintf("%s_border_overlay_%d", b.ID, n),
			Anchor: anchor,
			Pivot:  anchor,
			Z:      0.2,
			Width:  b.Width / 5,
			Height: b.Height / 5,
		}
	}

	handle := s.NewEntity().
		WithTransform(placement).
		ChildOf(parent).
		Build()

	border := s.NewEntity().
		WithTransform(ecs.TransformData{ID: b.ID + "_border", Width: b.Width, Height: b.Height}).
		WithFill(types.ColorBorder).
		WithMember(widget).
		ChildOf(handle).
		Build()
	s.NewEntity().
		WithTransform(corner(1, ecs.AnchorBottomLeft)).
		WithFill(types.ColorBorder).
		WithMember(widget).
		ChildOf(border).
		Build()
	s.NewEntity().
		WithTransform(corner(2, ecs.AnchorTopRight)).
		WithFill(types.ColorBorder).
		WithMember(widget).
		ChildOf(border).
		Build()

	s.NewEntity().
		WithTransform(inner("_background", 0.1)).
		WithFill(types.ColorBackground).
		WithMember(widget).
		Highlightable().
		ChildOf(handle).
		Build()

	s.NewEntity().
		WithTransform(inner("_text", 0.2)).
		WithLabel(ecs.LabelData{
			Text:  b.Text,
			Font:  font,
			Size:  b.FontSize,
			Color: types.ColorTextLight,
		}).
		WithMember(widget).
		ChildOf(handle).
		Build()

	s.NewEntity().
		WithTransform(ecs.TransformData{ID: b.ID, Z: 10, Width: b.Width, Height: b.Height}).
		WithMember(widget).
		Interactable().
		ChildOf(handle).
		Build()

	return handle
}
