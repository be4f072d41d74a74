package layout

import (
	"fmt"
	"image/color"

	"corylus/internal/assets"
	"corylus/internal/ecs"
	"corylus/internal/ui/types"
)

// Node is one element of a layout file.
type Node struct {
	ID           string   `toml:"id"`
	Anchor       string   `toml:"anchor"`
	Pivot        string   `toml:"pivot"`
	X            float64  `toml:"x"`
	Y            float64  `toml:"y"`
	Z            float64  `toml:"z"`
	Width        float64  `toml:"width"`
	Height       float64  `toml:"height"`
	Stretch      bool     `toml:"stretch"`
	Interactable bool     `toml:"interactable"`
	Fill         string   `toml:"fill"`
	Text         string   `toml:"text"`
	Args         []string `toml:"args"`
	Font         string   `toml:"font"`
	FontSize     float64  `toml:"font_size"`
	Color        string   `toml:"color"`
	Children     []Node   `toml:"children"`
}

type file struct {
	Root Node `toml:"root"`
}

// element is a validated Node ready to be spawned.
type element struct {
	transform    ecs.TransformData
	fill         *color.RGBA
	text         string
	args         []string
	font         assets.FontHandle
	fontSize     float64
	textColor    color.RGBA
	interactable bool
	children     []element
}

type FontResolver interface {
	LoadFont(name string) (assets.FontHandle, error)
}

func compile(n Node, fonts FontResolver) (element, error) {
	if n.ID == "" {
		return element{}, fmt.Errorf("node without id")
	}
	anchor, err := ecs.ParseAnchor(n.Anchor)
	if err != nil {
		return element{}, fmt.Errorf("%s: %w", n.ID, err)
	}
	pivot, err := ecs.ParseAnchor(n.Pivot)
	if err != nil {
		return element{}, fmt.Errorf("%s: %w", n.ID, err)
	}
	if !n.Stretch && (n.Width <= 0 || n.Height <= 0) {
		return element{}, fmt.Errorf("%s: width and height must be positive", n.ID)
	}

	el := element{
		transform: ecs.TransformData{
			ID:      n.ID,
			Anchor:  anchor,
			Pivot:   pivot,
			X:       n.X,
			Y:       n.Y,
			Z:       n.Z,
			Width:   n.Width,
			Height:  n.Height,
			Stretch: n.Stretch,
		},
		text:         n.Text,
		args:         n.Args,
		fontSize:     n.FontSize,
		interactable: n.Interactable,
	}

	if n.Fill != "" {
		role, err := types.ParseColorRole(n.Fill)
		if err != nil {
			return element{}, fmt.Errorf("%s: %w", n.ID, err)
		}
		c := role.Color()
		el.fill = &c
	}

	if n.Text != "" {
		role := types.RoleTextLight
		if n.Color != "" {
			role, err = types.ParseColorRole(n.Color)
			if err != nil {
				return element{}, fmt.Errorf("%s: %w", n.ID, err)
			}
		}
		el.textColor = role.Color()
		if el.fontSize <= 0 {
			return element{}, fmt.Errorf("%s: text needs a positive font_size", n.ID)
		}
		if n.Font != "" {
			el.font, err = fonts.LoadFont(n.Font)
			if err != nil {
				return element{}, fmt.Errorf("%s: %w", n.ID, err)
			}
		}
	}

	for _, child := range n.Children {
		c, err := compile(child, fonts)
		if err != nil {
			return element{}, fmt.Errorf("%s/%w", n.ID, err)
		}
		el.children = append(el.children, c)
	}
	return el, nil
}
