package types

import (
	"fmt"
	"image/color"
)

var (
	ColorBorder                = color.RGBA{199, 238, 27, 255}
	ColorTextLight             = color.RGBA{72, 159, 181, 255}
	ColorAccent                = color.RGBA{145, 245, 173, 255}
	ColorActing                = color.RGBA{252, 159, 91, 255}
	ColorBackgroundHighlighted = color.RGBA{84, 18, 24, 255}
	ColorBackground            = color.RGBA{50, 11, 14, 255}
	ColorClear                 = color.RGBA{1, 1, 1, 255}
)

// ColorRole names a semantic slot of the palette.
type ColorRole int

const (
	RoleBorder ColorRole = iota
	RoleTextLight
	RoleAccent
	RoleActing
	RoleBackgroundHighlighted
	RoleBackground
)

var roleNames = map[string]ColorRole{
	"border":                 RoleBorder,
	"text_light":             RoleTextLight,
	"accent":                 RoleAccent,
	"acting":                 RoleActing,
	"background_highlighted": RoleBackgroundHighlighted,
	"background":             RoleBackground,
}

func (r ColorRole) Color() color.RGBA {
	switch r {
	case RoleBorder:
		return ColorBorder
	case RoleTextLight:
		return ColorTextLight
	case RoleAccent:
		return ColorAccent
	case RoleActing:
		return ColorActing
	case RoleBackgroundHighlighted:
		return ColorBackgroundHighlighted
	default:
		return ColorBackground
	}
}

// ParseColorRole maps a layout file color name to its role.
func ParseColorRole(name string) (ColorRole, error) {
	role, ok := roleNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown color role %q", name)
	}
	return role, nil
}

// InteractionColor is the fill a highlightable part takes for an interaction.
// The second result is false for interactions that leave the fill untouched.
func InteractionColor(t InteractionType) (color.RGBA, bool) {
	switch t {
	case HoverStart:
		return ColorBackgroundHighlighted, true
	case HoverStop:
		return ColorBackground, true
	case ClickStart:
		return ColorActing, true
	case ClickStop:
		return ColorBackground, true
	default:
		return color.RGBA{}, false
	}
}
