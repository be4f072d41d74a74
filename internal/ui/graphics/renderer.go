package graphics

import (
	"log/slog"

	"corylus/internal/assets"
	"corylus/internal/ecs"
	"corylus/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Renderer draws whatever the store holds: filled rects for Fill, centred
// text for Label, back to front.
type Renderer struct {
	fonts  *assets.Loader
	failed map[string]bool
}

func NewRenderer(fonts *assets.Loader) *Renderer {
	return &Renderer{
		fonts:  fonts,
		failed: make(map[string]bool),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, store *ecs.Store, width, height float64) {
	screen.Fill(types.ColorClear)

	for _, p := range store.Layout(width, height) {
		if c, ok := store.Fill(p.Entity); ok {
			vector.DrawFilledRect(screen,
				float32(p.Rect.X), float32(p.Rect.Y),
				float32(p.Rect.Width), float32(p.Rect.Height),
				c, false)
		}
		if label, ok := store.Label(p.Entity); ok && label.Text != "" {
			r.drawLabel(screen, p.Rect, label)
		}
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, rect ecs.Rect, label ecs.LabelData) {
	face := r.face(label.Font, label.Size)
	if face == nil {
		return
	}

	bounds := text.BoundString(face, label.Text)
	textX := int(rect.X) + (int(rect.Width)-bounds.Dx())/2
	textY := int(rect.Y) + (int(rect.Height)-bounds.Dy())/2 - bounds.Min.Y

	text.Draw(screen, label.Text, face, textX, textY, label.Color)
}

// face logs a missing font once and then keeps skipping it.
func (r *Renderer) face(h assets.FontHandle, size float64) font.Face {
	face, err := r.fonts.Face(h, size)
	if err == nil {
		return face
	}
	if !r.failed[h.Name()] {
		r.failed[h.Name()] = true
		slog.Warn("Renderer: font unavailable", "font", h.Name(), "err", err)
	}
	return nil
}
