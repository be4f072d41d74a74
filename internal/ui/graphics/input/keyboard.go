package input

import (
	"corylus/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = []struct {
	ebiten ebiten.Key
	key    types.Key
}{
	{ebiten.KeyEscape, types.KeyEscape},
	{ebiten.KeyEnter, types.KeyEnter},
	{ebiten.KeySpace, types.KeySpace},
}

var buttons = []struct {
	ebiten ebiten.MouseButton
	button types.MouseButton
}{
	{ebiten.MouseButtonLeft, types.MouseLeft},
	{ebiten.MouseButtonRight, types.MouseRight},
	{ebiten.MouseButtonMiddle, types.MouseMiddle},
}

// EnableCloseHandling makes closing the window a regular event instead of
// ending the game loop.
func EnableCloseHandling() {
	ebiten.SetWindowClosingHandled(true)
}

// Poll collects this tick's window events and pointer state. Cursor
// coordinates are in the canvas space returned by Layout.
func Poll() types.InputState {
	var in types.InputState

	if ebiten.IsWindowBeingClosed() {
		in.Window = append(in.Window, types.WindowEvent{Type: types.WindowCloseRequested})
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			in.Window = append(in.Window, types.WindowEvent{Type: types.WindowKeyDown, Key: k.key})
		}
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			in.Window = append(in.Window, types.WindowEvent{Type: types.WindowMouseDown, Button: b.button})
		}
	}

	x, y := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(x), float64(y)
	in.LeftDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}
