package pointer

import (
	"corylus/internal/ecs"
	"corylus/internal/ui/types"
)

// Sink receives the interaction events produced by a Tracker.
type Sink interface {
	Write(ev types.InteractionEvent)
}

// Tracker turns the per-frame pointer state into hover and click events. It
// remembers what the pointer is over and what was pressed, and emits only on
// changes.
type Tracker struct {
	hovered ecs.Ref
	pressed ecs.Ref
	down    bool
}

// Update takes the interactable under the cursor (if any) and the left button
// state for this frame.
func (t *Tracker) Update(sink Sink, over ecs.Ref, down bool) {
	if h, ok := t.hovered.Get(); ok && !over.Is(h) {
		sink.Write(types.InteractionEvent{Type: types.HoverStop, Target: h})
		t.hovered = ecs.Ref{}
	}
	if e, ok := over.Get(); ok && !t.hovered.IsSome() {
		sink.Write(types.InteractionEvent{Type: types.HoverStart, Target: e})
		t.hovered = over
	}

	wasDown := t.down
	t.down = down
	switch {
	case down && !wasDown:
		if e, ok := t.hovered.Get(); ok {
			sink.Write(types.InteractionEvent{Type: types.ClickStart, Target: e})
			t.pressed = t.hovered
		}
	case !down && wasDown:
		p, ok := t.pressed.Get()
		if !ok {
			return
		}
		sink.Write(types.InteractionEvent{Type: types.ClickStop, Target: p})
		if t.hovered.Is(p) {
			sink.Write(types.InteractionEvent{Type: types.Click, Target: p})
		}
		t.pressed = ecs.Ref{}
	}
}

// Reset forgets hover and press state without emitting anything.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
