package router

import (
	"log/slog"
	"strings"

	"corylus/internal/ecs"
	"corylus/internal/ui/events"
	"corylus/internal/ui/types"
)

// Router recolors the highlightable parts of the widget an interaction
// event is aimed at.
type Router struct {
	store  ecs.Painter
	events *events.Channel[types.InteractionEvent]
	reader *events.ReaderID
}

func New(store ecs.Painter, ch *events.Channel[types.InteractionEvent]) *Router {
	return &Router{
		store:  store,
		events: ch,
		reader: ch.Register(),
	}
}

// Run drains every event written since the previous Run.
func (r *Router) Run() {
	for _, ev := range r.events.Read(r.reader) {
		r.route(ev)
	}
}

func (r *Router) route(ev types.InteractionEvent) {
	slog.Debug("Router: ui interaction", "type", ev.Type, "target", ev.Target)

	// the target may have been deleted earlier this frame
	targetID, ok := r.store.TransformID(ev.Target)
	if !ok {
		return
	}
	fill, ok := types.InteractionColor(ev.Type)
	if !ok {
		return
	}
	targetWidget, targetMember := r.store.WidgetOf(ev.Target)

	var matched []ecs.Entity
	r.store.EachHighlightable(func(e ecs.Entity, id string, widget ecs.WidgetID, member bool) {
		if belongs(targetID, targetWidget, targetMember, id, widget, member) {
			matched = append(matched, e)
		}
	})
	for _, e := range matched {
		r.store.SetFill(e, fill)
	}
}

// belongs uses the widget relation recorded at build time when both sides
// carry one, and falls back to transform id prefixes otherwise.
func belongs(targetID string, targetWidget ecs.WidgetID, targetMember bool, id string, widget ecs.WidgetID, member bool) bool {
	if targetMember && member {
		return targetWidget == widget
	}
	return strings.HasPrefix(id, targetID)
}
