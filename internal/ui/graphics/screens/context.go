package screens

import (
	"fmt"

	"corylus/internal/config"
	"corylus/internal/ecs"
	"corylus/internal/ui/layout"
	"corylus/internal/ui/link"
	"corylus/internal/ui/locale"
)

// Context is what every screen hook receives.
type Context struct {
	Store   ecs.Owner
	Layouts *layout.Loader
	Links   link.Opener
	Text    locale.Translator
	Config  *config.Config
}

func (c *Context) text(key string, vars ...interface{}) string {
	if c.Text == nil {
		return key
	}
	return c.Text.Get(key, vars...)
}

// deleteRoot removes a screen's subtree. A root that vanished behind the
// screen's back means ownership is broken, which is not recoverable.
func deleteRoot(ctx *Context, root *ecs.Ref, name string) {
	if e, ok := root.Get(); ok {
		if err := ctx.Store.Delete(e); err != nil {
			panic(fmt.Sprintf("Failed to remove %s: %v", name, err))
		}
	}
	*root = ecs.Ref{}
}

func stretchedRoot(ctx *Context, id string) ecs.Ref {
	return ecs.Some(ctx.Store.NewEntity().
		WithTransform(ecs.TransformData{ID: id, Stretch: true}).
		Build())
}
