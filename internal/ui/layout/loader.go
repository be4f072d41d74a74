package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/BurntSushi/toml"

	"corylus/internal/ecs"
	"corylus/internal/ui/locale"
)

//go:embed templates/*.toml
var embedded embed.FS

const (
	Splash = "splash"
	About  = "about"
)

type request struct {
	name string
	root ecs.Entity
	vars map[string]string
}

// Loader instantiates named layout templates. Create spawns the root at once;
// the rest of the tree appears on the next Process call, so screens have to
// look their widgets up lazily.
type Loader struct {
	templates map[string]element
	tr        locale.Translator
	pending   []request
}

// NewLoader parses and validates every embedded template.
func NewLoader(tr locale.Translator, fonts FontResolver) (*Loader, error) {
	return NewLoaderFS(embedded, "templates", tr, fonts)
}

func NewLoaderFS(fsys fs.FS, dir string, tr locale.Translator, fonts FontResolver) (*Loader, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	l := &Loader{
		templates: make(map[string]element),
		tr:        tr,
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		var f file
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("template %s: unknown keys %v", name, undecoded)
		}
		el, err := compile(f.Root, fonts)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		l.templates[name] = el
	}
	return l, nil
}

func (l *Loader) Has(name string) bool {
	_, ok := l.templates[name]
	return ok
}

// Create spawns the root of template name and queues its children. Unknown
// names are a programming error and panic.
func (l *Loader) Create(s ecs.Spawner, name string, vars map[string]string) ecs.Entity {
	el, ok := l.templates[name]
	if !ok {
		panic(fmt.Sprintf("layout template %q does not exist", name))
	}
	root := l.spawn(s, el, nil, vars)
	l.pending = append(l.pending, request{name: name, root: root, vars: vars})
	return root
}

// Process builds the queued subtrees whose roots still exist.
func (l *Loader) Process(s ecs.Owner) {
	if len(l.pending) == 0 {
		return
	}
	pending := l.pending
	l.pending = nil

	for _, req := range pending {
		if !s.Valid(req.root) {
			slog.Debug("Layout: root gone before load", "template", req.name)
			continue
		}
		for _, child := range l.templates[req.name].children {
			l.spawnTree(s, child, req.root, req.vars)
		}
		slog.Debug("Layout: template loaded", "template", req.name)
	}
}

func (l *Loader) Pending() int {
	return len(l.pending)
}

func (l *Loader) spawnTree(s ecs.Spawner, el element, parent ecs.Entity, vars map[string]string) {
	e := l.spawn(s, el, &parent, vars)
	for _, child := range el.children {
		l.spawnTree(s, child, e, vars)
	}
}

func (l *Loader) spawn(s ecs.Spawner, el element, parent *ecs.Entity, vars map[string]string) ecs.Entity {
	b := s.NewEntity().WithTransform(el.transform)
	if parent != nil {
		b.ChildOf(*parent)
	}
	if el.fill != nil {
		b.WithFill(*el.fill)
	}
	if el.text != "" {
		b.WithLabel(ecs.LabelData{
			Text:  l.translate(el, vars),
			Font:  el.font,
			Size:  el.fontSize,
			Color: el.textColor,
		})
	}
	if el.interactable {
		b.Interactable()
	}
	return b.Build()
}

func (l *Loader) translate(el element, vars map[string]string) string {
	args := make([]interface{}, 0, len(el.args))
	for _, name := range el.args {
		args = append(args, vars[name])
	}
	if l.tr == nil {
		return el.text
	}
	return l.tr.Get(el.text, args...)
}
