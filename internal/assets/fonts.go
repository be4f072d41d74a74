package assets

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
)

const (
	FontRegular = "font/regular.ttf"
	FontBold    = "font/bold.ttf"
	FontMono    = "font/mono.ttf"
	FontBasic   = "font/basic"

	fontDPI = 72
)

// FontHandle is an opaque reference to a registered font. The zero value
// refers to the loader's default font.
type FontHandle struct {
	name string
}

func (h FontHandle) Name() string {
	return h.name
}

type faceKey struct {
	name string
	size float64
}

type Loader struct {
	mu          sync.Mutex
	sources     map[string][]byte
	parsed      map[string]*opentype.Font
	faces       map[faceKey]font.Face
	defaultFont string
}

func NewLoader() *Loader {
	l := &Loader{
		sources:     make(map[string][]byte),
		parsed:      make(map[string]*opentype.Font),
		faces:       make(map[faceKey]font.Face),
		defaultFont: FontRegular,
	}
	l.Register(FontRegular, goregular.TTF)
	l.Register(FontBold, gobold.TTF)
	l.Register(FontMono, gomono.TTF)
	l.Register(FontBasic, nil)
	return l
}

// Register adds a TrueType source under name. A nil source registers the
// fixed-size basic bitmap face.
func (l *Loader) Register(name string, ttf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = ttf
	delete(l.parsed, name)
}

func (l *Loader) LoadFont(name string) (FontHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sources[name]; !ok {
		return FontHandle{}, fmt.Errorf("font %q is not registered", name)
	}
	return FontHandle{name: name}, nil
}

// Face returns the face for h at size, decoding and caching it on first use.
func (l *Loader) Face(h FontHandle, size float64) (font.Face, error) {
	name := h.name
	if name == "" {
		name = l.defaultFont
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := faceKey{name: name, size: size}
	if face, ok := l.faces[key]; ok {
		return face, nil
	}

	src, ok := l.sources[name]
	if !ok {
		return nil, fmt.Errorf("font %q is not registered", name)
	}
	if src == nil {
		l.faces[key] = basicfont.Face7x13
		return basicfont.Face7x13, nil
	}

	f, ok := l.parsed[name]
	if !ok {
		var err error
		f, err = opentype.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
		}
		l.parsed[name] = f
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %q@%.0f: %w", name, size, err)
	}
	l.faces[key] = face
	return face, nil
}

// Preload decodes every registered font at the given sizes.
func (l *Loader) Preload(ctx context.Context, sizes ...float64) error {
	l.mu.Lock()
	names := make([]string, 0, len(l.sources))
	for name := range l.sources {
		names = append(names, name)
	}
	l.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		for _, size := range sizes {
			name, size := name, size
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				_, err := l.Face(FontHandle{name: name}, size)
				return err
			})
		}
	}
	return g.Wait()
}
