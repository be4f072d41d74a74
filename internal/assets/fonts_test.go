package assets

import (
	"context"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFontUnknown(t *testing.T) {
	l := NewLoader()
	if _, err := l.LoadFont("font/mandrill.ttf"); err == nil {
		t.Fatal("expected error for unregistered font")
	}
}

func TestFaceIsCached(t *testing.T) {
	l := NewLoader()
	h, err := l.LoadFont(FontBold)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	a, err := l.Face(h, 40)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b, err := l.Face(h, 40)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if a != b {
		t.Error("expected cached face to be reused")
	}
}

func TestZeroHandleUsesDefault(t *testing.T) {
	l := NewLoader()
	face, err := l.Face(FontHandle{}, 20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face == nil {
		t.Fatal("nil face")
	}
}

func TestBasicFace(t *testing.T) {
	l := NewLoader()
	h, err := l.LoadFont(FontBasic)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	face, err := l.Face(h, 13)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face != basicfont.Face7x13 {
		t.Error("expected basic bitmap face")
	}
}

func TestBrokenSource(t *testing.T) {
	l := NewLoader()
	l.Register("font/broken.ttf", []byte("not a font"))
	h, err := l.LoadFont("font/broken.ttf")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if _, err := l.Face(h, 12); err == nil {
		t.Fatal("expected parse error")
	}
	if err := l.Preload(context.Background(), 12); err == nil {
		t.Fatal("expected preload to surface parse error")
	}
}

func TestPreload(t *testing.T) {
	l := NewLoader()
	if err := l.Preload(context.Background(), 40, 60, 90); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if len(l.faces) != 4*3 {
		t.Errorf("cached faces = %d, want 12", len(l.faces))
	}
}
