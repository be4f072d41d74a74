package locale

import (
	"strings"
	"testing"
)

func load(t *testing.T, language string) Translator {
	t.Helper()
	po, err := Load(language)
	if err != nil {
		t.Fatalf("Load(%s): %v", language, err)
	}
	return po
}

func TestLoadEnglish(t *testing.T) {
	po := load(t, "en")
	if got := po.Get(MenuStart); got != "Start Game" {
		t.Errorf("MenuStart = %q", got)
	}
	if got := po.Get(AboutTitle, "0.3.1"); !strings.HasPrefix(got, "Corylus 0.3.1") {
		t.Errorf("AboutTitle = %q", got)
	}
}

func TestCataloguesShareKeys(t *testing.T) {
	en, fr := load(t, "en"), load(t, "fr")
	for _, key := range []string{MenuStart, MenuLoad, MenuOptions, MenuAbout, SplashTitle, AboutLink, GamePlaceholder} {
		if en.Get(key) == key {
			t.Errorf("en: %s untranslated", key)
		}
		if fr.Get(key) == key {
			t.Errorf("fr: %s untranslated", key)
		}
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	if _, err := Load("tlh"); err == nil {
		t.Fatal("expected error")
	}
}
