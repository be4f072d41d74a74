package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed *.po
var catalogues embed.FS

const (
	MenuStart       = "MENU_START"
	MenuLoad        = "MENU_LOAD"
	MenuOptions     = "MENU_OPTIONS"
	MenuAbout       = "MENU_ABOUT"
	SplashTitle     = "SPLASH_TITLE"
	AboutTitle      = "ABOUT_TITLE"
	AboutLink       = "ABOUT_LINK"
	GamePlaceholder = "GAME_PLACEHOLDER"
)

// Translator resolves message keys to display text.
type Translator interface {
	Get(key string, vars ...interface{}) string
}

// Load returns the embedded catalogue for language.
func Load(language string) (*gotext.Po, error) {
	data, err := catalogues.ReadFile(language + ".po")
	if err != nil {
		return nil, fmt.Errorf("no catalogue for language %q: %w", language, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}
