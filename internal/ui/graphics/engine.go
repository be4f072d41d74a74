package graphics

import (
	"log/slog"

	"corylus/internal/app"
	"corylus/internal/assets"
	"corylus/internal/config"
	"corylus/internal/ui/graphics/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine is the ebiten.Game that drives the app: every tick it polls the
// window, advances one app frame and draws the entity store.
type Engine struct {
	cfg      *config.Config
	app      *app.App
	renderer *Renderer
}

func NewEngine(cfg *config.Config, application *app.App, fonts *assets.Loader) *Engine {
	return &Engine{
		cfg:      cfg,
		app:      application,
		renderer: NewRenderer(fonts),
	}
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.cfg.Display.Width, e.cfg.Display.Height)
	ebiten.SetWindowTitle(e.cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.cfg.Display.TPS)
	input.EnableCloseHandling()

	e.app.Start()
	err := ebiten.RunGame(e)
	// a run that ended without a quit transition still tears the screen down
	e.app.Stop()
	return err
}

func (e *Engine) Update() error {
	if !e.app.Frame(input.Poll()) {
		slog.Info("Engine: application quit")
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	w, h := e.app.Size()
	e.renderer.Draw(screen, e.app.Store(), w, h)
}

// Layout keeps a fixed canvas; ebiten scales it to the window.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Display.CanvasWidth, e.cfg.Display.CanvasHeight
}
