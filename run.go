package knobs

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ClearColor fills the screen before widgets draw. The zero value
	// uses the style's popup background.
	ClearColor Color
	// Context is the UI context to drive. Nil creates one with NewContext.
	Context *Context
}

// fpsRefresh is how often the FPS overlay text is rebuilt, in seconds.
const fpsRefresh = 0.5

// game adapts a per-frame UI function to ebiten.Game.
type game struct {
	ctx   *Context
	ui    func(*Context)
	cfg   RunConfig
	clear colorRGBA

	fpsText string
	fpsAge  float64
}

func (g *game) Update() error {
	g.ctx.Begin()
	g.ui(g.ctx)
	g.ctx.End()

	if g.cfg.ShowFPS {
		g.fpsAge += g.ctx.dt()
		if g.fpsText == "" || g.fpsAge >= fpsRefresh {
			g.fpsAge = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	if g.ctx.testRunner != nil && g.ctx.testRunner.Done() && len(g.ctx.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.ctx.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and calls ui once per frame between Begin and End.
// It blocks until the window is closed or an attached test script finishes.
func Run(ui func(*Context), cfg RunConfig) error {
	if ui == nil {
		return fmt.Errorf("knobs: Run: nil ui func")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("knobs: Run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = NewContext()
	}
	bg := cfg.ClearColor
	if bg == (Color{}) {
		bg = ctx.style.Colors[ColPopupBg]
		bg.A = 1
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	g := &game{ctx: ctx, ui: ui, cfg: cfg, clear: bg.toRGBA()}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("knobs: run: %w", err)
	}
	return nil
}
