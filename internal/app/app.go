//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"doom-fire/internal/config"
	"doom-fire/internal/fire"
	"doom-fire/internal/host"
	"doom-fire/internal/render"
	"doom-fire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a fire engine to the ebiten.Game interface. Update pumps the
// engine timer, Draw is the display refresh.
type Game struct {
	engine  *fire.Engine
	loop    *host.Loop
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale  int
	frame  time.Duration
	paused bool

	touch    ebiten.TouchID
	touching bool
	cursorX  int
	cursorY  int

	log *slog.Logger
}

// New constructs a Game for cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		loop:    host.NewLoop(),
		painter: render.NewGridPainter(cfg.Fire.Width, cfg.Fire.Height),
		overlay: ui.NewOverlay(),
		scale:   cfg.Scale,
		frame:   time.Second / time.Duration(cfg.FrameRate),
		log:     logger.With("host", "window"),
	}
	engine, err := fire.New(cfg.Fire, g.loop, g.painter, logger)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	g.hud = ui.NewHUD(engine, cfg.ShowHUD)
	return g, nil
}

// Reset reseeds the fire.
func (g *Game) Reset(seed int64) {
	g.engine.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit", "ticks", g.engine.Ticks())
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug("pause", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.engine.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.engine.SetSourceLit(!g.engine.SourceLit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.engine.SetStrokeRadius(g.engine.Config().StrokeRadius - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.engine.SetStrokeRadius(g.engine.Config().StrokeRadius + 1)
	}

	g.updateMouse()
	g.updateTouch()

	if !g.paused {
		g.loop.Advance(g.frame)
	}

	status := "running"
	if g.paused {
		status = "paused"
	}
	g.hud.Update(status)
	return nil
}

func (g *Game) updateMouse() {
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	x, y := g.gridPoint(g.cursorX, g.cursorY)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.engine.PointerDown(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.engine.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.engine.PointerMove(x, y)
	}
}

// updateTouch follows the first finger down until it lifts; other touches
// are ignored.
func (g *Game) updateTouch() {
	if !g.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		g.touch, g.touching = ids[0], true
		g.cursorX, g.cursorY = ebiten.TouchPosition(g.touch)
		g.engine.PointerDown(g.gridPoint(g.cursorX, g.cursorY))
		return
	}
	if inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
		g.engine.PointerUp()
		return
	}
	g.cursorX, g.cursorY = ebiten.TouchPosition(g.touch)
	g.engine.PointerMove(g.gridPoint(g.cursorX, g.cursorY))
}

func (g *Game) gridPoint(sx, sy int) (float32, float32) {
	return float32(sx) / float32(g.scale), float32(sy) / float32(g.scale)
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Present()
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen, g.cursorX, g.cursorY, g.engine.Config().StrokeRadius, g.scale, g.engine.Drawing())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.scale, s.H * g.scale
}

// Close cancels the engine's scheduled callbacks.
func (g *Game) Close() {
	g.engine.Destroy()
}

// Run opens a window and blocks until it is closed.
func Run(cfg *config.Config, logger *slog.Logger) error {
	game, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowTitle(fmt.Sprintf("doom-fire %dx%d", cfg.Fire.Width, cfg.Fire.Height))
	ebiten.SetTPS(cfg.FrameRate)
	ebiten.SetWindowSize(cfg.Fire.Width*cfg.Scale, cfg.Fire.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
