// Package term runs the fire in a truecolor terminal. Each character cell
// shows two grid rows using an upper half block.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"doom-fire/internal/config"
	"doom-fire/internal/core"
	"doom-fire/internal/fire"
	"doom-fire/internal/host"
	"doom-fire/internal/render"
	"doom-fire/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// cellWriter is the part of tcell.Screen the host draws through.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Host is a fire.Surface that paints into terminal cells.
type Host struct {
	cells  cellWriter
	engine *fire.Engine
	loop   *host.Loop
	frame  time.Duration

	paused  bool
	drawing bool

	log *slog.Logger
}

// GridSize returns the grid that fills a cols x rows terminal, keeping the
// last row for the status line.
func GridSize(cols, rows int) core.Size {
	return core.Size{W: max(cols, 1), H: max(rows-1, 1) * 2}
}

// NewHost mounts an engine that presents into cells.
func NewHost(cells cellWriter, cfg fire.Config, frameRate int, logger *slog.Logger) (*Host, error) {
	if frameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate must be positive, got %d", fire.ErrInvalidConfig, frameRate)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Host{
		cells: cells,
		loop:  host.NewLoop(),
		frame: time.Second / time.Duration(frameRate),
		log:   logger.With("host", "term"),
	}
	engine, err := fire.New(cfg, h.loop, h, logger)
	if err != nil {
		return nil, err
	}
	h.engine = engine
	return h, nil
}

// Present draws a frame, two pixel rows per terminal row.
func (h *Host) Present(pix []byte, width, height int) {
	for row := 0; row*2 < height; row++ {
		for x := 0; x < width; x++ {
			top := pixelColor(pix, width, x, row*2)
			bottom := tcell.NewRGBColor(0, 0, 0)
			if row*2+1 < height {
				bottom = pixelColor(pix, width, x, row*2+1)
			}
			h.cells.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

// pixelColor composites the straight-alpha pixel at (x, y) over black.
func pixelColor(pix []byte, width, x, y int) tcell.Color {
	i := (y*width + x) * 4
	c := render.Over(color.NRGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}, render.Background)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Update advances the simulation by one display frame unless paused, then
// runs pending redraws and the status line.
func (h *Host) Update() {
	if !h.paused {
		h.loop.Advance(h.frame)
	}
	h.loop.Present()
	h.drawStatus()
}

func (h *Host) drawStatus() {
	size := h.engine.Size()
	line := ui.Summary(h.engine.Parameters(), "ticks", "seed", "radius", "lit")
	if h.paused {
		line += " [paused]"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	row := (size.H + 1) / 2
	x := 0
	for _, r := range line {
		if x >= size.W {
			break
		}
		h.cells.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < size.W; x++ {
		h.cells.SetContent(x, row, ' ', nil, style)
	}
}

// HandleKey applies a key press and reports whether the host should quit.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
		h.log.Debug("pause", "paused", h.paused)
	case 'n':
		h.engine.Step()
	case 'r':
		h.engine.Reset(h.engine.Config().Seed)
	case 's':
		h.engine.Reset(time.Now().UnixNano())
	case 'f':
		h.engine.SetSourceLit(!h.engine.SourceLit())
	case '[':
		h.engine.SetStrokeRadius(h.engine.Config().StrokeRadius - 1)
	case ']':
		h.engine.SetStrokeRadius(h.engine.Config().StrokeRadius + 1)
	}
	return false
}

// HandleMouse turns button 1 press, drag and release into a stroke.
func (h *Host) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	gx, gy := float32(x), float32(y*2)
	if ev.Buttons()&tcell.Button1 != 0 {
		if !h.drawing {
			h.drawing = true
			h.engine.PointerDown(gx, gy)
			return
		}
		h.engine.PointerMove(gx, gy)
		return
	}
	if h.drawing {
		h.drawing = false
		h.engine.PointerUp()
	}
}

// Paused reports whether ticking is suspended.
func (h *Host) Paused() bool { return h.paused }

// Engine returns the mounted engine.
func (h *Host) Engine() *fire.Engine { return h.engine }

// Close destroys the engine.
func (h *Host) Close() { h.engine.Destroy() }

// Run takes over the terminal until the user quits or ctx is cancelled. The
// grid is sized to the terminal; cfg.Fire.Width and Height are ignored.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	fc := cfg.Fire
	size := GridSize(screen.Size())
	fc.Width, fc.Height = size.W, size.H

	h, err := NewHost(screen, fc, cfg.FrameRate, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.HandleKey(ev) {
					h.log.Info("quit", "ticks", h.engine.Ticks())
					return nil
				}
			case *tcell.EventMouse:
				h.HandleMouse(ev)
			case *tcell.EventResize:
				h.log.Debug("resize")
				screen.Sync()
			}
		case <-ticker.C:
			h.Update()
			screen.Show()
		}
	}
}
