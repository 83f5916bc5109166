package fire

import (
	"context"
	"fmt"
	"log/slog"

	"doom-fire/internal/core"
)

// Surface receives rendered frames. pix is RGBA with straight alpha, four
// bytes per pixel, and is only valid for the duration of the call.
type Surface interface {
	Present(pix []byte, width, height int)
}

// Engine is one mounted fire instance.
type Engine struct {
	cfg     Config
	grid    *HeatGrid
	brush   Brush
	pointer *Pointer
	clock   *Clock
	surface Surface
	pix     []byte
	ticks   uint64
	log     *slog.Logger
}

// New validates cfg, seeds the grid and starts the clock on sched. A nil
// logger discards output.
func New(cfg Config, sched Scheduler, surface Surface, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sched == nil || surface == nil {
		return nil, fmt.Errorf("%w: scheduler and surface are required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	grid, err := NewHeatGrid(cfg.Width, cfg.Height, core.NewRNG(cfg.Seed))
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		grid:    grid,
		brush:   cfg.Brush(),
		pointer: NewPointer(cfg.Width, cfg.Height),
		surface: surface,
		pix:     make([]byte, cfg.Width*cfg.Height*4),
		log:     logger.With("component", "fire"),
	}
	e.clock = NewClock(sched, cfg.TickPeriod(), e.tick, e.render)
	e.clock.Start()
	e.log.Info("mounted", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return e, nil
}

func (e *Engine) tick() {
	if e.pointer.Drawing() {
		from, to := e.pointer.Segment()
		e.grid.Inject(e.brush, from, to)
		e.pointer.Advance()
	}
	e.grid.Propagate()
	e.ticks++
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("tick", "n", e.ticks, "drawing", e.pointer.Drawing(), "mean", e.grid.Mean())
	}
}

func (e *Engine) render() {
	MapRGBA(e.pix, e.grid)
	e.surface.Present(e.pix, e.cfg.Width, e.cfg.Height)
}

// PointerDown starts a stroke at surface coordinates (x, y).
func (e *Engine) PointerDown(x, y float32) { e.pointer.Down(x, y) }

// PointerMove extends the current stroke.
func (e *Engine) PointerMove(x, y float32) { e.pointer.Move(x, y) }

// PointerUp ends the current stroke.
func (e *Engine) PointerUp() { e.pointer.Up() }

// Step runs one tick immediately, independent of the timer.
func (e *Engine) Step() { e.clock.Tick() }

// Reset reseeds the grid with seed and redraws. The fire source keeps its
// current level.
func (e *Engine) Reset(seed int64) {
	e.cfg.Seed = seed
	e.grid.Reset(core.NewRNG(seed))
	e.ticks = 0
	e.clock.Kick()
	e.log.Info("reset", "seed", seed)
}

// SetSourceLit relights or extinguishes the bottom row.
func (e *Engine) SetSourceLit(lit bool) {
	level := 0
	if lit {
		level = MaxLevel
	}
	e.grid.SetSource(level)
	e.clock.Kick()
	e.log.Info("source", "lit", lit)
}

// SetStrokeRadius changes the brush reach for subsequent ticks. Radii are
// clamped to [1, MaxStrokeRadius].
func (e *Engine) SetStrokeRadius(r float64) {
	r = min(max(r, 1), MaxStrokeRadius)
	e.cfg.StrokeRadius = r
	e.brush = e.cfg.Brush()
}

// SourceLit reports whether the bottom row is burning.
func (e *Engine) SourceLit() bool { return e.grid.Source() > 0 }

// Destroy cancels all scheduled callbacks. The engine must not be used
// afterwards.
func (e *Engine) Destroy() {
	e.clock.Stop()
	e.log.Info("destroyed", "ticks", e.ticks)
}

// Grid exposes the heat grid for read-only inspection.
func (e *Engine) Grid() *HeatGrid { return e.grid }

// Size returns the surface dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Ticks returns the number of steps since mount or the last Reset.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Drawing reports whether a stroke is in progress.
func (e *Engine) Drawing() bool { return e.pointer.Drawing() }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Parameters describes the engine state for HUDs.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", e.cfg.Width),
				core.IntParam("h", "Height", e.cfg.Height),
				core.Int64Param("seed", "Seed", e.cfg.Seed),
				core.IntParam("tps", "Tick rate", e.cfg.TickRate),
			},
		},
		{
			Name: "Stroke",
			Params: []core.Parameter{
				core.FloatParam("radius", "Radius", e.cfg.StrokeRadius),
				core.FloatParam("falloff", "Falloff", e.cfg.Falloff),
				core.BoolParam("drawing", "Drawing", e.pointer.Drawing()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("ticks", "Ticks", int(e.ticks)),
				core.BoolParam("lit", "Source lit", e.SourceLit()),
				core.FloatParam("mean", "Mean heat", e.grid.Mean()),
			},
		},
	}}
}
