package fire

import (
	"fmt"

	"doom-fire/internal/core"
	"doom-fire/internal/geom"
)

const (
	// Levels is the number of distinct heat levels.
	Levels = 37
	// MaxLevel is the hottest level, used for the seeded bottom row.
	MaxLevel = Levels - 1
)

// Source supplies the random offsets used by Propagate. *core.RNG and
// *rand.Rand both satisfy it.
type Source interface {
	IntN(n int) int
}

// HeatGrid owns the width*height level buffer.
type HeatGrid struct {
	cells  *core.ByteGrid
	prev   []uint8
	rng    Source
	source uint8
}

// NewHeatGrid allocates a grid with every cell cold except the bottom row,
// which is seeded at MaxLevel.
func NewHeatGrid(width, height int, rng Source) (*HeatGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if rng == nil {
		return nil, ErrNoRandomSource
	}
	g := &HeatGrid{
		cells:  core.NewByteGrid(width, height),
		prev:   make([]uint8, width*height),
		rng:    rng,
		source: MaxLevel,
	}
	g.seed()
	return g, nil
}

func (g *HeatGrid) seed() {
	g.cells.Clear()
	g.cells.FillRow(g.cells.H-1, g.source)
}

// Width returns the number of columns.
func (g *HeatGrid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *HeatGrid) Height() int { return g.cells.H }

// Size returns the grid dimensions.
func (g *HeatGrid) Size() core.Size { return g.cells.Size() }

// Snapshot returns the live level buffer in row-major order. Callers must
// not modify it or hold it across ticks.
func (g *HeatGrid) Snapshot() []uint8 { return g.cells.Cells() }

// At returns the level at (x, y), or 0 outside the grid.
func (g *HeatGrid) At(x, y int) uint8 {
	if !g.cells.InBounds(x, y) {
		return 0
	}
	return g.cells.Cells()[g.cells.Index(x, y)]
}

// Source reports the level held by the bottom row.
func (g *HeatGrid) Source() uint8 { return g.source }

// SetSource sets the bottom row to level, clamped to [0, MaxLevel]. Zero
// puts the fire out; MaxLevel relights it.
func (g *HeatGrid) SetSource(level int) {
	g.source = clampLevel(level)
	g.cells.FillRow(g.cells.H-1, g.source)
}

// Reset clears the grid and reseeds the bottom row. A non-nil rng replaces
// the current random source.
func (g *HeatGrid) Reset(rng Source) {
	if rng != nil {
		g.rng = rng
	}
	g.seed()
}

// Inject splats heat along the segment from-to using b. Existing heat is
// never reduced.
func (g *HeatGrid) Inject(b Brush, from, to geom.Vector2) {
	b.Paint(g, from, to)
}

// raise max-combines level into (x, y).
func (g *HeatGrid) raise(x, y, level int) {
	if !g.cells.InBounds(x, y) {
		return
	}
	idx := g.cells.Index(x, y)
	if v := clampLevel(level); v > g.cells.Cells()[idx] {
		g.cells.Cells()[idx] = v
	}
}

// Propagate advances the fire one step. Each non-bottom cell takes its value
// from the cell below it in the previous step, shifted sideways by a random
// offset in {-2, -1, 0, +1} and losing one level on odd offsets.
func (g *HeatGrid) Propagate() {
	w, h := g.cells.W, g.cells.H
	cells := g.cells.Cells()
	copy(g.prev, cells)

	for x := 0; x < w; x++ {
		for y := 1; y < h; y++ {
			src := g.prev[y*w+x]
			if src == 0 {
				cells[(y-1)*w+x] = 0
				continue
			}
			r := g.rng.IntN(4)
			dst := x - r + 1
			if dst < 0 || dst >= w {
				continue
			}
			cells[(y-1)*w+dst] = src - uint8(r&1)
		}
	}
}

// Mean returns the average level over the whole grid.
func (g *HeatGrid) Mean() float64 {
	cells := g.cells.Cells()
	var sum int
	for _, c := range cells {
		sum += int(c)
	}
	return float64(sum) / float64(len(cells))
}

func clampLevel(level int) uint8 {
	return uint8(min(max(level, 0), MaxLevel))
}
