//go:build ebiten

package ui

import (
	"image/color"

	"doom-fire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the engine parameters in a translucent panel over the fire.
type HUD struct {
	src     parameterProvider
	visible bool
	lines   []string
	status  string
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider, visible bool) *HUD {
	h := &HUD{src: src, visible: visible}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached text. status is shown as the last line.
func (h *HUD) Update(status string) {
	if h == nil || !h.visible {
		return
	}
	h.lines = Lines(h.src.Parameters())
	h.status = status
}

// Draw renders the panel onto the provided screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	rows := len(h.lines)
	if h.status != "" {
		rows++
	}
	width := 0
	for _, l := range h.lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	width = max(width, text.BoundString(face, h.status).Dx())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(rows*lineHeight+2*panelPadding))
	op.ColorScale.Scale(0, 0, 0, 0.6)
	screen.DrawImage(h.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	y := panelPadding + lineHeight - 3
	for _, l := range h.lines {
		text.Draw(screen, l, face, panelPadding, y, fg)
		y += lineHeight
	}
	if h.status != "" {
		text.Draw(screen, h.status, face, panelPadding, y, color.RGBA{R: 255, G: 200, B: 80, A: 255})
	}
}

const (
	panelPadding = 8
	lineHeight   = 15
)
