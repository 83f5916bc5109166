package render

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"doom-fire/internal/fire"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when encoding a recording with no frames.
var ErrNoFrames = errors.New("render: no frames recorded")

// Background is the color frames are composited over.
var Background = color.RGBA{A: 255}

// Recorder is a fire.Surface that keeps every presented frame for GIF export.
type Recorder struct {
	scale   int
	delay   int
	palette color.Palette
	frame   *image.RGBA
	frames  []*image.Paletted
}

// NewRecorder returns a recorder that upscales frames by scale and plays
// them back at tickRate frames per second.
func NewRecorder(scale, tickRate int) *Recorder {
	if scale <= 0 {
		scale = 1
	}
	delay := 3
	if tickRate > 0 {
		delay = max(100/tickRate, 2)
	}
	return &Recorder{scale: scale, delay: delay, palette: firePalette()}
}

// firePalette holds the background plus every level composited over it, so
// composited frames convert to palette indices without error.
func firePalette() color.Palette {
	p := make(color.Palette, 0, fire.Levels+1)
	p = append(p, Background)
	for l := 0; l < fire.Levels; l++ {
		p = append(p, Over(fire.RGBA(uint8(l)), Background))
	}
	return p
}

// Present records one frame.
func (r *Recorder) Present(pix []byte, width, height int) {
	if r.frame == nil || r.frame.Rect.Dx() != width || r.frame.Rect.Dy() != height {
		r.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	Composite(r.frame, pix, Background)

	dst := image.NewPaletted(image.Rect(0, 0, width*r.scale, height*r.scale), r.palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), r.frame, r.frame.Bounds(), xdraw.Src, nil)
	r.frames = append(r.frames, dst)
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() int { return len(r.frames) }

// Frame returns the i-th recorded frame.
func (r *Recorder) Frame(i int) *image.Paletted { return r.frames[i] }

// Encode writes the recording as a looping animated GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	delays := make([]int, len(r.frames))
	for i := range delays {
		delays[i] = r.delay
	}
	return gif.EncodeAll(w, &gif.GIF{Image: r.frames, Delay: delays, LoopCount: 0})
}
