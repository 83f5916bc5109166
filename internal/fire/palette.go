package fire

import (
	"fmt"
	"image/color"
	"math"
)

// Palette is the fixed color ramp indexed by heat level, packed as 0xRRGGBB.
var Palette = [Levels]uint32{
	0x070707, 0x1F0707, 0x2F0F07, 0x470F07, 0x571707, 0x671F07, 0x771F07, 0x8F2707, 0x9F2F07,
	0xAF3F07, 0xBF4707, 0xC74707, 0xDF4F07, 0xDF5707, 0xDF5707, 0xD75F07, 0xD75F07, 0xD7670F,
	0xCF6F0F, 0xCF770F, 0xCF7F0F, 0xCF8717, 0xC78717, 0xC78F17, 0xC7971F, 0xBF9F1F, 0xBF9F1F,
	0xBFA727, 0xBFA727, 0xBFAF2F, 0xB7AF2F, 0xB7B72F, 0xB7B737, 0xCFCF6F, 0xDFDF9F, 0xEFEFC7,
	0xFFFFFF,
}

var rgbaTable = buildRGBATable()

func buildRGBATable() [Levels]color.NRGBA {
	var t [Levels]color.NRGBA
	for i, rgb := range Palette {
		t[i] = color.NRGBA{
			R: uint8(rgb >> 16),
			G: uint8(rgb >> 8),
			B: uint8(rgb),
			A: Alpha(uint8(i)),
		}
	}
	return t
}

// Alpha returns the opacity for a level: sqrt(level)/sqrt(MaxLevel) scaled
// to a byte and truncated.
func Alpha(level uint8) uint8 {
	return uint8(math.Sqrt(float64(level)) / math.Sqrt(MaxLevel) * 255)
}

// RGBA returns the straight-alpha color for a level. Levels above MaxLevel
// map to MaxLevel.
func RGBA(level uint8) color.NRGBA {
	return rgbaTable[min(int(level), MaxLevel)]
}

// Fill converts levels into RGBA bytes in dst. dst must hold exactly four
// bytes per level; anything else is a caller bug and panics.
func Fill(dst []byte, levels []uint8) {
	if len(dst) != len(levels)*4 {
		panic(fmt.Sprintf("fire: output buffer is %d bytes, want %d", len(dst), len(levels)*4))
	}
	for i, c := range levels {
		col := rgbaTable[min(int(c), MaxLevel)]
		base := i * 4
		dst[base+0] = col.R
		dst[base+1] = col.G
		dst[base+2] = col.B
		dst[base+3] = col.A
	}
}

// MapRGBA renders the grid into dst, which must be Width*Height*4 bytes.
func MapRGBA(dst []byte, g *HeatGrid) {
	Fill(dst, g.Snapshot())
}
