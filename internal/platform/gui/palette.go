package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// background is the sky behind every cell.
var background = color.RGBA{R: 0x10, G: 0x14, B: 0x28, A: 0xff}

// palette approximates the terminal's ANSI colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:           {R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	core.ColorGreen:         {R: 0x30, G: 0xa0, B: 0x40, A: 0xff},
	core.ColorYellow:        {R: 0xc8, G: 0xa8, B: 0x20, A: 0xff},
	core.ColorBlue:          {R: 0x30, G: 0x50, B: 0xc0, A: 0xff},
	core.ColorMagenta:       {R: 0xa0, G: 0x40, B: 0xa0, A: 0xff},
	core.ColorCyan:          {R: 0x30, G: 0xa0, B: 0xb0, A: 0xff},
	core.ColorWhite:         {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
	core.ColorBrightGreen:   {R: 0x60, G: 0xe0, B: 0x60, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xe0, B: 0x40, A: 0xff},
	core.ColorBrightBlue:    {R: 0x60, G: 0x80, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x60, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x60, G: 0xe0, B: 0xf0, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x88, B: 0x20, A: 0xff},
	core.ColorGray:          {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// colorOf returns the display color for a cell color.
func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// shape says how a cell glyph is drawn.
type shape int

const (
	shapeNone  shape = iota // blank
	shapeFull               // solid block
	shapeShade              // block drawn at reduced alpha
	shapeVBar               // thin vertical bar
	shapeDot                // small centered square
	shapeFlag               // pennant in the upper half
	shapeBlob               // inset square for sprites outside ASCII
	shapeText               // glyph drawn with the font
)

// cellShape maps a screen rune to its drawing and alpha. The bitmap font
// only covers ASCII, so everything else becomes a rectangle.
func cellShape(r rune) (shape, uint8) {
	switch r {
	case ' ', 0:
		return shapeNone, 0
	case '█':
		return shapeFull, 0xff
	case '▓':
		return shapeShade, 0xc0
	case '▒':
		return shapeShade, 0x90
	case '░':
		return shapeShade, 0x50
	case '║', '│', '|':
		return shapeVBar, 0xff
	case '•', '·':
		return shapeDot, 0xff
	case '▶':
		return shapeFlag, 0xff
	}
	if r >= 0x80 {
		return shapeBlob, 0xff
	}
	return shapeText, 0xff
}
