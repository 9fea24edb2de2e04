package interp

import (
	"image/color"
	"strings"
)

// Black is the default drawing color and the fallback for unknown names.
var Black = color.RGBA{A: 0xFF}

// colorTable maps the recognized color names to their RGB values. It is
// initialized once and never written afterwards.
var colorTable = map[string]color.RGBA{
	"red":     {R: 0xFF, A: 0xFF},
	"green":   {G: 0xFF, A: 0xFF},
	"blue":    {B: 0xFF, A: 0xFF},
	"yellow":  {R: 0xFF, G: 0xFF, A: 0xFF},
	"orange":  {R: 0xFF, G: 0xA5, A: 0xFF},
	"purple":  {R: 0x80, B: 0x80, A: 0xFF},
	"pink":    {R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF},
	"black":   {A: 0xFF},
	"white":   {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	"grey":    {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	"brown":   {R: 0xA5, G: 0x2A, B: 0x2A, A: 0xFF},
	"cyan":    {G: 0xFF, B: 0xFF, A: 0xFF},
	"magenta": {R: 0xFF, B: 0xFF, A: 0xFF},
}

// LookupColor resolves a color name case-insensitively. Unrecognized
// names resolve to black rather than failing.
func LookupColor(name string) color.RGBA {
	if c, ok := colorTable[strings.ToLower(name)]; ok {
		return c
	}
	return Black
}
