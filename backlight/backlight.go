// Package backlight maps 8-bit RGB colours onto the SerLCD backlight bands.
package backlight

import (
	"image/color"
)

// Map linearly remaps value from [inMin, inMax] to [outMin, outMax] using
// truncating integer division.
//
// Map panics if inMin == inMax.
func Map(value, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		panic("backlight: empty input range")
	}
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Band is the inclusive byte range the firmware accepts for one channel.
type Band struct {
	Min byte
	Max byte
}

// Firmware bands for each backlight channel.
var (
	Red   = Band{Min: 128, Max: 157}
	Green = Band{Min: 158, Max: 187}
	Blue  = Band{Min: 188, Max: 217}
)

// Level returns the band byte for a 0-255 channel intensity.
func (b Band) Level(v uint8) byte {
	return byte(Map(int(v), 0, 255, int(b.Min), int(b.Max)))
}

// Color is an opaque 8-bit RGB backlight colour.
type Color struct {
	R, G, B uint8
}

// RGBA converts the Color to 16-bit alpha-premultiplied RGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	// 0xFF * 0x101 = 0xFFFF
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// Levels returns the band bytes for each channel, in red, green, blue order.
func (c Color) Levels() (r, g, b byte) {
	return Red.Level(c.R), Green.Level(c.G), Blue.Level(c.B)
}

// toColor converts any color.Color to Color.
func toColor(c color.Color) color.Color {
	if bc, ok := c.(Color); ok {
		return bc
	}
	// The backlight has no alpha; a transparent colour is simply dark.
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)
