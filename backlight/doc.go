// Package backlight converts colours into the intensity levels accepted by the
// SerLCD RGB backlight.
//
// The SerLCD firmware does not take full 0-255 channel values. Each channel is
// addressed through its own narrow byte band, and the value inside the band
// selects the intensity:
//
//	Channel  Band
//	Red      128-157
//	Green    158-187
//	Blue     188-217
//
// This package provides:
//
// - Map: the truncating integer linear remap used to compress 0-255 into a band
// - Band: one channel band, with Red, Green and Blue predefined
// - Color: a color.Color holding 8-bit RGB channels
// - Model: a color model for converting standard Go colors to Color
//
// Example usage:
//
//	c := backlight.Color{R: 255, G: 128, B: 0}
//	r, g, b := c.Levels()
//	println(r, g, b) // Output: 157 172 188
//
//	// Any standard colour works through the model
//	orange := backlight.Model.Convert(color.RGBA{0xFF, 0x80, 0x00, 0xFF}).(backlight.Color)
package backlight
