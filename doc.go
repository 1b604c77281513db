// Package serlcd controls a SparkFun SerLCD character display via I2C.
//
// The SerLCD is an HD44780-style character LCD (16x2 up to 20x4) with an RGB
// backlight, driven by an on-board microcontroller. The microcontroller
// accepts plain text, which it shows at the cursor, and two kinds of framed
// commands.
//
// # Command Protocol
//
// Every operation is a single bus transaction addressed to the display
// (default 0x72):
//
//	Framing  Meaning                  Followed by
//	0x7C     setting command          1 opcode byte, optional payload
//	254      special command          1 opcode byte, repeated N times
//	(none)   character write          raw bytes
//
// Setting commands (Clear, SetContrast, SetBacklightRGB, ...) are handled by
// the firmware itself and need SettleDelay (10ms) before the next
// transmission. Every setting command blocks for that delay after a
// successful write. Special commands are HD44780 instructions passed through
// to the LCD and return as soon as the write completes.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	RAW         → 3.3V to 9V
//	SDA         → I2C Data (SDA)
//	SCL         → I2C Clock (SCL)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/serlcd"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device at the factory address
//		dev, _ := serlcd.NewI2C(bus, nil)
//		defer dev.Halt()
//
//		dev.Clear()
//		dev.SetBacklightRGB(0, 64, 255)
//		dev.WriteString("Hello, world!")
//	}
//
// # Backlight
//
// SetBacklightRGB takes 0-255 per channel. The firmware accepts each channel
// in a narrow band, so the values are remapped by the backlight package
// before they are sent:
//
//	dev.SetBacklightRGB(255, 0, 0)          // sends 0x7C 0x2B 157 158 188
//	dev.SetBacklight(color.RGBA{0, 255, 0, 255})
//
// # Display Control
//
// Display, cursor and blink are set together; flags not given are turned off:
//
//	dev.Control(serlcd.DisplayOn | serlcd.CursorOn)
//
// # Concurrency
//
// A Dev owns its connection and is not safe for concurrent use. Callers that
// share a display between goroutines must serialize access themselves.
//
// # Limits
//
// MaxRows and MaxCols describe the largest display. They are not enforced:
// text longer than a line wraps as the firmware decides.
//
// # Datasheet
//
// https://github.com/sparkfun/OpenLCD
package serlcd
