// Package serlcd controls a SparkFun SerLCD character display via I2C.
//
// See the examples for how to use this package.
package serlcd

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/flavioheleno/serlcd/backlight"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultI2CAddress is the factory bus address of the SerLCD.
const DefaultI2CAddress uint16 = 0x72

// Physical limits of the largest SerLCD. They are not enforced.
const (
	MaxRows = 4
	MaxCols = 20
)

// SettleDelay is how long the firmware needs to process a setting command
// before it accepts the next transmission.
const SettleDelay = 10 * time.Millisecond

// Framing bytes.
const (
	settingMode byte = 0x7C
	specialMode byte = 254
)

// Opts is the configuration for the SerLCD display.
type Opts struct {
	// Addr is the 7-bit bus address (default: DefaultI2CAddress).
	Addr uint16

	// Clock paces the settling delay (default: the wall clock).
	Clock clockwork.Clock
}

// Dev is the device handle for the SerLCD display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	c     conn.Conn
	addr  uint16
	clock clockwork.Clock
}

// NewI2C creates a new SerLCD device connected via I2C.
//
// opts can be nil to use defaults (address 0x72).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("serlcd: nil I2C bus")
	}
	opts = withDefaults(opts)
	if opts.Addr > 0x7F {
		return nil, fmt.Errorf("serlcd: address 0x%X is not a 7-bit address", opts.Addr)
	}
	return newDev(&i2c.Dev{Bus: b, Addr: opts.Addr}, opts), nil
}

// NewConn creates a new SerLCD device on an already configured connection,
// for example a spi.Conn.
//
// opts can be nil to use defaults.
func NewConn(c conn.Conn, opts *Opts) (*Dev, error) {
	if c == nil {
		return nil, errors.New("serlcd: nil connection")
	}
	return newDev(c, withDefaults(opts)), nil
}

func withDefaults(opts *Opts) *Opts {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultI2CAddress
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	return &o
}

func newDev(c conn.Conn, opts *Opts) *Dev {
	return &Dev{c: c, addr: opts.Addr, clock: opts.Clock}
}

// Addr returns the bus address the device was created with.
func (d *Dev) Addr() uint16 {
	return d.addr
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("serlcd.Dev{0x%02X}", d.addr)
}

// Write sends raw bytes to the display in a single transaction.
// Unframed bytes are shown as characters at the current cursor position.
func (d *Dev) Write(p []byte) (int, error) {
	if err := d.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString writes text at the current cursor position. Line and column
// limits are the caller's responsibility.
func (d *Dev) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Command sends a setting command with an optional payload and waits
// SettleDelay for the firmware to process it.
func (d *Dev) Command(op Setting, payload ...byte) error {
	if _, err := d.Write(frame(settingMode, byte(op), 1, payload)); err != nil {
		return err
	}
	d.clock.Sleep(SettleDelay)
	return nil
}

// SpecialCommand sends a special command with its opcode repeated count
// times. A count below 1 sends the opcode once.
func (d *Dev) SpecialCommand(op Special, count int) error {
	_, err := d.Write(frame(specialMode, byte(op), count, nil))
	return err
}

// frame builds mode followed by op repeated count times and the payload.
func frame(mode, op byte, count int, payload []byte) []byte {
	if count < 1 {
		count = 1
	}
	b := make([]byte, 0, 1+count+len(payload))
	b = append(b, mode)
	for i := 0; i < count; i++ {
		b = append(b, op)
	}
	return append(b, payload...)
}

// Clear clears the display and moves the cursor home.
func (d *Dev) Clear() error {
	return d.Command(ClearCommand)
}

// Home moves the cursor to the top-left cell.
func (d *Dev) Home() error {
	return d.SpecialCommand(HomeCursorCommand, 1)
}

// SetBacklightRGB sets the backlight colour, 0 being off and 255 full
// intensity for each channel.
func (d *Dev) SetBacklightRGB(red, green, blue uint8) error {
	r, g, b := backlight.Color{R: red, G: green, B: blue}.Levels()
	return d.Command(BacklightRGBCommand, r, g, b)
}

// SetBacklight sets the backlight to any colour. Alpha is ignored.
func (d *Dev) SetBacklight(c color.Color) error {
	bc := backlight.Model.Convert(c).(backlight.Color)
	return d.SetBacklightRGB(bc.R, bc.G, bc.B)
}

// SetContrast sets the character contrast. The firmware stores it in EEPROM,
// so it should be used sparingly. The factory contrast is 40.
func (d *Dev) SetContrast(contrast byte) error {
	return d.Command(ContrastCommand, contrast)
}

// SystemMessages enables or disables the firmware status messages such as
// "Contrast: 5".
func (d *Dev) SystemMessages(on bool) error {
	if on {
		return d.Command(EnableSystemMessagesCommand)
	}
	return d.Command(DisableSystemMessagesCommand)
}

// Splash enables or disables the splash screen shown at power on.
func (d *Dev) Splash(on bool) error {
	if on {
		return d.Command(EnableSplashCommand)
	}
	return d.Command(DisableSplashCommand)
}

// SaveSplash stores the current display content as the splash screen.
func (d *Dev) SaveSplash() error {
	return d.Command(SaveSplashCommand)
}

// ShowVersion displays the firmware version.
func (d *Dev) ShowVersion() error {
	return d.Command(ShowVersionCommand)
}

// Reset performs a software reset of the display.
func (d *Dev) Reset() error {
	return d.Command(ResetCommand)
}

// Control sets the display, cursor and blink state in one command.
// Flags not given are turned off.
func (d *Dev) Control(flags DisplayFlag) error {
	return d.SpecialCommand(DisplayControlCommand|Special(flags&displayFlagMask), 1)
}

// EntryMode sets the direction the cursor advances after each character.
func (d *Dev) EntryMode(dir EntryDirection) error {
	return d.SpecialCommand(EntryModeCommand|Special(dir), 1)
}

// Scroll shifts the whole display content count positions. The cursor
// follows the content.
func (d *Dev) Scroll(right bool, count int) error {
	op := CursorShiftCommand | displayMove
	if right {
		op |= moveRight
	}
	return d.SpecialCommand(op, count)
}

// Halt clears and switches off the display.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Control(DisplayOff)
}

var _ conn.Resource = &Dev{}
