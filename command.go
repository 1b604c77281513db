package serlcd

import "fmt"

// Setting is the opcode of a setting command, sent after the 0x7C framing
// byte. Setting commands need SettleDelay before the next transmission.
type Setting byte

const (
	ClearCommand                 Setting = 0x2D
	ContrastCommand              Setting = 0x18
	AddressCommand               Setting = 0x19
	BacklightRGBCommand          Setting = 0x2B
	EnableSystemMessagesCommand  Setting = 0x2E
	DisableSystemMessagesCommand Setting = 0x2F
	EnableSplashCommand          Setting = 0x30
	DisableSplashCommand         Setting = 0x31
	SaveSplashCommand            Setting = 0x0A
	ShowVersionCommand           Setting = 0x2C
	ResetCommand                 Setting = 0x08
)

var settingNames = map[Setting]string{
	ClearCommand:                 "Clear",
	ContrastCommand:              "Contrast",
	AddressCommand:               "Address",
	BacklightRGBCommand:          "BacklightRGB",
	EnableSystemMessagesCommand:  "EnableSystemMessages",
	DisableSystemMessagesCommand: "DisableSystemMessages",
	EnableSplashCommand:          "EnableSplash",
	DisableSplashCommand:         "DisableSplash",
	SaveSplashCommand:            "SaveSplash",
	ShowVersionCommand:           "ShowVersion",
	ResetCommand:                 "Reset",
}

func (s Setting) String() string {
	if n, ok := settingNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Setting(0x%02X)", byte(s))
}

// Special is the opcode of a special command, sent after the 254 framing
// byte. These are the HD44780 instructions passed through by the firmware.
type Special byte

const (
	HomeCursorCommand     Special = 0x02
	EntryModeCommand      Special = 0x04
	DisplayControlCommand Special = 0x08
	CursorShiftCommand    Special = 0x10
)

// CursorShiftCommand modifiers.
const (
	displayMove Special = 0x08
	moveRight   Special = 0x04
)

var specialNames = map[Special]string{
	HomeCursorCommand:     "HomeCursor",
	EntryModeCommand:      "EntryMode",
	DisplayControlCommand: "DisplayControl",
	CursorShiftCommand:    "CursorShift",
}

func (s Special) String() string {
	if n, ok := specialNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Special(0x%02X)", byte(s))
}

// DisplayFlag is a DisplayControlCommand bit. Flags are combined with |.
type DisplayFlag byte

const (
	DisplayOff DisplayFlag = 0x00
	BlinkOn    DisplayFlag = 0x01
	CursorOn   DisplayFlag = 0x02
	DisplayOn  DisplayFlag = 0x04

	displayFlagMask = DisplayOn | CursorOn | BlinkOn
)

// EntryDirection is the cursor direction set by EntryModeCommand.
type EntryDirection byte

const (
	EntryRight EntryDirection = 0x00
	EntryLeft  EntryDirection = 0x02
)
