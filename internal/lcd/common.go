package lcd

import (
	"time"
)

// Line is one of the two cursor home addresses of the display. The controller
// has no other lines, so only the two constants below are valid.
type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth = 16

	command   byte = 0x00
	character byte = 0x01

	// HD44780 command set for 4-bit operation.
	cmdReset     byte = 0x33
	cmdFourBit   byte = 0x32
	cmdEntryMode byte = 0x06
	cmdDisplay   byte = 0x0C
	cmdFunction  byte = 0x28
	cmdClear     byte = 0x01

	// Control bits of the PCF8574 backpack. The low nibble of every bus byte
	// carries register select, enable and backlight; the high nibble carries
	// the data.
	enable    byte = 0x04
	backlight byte = 0x08

	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)
