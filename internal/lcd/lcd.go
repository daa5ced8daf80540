package lcd

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// LCD drives a 16x2 HD44780 compatible display sitting behind a PCF8574 I2C
// backpack, in 4-bit mode. The writer is the expander device; a periph
// i2c.Dev fits directly.
type LCD struct {
	bus       io.Writer
	backlight bool

	// Latch timing. The defaults are a conservative margin over what the
	// controller needs, not a measured minimum. Tests zero them out.
	settle time.Duration
	pulse  time.Duration
}

func New(bus io.Writer) *LCD {
	return &LCD{
		bus:    bus,
		settle: signalDelay,
		pulse:  signalPulse,
	}
}

// Init runs the documented reset procedure for 4-bit operation. The reset
// command repeats the mode nibble so the controller ends up in a known state
// no matter which mode it starts in; skipping it can leave the bus stuck in
// 8-bit mode.
func (l *LCD) Init() error {
	log.Infoln("Initializing LCD")
	seq := []byte{cmdReset, cmdFourBit, cmdEntryMode, cmdDisplay, cmdFunction, cmdClear}
	for _, cmd := range seq {
		if err := l.sendByte(cmd, command); err != nil {
			return fmt.Errorf("unable to initialize LCD: %v", err)
		}
	}
	time.Sleep(l.settle)
	return nil
}

// PrintLine writes msg at the start of the given line. The message is padded
// or truncated to the full line width, so older content never shows through.
func (l *LCD) PrintLine(line Line, msg string) error {
	if err := l.sendByte(byte(line), command); err != nil {
		return fmt.Errorf("unable to select line %v: %v", line, err)
	}
	m := fmt.Sprintf("%-16s", msg)
	for i := 0; i < lineWidth; i++ {
		if err := l.sendByte(m[i], character); err != nil {
			return fmt.Errorf("unable to write to line %v: %v", line, err)
		}
	}
	return nil
}

// SetBacklight flips the backlight flag. The bit rides along on every
// subsequent transfer; nothing is written to the bus until one happens.
func (l *LCD) SetBacklight(on bool) {
	l.backlight = on
}

// Clear blanks the whole display and homes the cursor.
func (l *LCD) Clear() error {
	if err := l.sendByte(cmdClear, command); err != nil {
		return fmt.Errorf("unable to clear display: %v", err)
	}
	return nil
}

// sendByte transfers one byte as two nibbles, upper first. The controller
// requires the upper-then-lower order in 4-bit mode.
func (l *LCD) sendByte(bits, mode byte) error {
	var bl byte
	if l.backlight {
		bl = backlight
	}

	high := mode | (bits & 0xF0) | bl
	low := mode | (bits<<4)&0xF0 | bl

	if err := l.latch(high); err != nil {
		return err
	}
	return l.latch(low)
}

// latch writes a nibble byte and pulses the enable bit. The controller
// samples the data pins on the falling edge of enable.
func (l *LCD) latch(bits byte) error {
	if err := l.write(bits); err != nil {
		return err
	}
	time.Sleep(l.settle)
	if err := l.write(bits | enable); err != nil {
		return err
	}
	time.Sleep(l.pulse)
	if err := l.write(bits &^ enable); err != nil {
		return err
	}
	time.Sleep(l.settle)
	return nil
}

func (l *LCD) write(b byte) error {
	_, err := l.bus.Write([]byte{b})
	return err
}
