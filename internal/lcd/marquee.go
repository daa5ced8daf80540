package lcd

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Scroll runs a marquee of msg across the given line: a window of one line
// width slides over the message followed by a full width of spaces, so the
// text scrolls all the way off before it comes back around. Indexing wraps
// around the backing buffer instead of re-slicing it per frame.
//
// The call blocks until all cycles have rendered; there is no way to
// interrupt a running scroll.
func (l *LCD) Scroll(line Line, msg string, delay time.Duration, cycles int) error {
	if len(msg) < lineWidth {
		msg = fmt.Sprintf("%-16s", msg)
	}

	buf := msg + strings.Repeat(" ", lineWidth)
	length := len(msg) + lineWidth

	log.Debugf("Scrolling %q on %v, %d frames", msg, line, cycles*length)

	window := make([]byte, lineWidth)
	for c := 0; c < cycles; c++ {
		for pos := 0; pos < length; pos++ {
			for i := range window {
				window[i] = buf[(pos+i)%len(buf)]
			}
			if err := l.PrintLine(line, string(window)); err != nil {
				return err
			}
			time.Sleep(delay)
		}
	}
	return nil
}
