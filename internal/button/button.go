package button

import (
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// Watch configures the pin as a pulled up input and emits an Event for every
// edge, carrying the level sampled right after it. The button shorts the pin
// to ground, so a low read means pressed. Edges are reported as seen, without
// debouncing; consumers that only react to the sampled level stay correct
// under bounce.
func Watch(b gpio.PinIO) (<-chan Event, error) {
	log.Infoln("Initializing button handler")
	if err := b.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, err
	}

	c := make(chan Event, 5)
	go watch(b, c)
	return c, nil
}

func watch(b gpio.PinIO, c chan<- Event) {
	for {
		// wait for the edge
		if !b.WaitForEdge(time.Second) {
			continue
		}

		c <- Event{
			Pressed: b.Read() == gpio.Low,
		}
	}
}

// Reflect mirrors button events onto the LED: lit while the button is held,
// dark when it is released. Every event is handled on its own, so it returns
// the LED to the right state no matter what came before. Returns when the
// event channel is closed.
func Reflect(events <-chan Event, led gpio.PinOut) {
	for e := range events {
		log.Debugf("Event: %v", e)

		level := gpio.Low
		if e.Pressed {
			level = gpio.High
		}
		if err := led.Out(level); err != nil {
			log.Warnf("Unable to drive the LED: %v", err)
		}
	}
}
