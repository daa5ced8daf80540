package button

import "fmt"

// Event is a single sampled state change of the button.
type Event struct {
	Pressed bool
}

func (e Event) String() string {
	action := "pressed"
	if !e.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}
