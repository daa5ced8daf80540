package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := `
i2c:
  bus: "1"
  address: 0x27
pins:
  button: GPIO20
  led: GPIO16
display:
  line1: "Hello, world!"
  line2: "Go on a Pi!"
  scrollDelay: 250
  scrollCycles: 2
  hold: 10
`
	c, err := parseConfig([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "1", c.I2C.Bus)
	assert.Equal(t, uint16(0x27), c.I2C.Address)
	assert.Equal(t, "GPIO20", c.Pins.Button)
	assert.Equal(t, "GPIO16", c.Pins.LED)
	assert.Equal(t, "Hello, world!", c.Display.Line1)
	assert.Equal(t, "Go on a Pi!", c.Display.Line2)
	assert.Equal(t, 250*time.Millisecond, c.ScrollDelay())
	assert.Equal(t, 2, c.Display.ScrollCycles)
	assert.Equal(t, 10*time.Second, c.Hold())
}

func TestParseConfigDefaults(t *testing.T) {
	content := `
display:
  line1: "Hello, world!"
`
	c, err := parseConfig([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, uint16(defaultAddress), c.I2C.Address)
	assert.Equal(t, defaultButtonPin, c.Pins.Button)
	assert.Equal(t, defaultLedPin, c.Pins.LED)
	assert.Equal(t, 300*time.Millisecond, c.ScrollDelay())
	assert.Equal(t, defaultCycles, c.Display.ScrollCycles)
	assert.Equal(t, 5*time.Second, c.Hold())
}

func TestParseConfigErrors(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{
			"address wider than 7 bits",
			`
i2c:
  address: 0x99
display:
  line1: "hi"
`,
		},
		{
			"no display content",
			`
i2c:
  address: 0x27
`,
		},
		{
			"button and LED share a pin",
			`
pins:
  button: GPIO16
  led: GPIO16
display:
  line1: "hi"
`,
		},
		{
			"broken yaml",
			`i2c: [`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}
