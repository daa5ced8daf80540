package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddress     = 0x27
	defaultButtonPin   = "GPIO20"
	defaultLedPin      = "GPIO16"
	defaultScrollDelay = 300 // milliseconds
	defaultCycles      = 3
	defaultHold        = 5 // seconds
)

type Config struct {
	I2C struct {
		Bus     string `yaml:"bus"`
		Address uint16 `yaml:"address"`
	} `yaml:"i2c"`
	Pins struct {
		Button string `yaml:"button"`
		LED    string `yaml:"led"`
	} `yaml:"pins"`
	Display struct {
		Line1        string `yaml:"line1"`
		Line2        string `yaml:"line2"`
		ScrollDelay  int    `yaml:"scrollDelay"`
		ScrollCycles int    `yaml:"scrollCycles"`
		Hold         int    `yaml:"hold"`
	} `yaml:"display"`
}

// ScrollDelay is the pause between marquee frames.
func (c Config) ScrollDelay() time.Duration {
	return time.Duration(c.Display.ScrollDelay) * time.Millisecond
}

// Hold is how long the final text stays up before the display is cleared.
func (c Config) Hold() time.Duration {
	return time.Duration(c.Display.Hold) * time.Second
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.I2C.Address == 0 {
		c.I2C.Address = defaultAddress
	}
	if c.I2C.Address > 0x7f {
		return nil, fmt.Errorf("0x%x is not a valid 7-bit I2C address", c.I2C.Address)
	}
	if c.Pins.Button == "" {
		c.Pins.Button = defaultButtonPin
	}
	if c.Pins.LED == "" {
		c.Pins.LED = defaultLedPin
	}
	if c.Pins.Button == c.Pins.LED {
		return nil, fmt.Errorf("button and LED cannot share pin %v", c.Pins.Button)
	}
	if c.Display.Line1 == "" && c.Display.Line2 == "" {
		return nil, fmt.Errorf("at least one display line must be given")
	}
	if c.Display.ScrollDelay <= 0 {
		c.Display.ScrollDelay = defaultScrollDelay
	}
	if c.Display.ScrollCycles <= 0 {
		c.Display.ScrollCycles = defaultCycles
	}
	if c.Display.Hold <= 0 {
		c.Display.Hold = defaultHold
	}

	return c, nil
}

func getConfig(file string) (*Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseConfig(bytes)
}
