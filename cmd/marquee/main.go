package main

import (
	"fmt"
	"os"
	"time"

	"github.com/callebjorkell/marquee/internal/button"
	"github.com/callebjorkell/marquee/internal/lcd"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	app      = kingpin.New("marquee", "LCD marquee with a button mirrored onto an LED")
	debug    = app.Flag("debug", "Turn on debug logging.").Bool()
	confFile = app.Flag("config", "Configuration file to read.").Default("config.yaml").String()
	start    = app.Command("start", "Run the display sequence")
	version  = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("marquee: dev")
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case start.FullCommand():
		if err := run(); err != nil {
			log.Fatal(err)
		}
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func run() error {
	conf, err := getConfig(*confFile)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("unable to initialize periph: %v", err)
	}

	bus, err := i2creg.Open(conf.I2C.Bus)
	if err != nil {
		return fmt.Errorf("unable to open I2C bus: %v", err)
	}
	defer bus.Close()

	led := gpioreg.ByName(conf.Pins.LED)
	if led == nil {
		return fmt.Errorf("no LED pin named %q", conf.Pins.LED)
	}
	if err := led.Out(gpio.Low); err != nil {
		return fmt.Errorf("unable to reset the LED: %v", err)
	}

	btn := gpioreg.ByName(conf.Pins.Button)
	if btn == nil {
		return fmt.Errorf("no button pin named %q", conf.Pins.Button)
	}

	// The reflector runs for the whole sequence, on its own goroutine. It
	// only ever touches the two pins, never the I2C bus.
	events, err := button.Watch(btn)
	if err != nil {
		return fmt.Errorf("unable to watch the button: %v", err)
	}
	go button.Reflect(events, led)

	display := lcd.New(&i2c.Dev{Bus: bus, Addr: conf.I2C.Address})
	if err := display.Init(); err != nil {
		return err
	}
	display.SetBacklight(true)

	if err := display.Scroll(lcd.Line1, conf.Display.Line1, conf.ScrollDelay(), conf.Display.ScrollCycles); err != nil {
		return err
	}
	if err := display.PrintLine(lcd.Line2, conf.Display.Line2); err != nil {
		return err
	}

	<-time.After(conf.Hold())

	display.SetBacklight(false)
	if err := display.Clear(); err != nil {
		return err
	}

	log.Info("Done...")
	return nil
}
