package pump

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/robotalks/pump.go/pkg/device/display"
	"github.com/robotalks/pump.go/pkg/device/eeprom"
	"github.com/robotalks/pump.go/pkg/device/stepper"
	fx "github.com/robotalks/pump.go/pkg/framework"
	"github.com/robotalks/pump.go/pkg/l1"
)

// Config defines the configurations for the pump controller.
type Config struct {
	// StepsPerRev is the stepper resolution, fixed per pump head.
	StepsPerRev uint
	// EEPROMPath is the settings file, in-memory when empty.
	EEPROMPath string
}

var defaultConfig = Config{
	StepsPerRev: uint(DefaultStepsPerRev),
}

func init() {
	if val := os.Getenv("PUMP_EEPROM"); val != "" {
		defaultConfig.EEPROMPath = val
	}
	if val := os.Getenv("PUMP_STEPS_PER_REV"); val != "" {
		if n, err := strconv.ParseUint(val, 10, 32); err == nil {
			defaultConfig.StepsPerRev = uint(n)
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.UintVar(&defaultConfig.StepsPerRev, "steps-per-rev", defaultConfig.StepsPerRev, "Stepper steps per revolution.")
	flag.StringVar(&defaultConfig.EEPROMPath, "eeprom", defaultConfig.EEPROMPath, "Settings file, in-memory when empty.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Unit is the pump controller with its simulated devices, wired up
// from a Config.
type Unit struct {
	Controller *Controller
	Display    *display.Buffer
	Motor      *stepper.Sim

	closer interface{ Close() error }
}

// NewUnit builds the controller over simulated devices and boots it.
func (c *Config) NewUnit(reg l1.Registrar) (*Unit, error) {
	u := &Unit{
		Display: display.NewBuffer(),
		Motor:   stepper.NewSim(uint32(c.StepsPerRev)),
	}
	var dev eeprom.Device = eeprom.NewMem()
	if c.EEPROMPath != "" {
		f, err := eeprom.OpenFile(c.EEPROMPath)
		if err != nil {
			return nil, err
		}
		dev, u.closer = f, f
	}
	u.Controller = NewController(u.Display, u.Motor, dev)
	u.Controller.Registrar = reg
	if err := u.Controller.Boot(); err != nil {
		u.Close()
		return nil, err
	}
	return u, nil
}

// MustNewUnit builds the unit and fails on error.
func (c *Config) MustNewUnit(reg l1.Registrar) *Unit {
	u, err := c.NewUnit(reg)
	if err != nil {
		log.Fatalln(err)
	}
	return u
}

// AddToLoop implements LoopAdder.
func (u *Unit) AddToLoop(l *fx.Loop) {
	u.Controller.AddToLoop(l)
	l.Add(&DisplayCaster{Buf: u.Display, Registrar: u.Controller.Registrar})
}

// Close releases the settings file if one is open.
func (u *Unit) Close() error {
	if u.closer != nil {
		return u.closer.Close()
	}
	return nil
}
