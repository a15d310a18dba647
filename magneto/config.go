package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cgxeiji/magneto"
	"github.com/cgxeiji/magneto/lis3mdl"
)

// config holds the settings of a run. Zero values leave the device as found.
type config struct {
	// I²C bus name; empty selects the first bus.
	Bus string
	// Output data rate, e.g. "10Hz". Empty leaves CTRL_REG1 untouched.
	Rate string
	// Interrupt pin state. Unset leaves INT_CFG untouched.
	Interrupt *bool
	// Time between samples. Defaults to the output data rate period, or 1s.
	Interval time.Duration
	// Number of samples the min/max range is computed over.
	History  int
	LogLevel string `yaml:"logLevel"`
	// Use a simulated device instead of the bus.
	Simulate bool
}

func defaultConfig() *config {
	return &config{
		History:  64,
		LogLevel: "info",
	}
}

func readConfigFile(filename string, c *config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	return nil
}

// options validates c and returns the device options it describes.
func (c *config) options() ([]magneto.Option, error) {
	if c.History <= 0 {
		return nil, errors.New("history must be positive")
	}
	if c.Interval < 0 {
		return nil, errors.New("interval must not be negative")
	}

	opts := []magneto.Option{
		magneto.OnBus(c.Bus),
		magneto.WithHistory(c.History),
	}
	if c.Rate != "" {
		odr, err := lis3mdl.ParseOutputDataRate(c.Rate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, magneto.WithDataRate(odr))
	}
	if c.Interrupt != nil {
		opts = append(opts, magneto.WithInterruptPin(*c.Interrupt))
	}
	return opts, nil
}

// interval returns the polling interval.
func (c *config) interval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	if c.Rate != "" {
		if odr, err := lis3mdl.ParseOutputDataRate(c.Rate); err == nil {
			if f := odr.Frequency(); f > 0 {
				return f.Period()
			}
		}
	}
	return time.Second
}

func (c *config) logLevel() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
