package main

import (
	"flag"
	"math"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cgxeiji/magneto"
	"github.com/cgxeiji/magneto/lis3mdl/lis3mdltest"
)

func main() {
	var (
		cfgFile   = flag.String("config", "", "YAML configuration file")
		bus       = flag.String("bus", "", "I²C bus name (\"/dev/i2c-1\", \"I2C1\", \"1\")")
		rate      = flag.String("rate", "", "output data rate, e.g. 10Hz")
		interrupt = flag.Bool("interrupt", false, "enable (true) or disable (false) the interrupt pin")
		interval  = flag.Duration("interval", 0, "time between samples")
		history   = flag.Int("history", 0, "samples kept for the min/max range")
		level     = flag.String("log-level", "", "log level")
		simulate  = flag.Bool("simulate", false, "use a simulated device")
		count     = flag.Int("n", 0, "stop after n samples (0 runs until interrupted)")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *cfgFile != "" {
		if err := readConfigFile(*cfgFile, cfg); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			cfg.Bus = *bus
		case "rate":
			cfg.Rate = *rate
		case "interrupt":
			cfg.Interrupt = interrupt
		case "interval":
			cfg.Interval = *interval
		case "history":
			cfg.History = *history
		case "log-level":
			cfg.LogLevel = *level
		case "simulate":
			cfg.Simulate = *simulate
		}
	})

	lvl, err := cfg.logLevel()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(lvl)

	opts, err := cfg.options()
	if err != nil {
		log.Fatal(err)
	}

	var sim *lis3mdltest.Sim
	var sensor *magneto.Device
	if cfg.Simulate {
		sim = lis3mdltest.NewSim()
		sensor, err = magneto.NewI2C(sim, opts...)
	} else {
		sensor, err = magneto.New(opts...)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer sensor.Close()

	fs, err := sensor.FullScale()
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"bus":      cfg.Bus,
		"scale":    fs,
		"rate":     cfg.Rate,
		"interval": cfg.interval(),
		"simulate": cfg.Simulate,
	}).Info("LIS3MDL ready")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	t := time.NewTicker(cfg.interval())
	defer t.Stop()

	for i := 0; *count == 0 || i < *count; i++ {
		if sim != nil {
			a := float64(i) * math.Pi / 32
			sim.SetSample(int16(2000*math.Cos(a)), int16(2000*math.Sin(a)), -1200)
		}

		s, err := sensor.Read()
		if err != nil {
			log.WithError(err).Error("read failed")
		} else {
			min, max := sensor.Extremes()
			log.WithFields(log.Fields{
				"x":   s.X,
				"y":   s.Y,
				"z":   s.Z,
				"min": min,
				"max": max,
			}).Info("sample")
		}

		select {
		case <-t.C:
		case <-stop:
			log.Info("interrupted")
			return
		}
	}
}
