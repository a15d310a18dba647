package magneto

import "github.com/cgxeiji/magneto/lis3mdl"

// An Option configures a device.
type Option func(d *Device) Option

// OnBus can be used to specify I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus.
func OnBus(name string) Option {
	return func(d *Device) Option {
		old := d.bus
		d.bus = name
		return OnBus(old)
	}
}

// WithDataRate sets the output data rate when the device is opened. By
// default, the rate is left as found.
func WithDataRate(odr lis3mdl.OutputDataRate) Option {
	return func(d *Device) Option {
		old, set := d.odr, d.setODR
		d.odr, d.setODR = odr, true
		return func(d *Device) Option {
			d.odr, d.setODR = old, set
			return WithDataRate(odr)
		}
	}
}

// WithInterruptPin enables or disables the interrupt pin when the device is
// opened. By default, the pin is left as found.
func WithInterruptPin(enable bool) Option {
	return func(d *Device) Option {
		old := d.interrupt
		d.interrupt = &enable
		return func(d *Device) Option {
			d.interrupt = old
			return WithInterruptPin(enable)
		}
	}
}

// WithHistory sets how many samples Extremes looks back over. By default,
// the last 64 samples are kept.
func WithHistory(n int) Option {
	return func(d *Device) Option {
		old := d.history
		d.history = n
		return WithHistory(old)
	}
}
