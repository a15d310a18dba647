package lis3mdl

// Option defines a functional option for the device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns an Option that
// restores the previous value of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// config keeps the bits of reg selected by mask, sets flag and writes the
// result back. It returns the value read before the write. Nothing is
// written when the read fails.
func (d *Device) config(reg, mask, flag byte) (byte, error) {
	prev, err := d.Read(reg)
	if err != nil {
		return 0, err
	}
	cfg := prev&mask | flag
	if err := d.Write(reg, cfg); err != nil {
		return 0, err
	}

	return prev, nil
}

// restore writes back the bits of prev selected by field, leaving the rest
// of reg as it is.
func restore(reg, field, prev byte) Option {
	return func(d *Device) (Option, error) {
		cur, err := d.config(reg, ^field, prev&field)
		if err != nil {
			return nil, err
		}

		return restore(reg, field, cur), nil
	}
}

// DataRate sets the output data rate of the device.
func DataRate(odr OutputDataRate) Option {
	return func(d *Device) (Option, error) {
		flag := byte(odr) << odrShift
		prev, err := d.config(RegCtrl1, ^odrMask, flag)
		if err != nil {
			return nil, err
		}

		// The rate may set bits below odrMask, so those are restored too.
		return restore(RegCtrl1, odrMask|flag, prev), nil
	}
}

// InterruptPin enables or disables the interrupt pin.
func InterruptPin(enable bool) Option {
	return func(d *Device) (Option, error) {
		var flag byte
		if enable {
			flag = IntEnable
		}
		prev, err := d.config(RegIntCfg, ^IntEnable, flag)
		if err != nil {
			return nil, err
		}

		return restore(RegIntCfg, IntEnable, prev), nil
	}
}
