// Package lis3mdl controls an ST LIS3MDL three-axis magnetometer over I²C.
//
// The driver only moves raw register values: it does not convert samples to
// gauss and it keeps no state between calls. Concurrent use of a Device, or
// of other devices on the same bus, must be serialized by the caller.
package lis3mdl

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// Device defines a LIS3MDL device.
type Device struct {
	dev *i2c.Dev
	bus i2c.BusCloser
}

// New opens an I²C bus and returns a LIS3MDL device on it. The device is not
// touched.
//
// Argument "busName" can be used to specify the exact bus to use ("/dev/i2c-2", "I2C2", "2").
// If "busName" argument is specified as an empty string "" the first available bus will be used.
func New(busName string) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("lis3mdl: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("lis3mdl: could not open I2C bus: %w", err)
	}

	d := NewI2C(bus)
	d.bus = bus

	return d, nil
}

// NewI2C returns a LIS3MDL device on an already opened bus. Close does not
// close b.
func NewI2C(b i2c.Bus) *Device {
	return &Device{
		dev: &i2c.Dev{
			Addr: Addr,
			Bus:  b,
		},
	}
}

// Close closes the bus if it was opened by New.
func (d *Device) Close() error {
	if d.bus == nil {
		return nil
	}
	return d.bus.Close()
}

func (d *Device) String() string {
	return fmt.Sprintf("LIS3MDL{%s}", d.dev)
}

// Read reads a single byte from a register.
func (d *Device) Read(reg byte) (byte, error) {
	b := make([]byte, 1)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}

	return b[0], nil
}

// ReadBytes read n bytes from a register.
func (d *Device) ReadBytes(reg byte, n int) ([]byte, error) {
	b := make([]byte, n)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return nil, &BusError{Op: "read", Reg: reg, Err: err}
	}

	return b, nil
}

// Write writes a byte to a register.
func (d *Device) Write(reg, data byte) error {
	n, err := d.dev.Write([]byte{reg, data})
	if err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	n-- // remove register write
	if n != 1 {
		return &BusError{
			Op:  "write",
			Reg: reg,
			Err: fmt.Errorf("wrong number of bytes written: want %d, got %d", 1, n),
		}
	}

	return nil
}

// FullScale returns the full-scale range currently set in CTRL_REG2.
func (d *Device) FullScale() (FullScale, error) {
	v, err := d.Read(RegCtrl2)
	if err != nil {
		return 0, err
	}

	return decodeFullScale(v & fsMask)
}

// SetOutputDataRate sets the output data rate in CTRL_REG1.
//
// The rate ordinal is stored shifted left by two while bits 4-7 are cleared.
// This matches the register layout the driver was written against; it does
// not line up with DO[2:0] in the current datasheet and also clears the
// operating-mode and temperature-enable bits.
func (d *Device) SetOutputDataRate(odr OutputDataRate) error {
	_, err := d.config(RegCtrl1, ^odrMask, byte(odr)<<odrShift)
	return err
}

// EnableInterruptPin sets IEN in INT_CFG.
func (d *Device) EnableInterruptPin() error {
	_, err := d.config(RegIntCfg, ^IntEnable, IntEnable)
	return err
}

// DisableInterruptPin clears IEN in INT_CFG.
func (d *Device) DisableInterruptPin() error {
	_, err := d.config(RegIntCfg, ^IntEnable, 0)
	return err
}

// ReadOutputData returns the raw X, Y and Z samples. All six output registers
// are read in a single transaction.
func (d *Device) ReadOutputData() (x, y, z int16, err error) {
	bytes, err := d.ReadBytes(RegOutXL|AutoIncrement, 6)
	if err != nil {
		return 0, 0, 0, err
	}

	x = int16(uint16(bytes[1])<<8 | uint16(bytes[0]))
	y = int16(uint16(bytes[3])<<8 | uint16(bytes[2]))
	z = int16(uint16(bytes[5])<<8 | uint16(bytes[4]))

	return x, y, z, nil
}
