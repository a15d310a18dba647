package magneto

import (
	"errors"
	"fmt"

	"periph.io/x/periph/conn/i2c"

	"github.com/cgxeiji/magneto/lis3mdl"
)

var (
	// ErrWrongDevice is thrown when trying to convert a magneto.Device to the
	// underlying *lis3mdl.Device and the sensor is something else.
	ErrWrongDevice = errors.New("wrong device")
)

// Device defines a magnetometer. All bus access goes through a single token,
// so a Device can be shared between goroutines.
type Device struct {
	sensor sensor
	x      tSeries
	y      tSeries
	z      tSeries
	readCh chan struct{}

	bus       string
	odr       lis3mdl.OutputDataRate
	setODR    bool
	interrupt *bool
	history   int
}

// Sample holds one raw reading of the three axes, in device counts.
type Sample struct {
	X, Y, Z int16
}

type sensor interface {
	FullScale() (lis3mdl.FullScale, error)
	SetOutputDataRate(odr lis3mdl.OutputDataRate) error
	EnableInterruptPin() error
	DisableInterruptPin() error
	ReadOutputData() (x, y, z int16, err error)

	Close() error
}

const defaultHistory = 64

// New returns a new magnetometer on the first available I²C bus, or on the
// bus selected with OnBus.
func New(options ...Option) (*Device, error) {
	d := &Device{history: defaultHistory}
	for _, opt := range options {
		opt(d)
	}

	s, err := lis3mdl.New(d.bus)
	if err != nil {
		return nil, err
	}

	if err := d.init(s); err != nil {
		s.Close()
		return nil, err
	}

	return d, nil
}

// NewI2C returns a new magnetometer on an already opened bus. OnBus is
// ignored and Close does not close b.
func NewI2C(b i2c.Bus, options ...Option) (*Device, error) {
	d := &Device{history: defaultHistory}
	for _, opt := range options {
		opt(d)
	}

	if err := d.init(lis3mdl.NewI2C(b)); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) init(s sensor) error {
	d.sensor = s
	if d.history <= 0 {
		d.history = defaultHistory
	}
	d.x.init(d.history)
	d.y.init(d.history)
	d.z.init(d.history)
	d.readCh = make(chan struct{}, 1)
	d.readCh <- struct{}{}

	if d.setODR {
		if err := d.SetOutputDataRate(d.odr); err != nil {
			return err
		}
	}
	if d.interrupt != nil {
		var err error
		if *d.interrupt {
			err = d.EnableInterruptPin()
		} else {
			err = d.DisableInterruptPin()
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Close closes the devices and cleans after itself.
func (d *Device) Close() {
	<-d.readCh
	d.sensor.Close()
	d.readCh <- struct{}{}
}

// FullScale returns the configured full-scale range.
func (d *Device) FullScale() (lis3mdl.FullScale, error) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	fs, err := d.sensor.FullScale()
	if err != nil {
		return 0, fmt.Errorf("magneto: could not get full scale: %w", err)
	}
	return fs, nil
}

// SetOutputDataRate sets the output data rate.
func (d *Device) SetOutputDataRate(odr lis3mdl.OutputDataRate) error {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	if err := d.sensor.SetOutputDataRate(odr); err != nil {
		return fmt.Errorf("magneto: could not set output data rate to %v: %w", odr, err)
	}
	return nil
}

// EnableInterruptPin enables the interrupt pin.
func (d *Device) EnableInterruptPin() error {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	if err := d.sensor.EnableInterruptPin(); err != nil {
		return fmt.Errorf("magneto: could not enable interrupt pin: %w", err)
	}
	return nil
}

// DisableInterruptPin disables the interrupt pin.
func (d *Device) DisableInterruptPin() error {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	if err := d.sensor.DisableInterruptPin(); err != nil {
		return fmt.Errorf("magneto: could not disable interrupt pin: %w", err)
	}
	return nil
}

// Read returns the current raw sample and adds it to the history.
func (d *Device) Read() (Sample, error) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	x, y, z, err := d.sensor.ReadOutputData()
	if err != nil {
		return Sample{}, fmt.Errorf("magneto: could not read output data: %w", err)
	}
	d.x.add(x)
	d.y.add(y)
	d.z.add(z)

	return Sample{X: x, Y: y, Z: z}, nil
}

// Last returns the most recent sample returned by Read, or a zero Sample if
// nothing was read yet.
func (d *Device) Last() Sample {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	if d.x.n == 0 {
		return Sample{}
	}
	return Sample{X: d.x.last(), Y: d.y.last(), Z: d.z.last()}
}

// Extremes returns the smallest and largest raw value of each axis over the
// last samples kept in the history. Both are zero until something is read.
func (d *Device) Extremes() (min, max Sample) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	min = Sample{X: d.x.min, Y: d.y.min, Z: d.z.min}
	max = Sample{X: d.x.max, Y: d.y.max, Z: d.z.max}
	return min, max
}

// ToLIS3MDL converts a magneto device to a lis3mdl device to access low
// level functions. Check the package magneto/lis3mdl for detailed behavior.
func (d *Device) ToLIS3MDL() (*lis3mdl.Device, error) {
	device, ok := d.sensor.(*lis3mdl.Device)
	if !ok {
		return nil, ErrWrongDevice
	}

	return device, nil
}
