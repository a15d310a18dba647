package lis3mdl

import (
	"fmt"
	"strings"

	"periph.io/x/periph/conn/physic"
)

// Register addresses
const (
	RegCtrl1  = 0x20
	RegCtrl2  = 0x21
	RegOutXL  = 0x28
	RegIntCfg = 0x30
)

// Device constants
const (
	Addr = 0x1E

	// AutoIncrement is set in the register address of a multi-byte read so
	// the device advances through consecutive registers.
	AutoIncrement byte = 0x80
)

// Settings
const (
	IntEnable byte = 0b0000_0001

	fsMask  byte = 0b0110_0000
	odrMask byte = 0b1111_0000

	odrShift = 2
)

// FullScale is the measurement range configured in CTRL_REG2.
type FullScale uint8

// Full-scale selection
const (
	FS4Gauss FullScale = iota
	FS8Gauss
	FS12Gauss
	FS16Gauss
)

// Gauss returns the magnitude of the range in gauss.
func (fs FullScale) Gauss() int {
	switch fs {
	case FS4Gauss:
		return 4
	case FS8Gauss:
		return 8
	case FS12Gauss:
		return 12
	case FS16Gauss:
		return 16
	}
	return 0
}

func (fs FullScale) String() string {
	if g := fs.Gauss(); g != 0 {
		return fmt.Sprintf("±%dG", g)
	}
	return fmt.Sprintf("FullScale(%d)", uint8(fs))
}

// decodeFullScale maps the masked CTRL_REG2 bits to a FullScale.
func decodeFullScale(bits byte) (FullScale, error) {
	switch bits {
	case 0x00:
		return FS4Gauss, nil
	case 0x20:
		return FS8Gauss, nil
	case 0x40:
		return FS12Gauss, nil
	case 0x60:
		return FS16Gauss, nil
	}
	return 0, fmt.Errorf("%w: full scale bits %#02x", ErrDecode, bits)
}

// OutputDataRate selects how often the device produces a new sample.
type OutputDataRate uint8

// Output data rate control
const (
	ODR0_625Hz OutputDataRate = iota
	ODR1_25Hz
	ODR2_5Hz
	ODR5Hz
	ODR10Hz
	ODR20Hz
	ODR40Hz
	ODR80Hz
)

var odrNames = [...]string{
	ODR0_625Hz: "0.625Hz",
	ODR1_25Hz:  "1.25Hz",
	ODR2_5Hz:   "2.5Hz",
	ODR5Hz:     "5Hz",
	ODR10Hz:    "10Hz",
	ODR20Hz:    "20Hz",
	ODR40Hz:    "40Hz",
	ODR80Hz:    "80Hz",
}

var odrFreqs = [...]physic.Frequency{
	ODR0_625Hz: 625 * physic.MilliHertz,
	ODR1_25Hz:  1250 * physic.MilliHertz,
	ODR2_5Hz:   2500 * physic.MilliHertz,
	ODR5Hz:     5 * physic.Hertz,
	ODR10Hz:    10 * physic.Hertz,
	ODR20Hz:    20 * physic.Hertz,
	ODR40Hz:    40 * physic.Hertz,
	ODR80Hz:    80 * physic.Hertz,
}

func (odr OutputDataRate) String() string {
	if int(odr) < len(odrNames) {
		return odrNames[odr]
	}
	return fmt.Sprintf("OutputDataRate(%d)", uint8(odr))
}

// Frequency returns the nominal sample frequency, or 0 for an unknown rate.
func (odr OutputDataRate) Frequency() physic.Frequency {
	if int(odr) < len(odrFreqs) {
		return odrFreqs[odr]
	}
	return 0
}

// ParseOutputDataRate parses a rate such as "10Hz", "0.625hz" or "80".
func ParseOutputDataRate(s string) (OutputDataRate, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "hz")
	for i, name := range odrNames {
		if v == strings.TrimSuffix(strings.ToLower(name), "hz") {
			return OutputDataRate(i), nil
		}
	}
	return 0, fmt.Errorf("lis3mdl: unknown output data rate %q", s)
}
