// Package lis3mdltest provides a simulated LIS3MDL register file that
// implements i2c.Bus, for tests and dry runs without hardware.
package lis3mdltest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/physic"

	"github.com/cgxeiji/magneto/lis3mdl"
)

// Sim implements i2c.Bus and answers register reads and writes addressed to
// lis3mdl.Addr from Regs.
//
// A read with lis3mdl.AutoIncrement set in the register address walks
// consecutive registers; without it every byte comes from the same register.
type Sim struct {
	mu   sync.Mutex
	Regs [128]byte

	// ReadErr and WriteErr, when set, fail every read or write transaction.
	ReadErr  error
	WriteErr error

	// Reads and Writes count the transactions that reached the register file
	// or failed with ReadErr/WriteErr.
	Reads  int
	Writes int

	closed bool
}

var _ i2c.BusCloser = &Sim{}

// NewSim returns a Sim with the LIS3MDL power-on register values.
func NewSim() *Sim {
	s := &Sim{}
	s.Regs[lis3mdl.RegCtrl1] = 0x10
	s.Regs[lis3mdl.RegCtrl2] = 0x00
	s.Regs[lis3mdl.RegIntCfg] = 0xE8
	return s
}

// SetSample stores x, y and z in the output registers, low byte first.
func (s *Sim) SetSample(x, y, z int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range []int16{x, y, z} {
		s.Regs[lis3mdl.RegOutXL+2*i] = byte(uint16(v))
		s.Regs[lis3mdl.RegOutXL+2*i+1] = byte(uint16(v) >> 8)
	}
}

// Reg returns the current value of a register.
func (s *Sim) Reg(reg byte) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Regs[reg&0x7F]
}

func (s *Sim) String() string { return "lis3mdl-sim" }

// Close implements i2c.BusCloser.
func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Sim) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// SetSpeed implements i2c.Bus.
func (s *Sim) SetSpeed(f physic.Frequency) error { return nil }

// Tx implements i2c.Bus.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr != lis3mdl.Addr {
		return fmt.Errorf("lis3mdltest: no device at %#x", addr)
	}
	if len(w) == 0 {
		return errors.New("lis3mdltest: missing register address")
	}

	reg := w[0] &^ lis3mdl.AutoIncrement
	auto := w[0]&lis3mdl.AutoIncrement != 0

	if len(r) != 0 {
		s.Reads++
		if s.ReadErr != nil {
			return s.ReadErr
		}
		for i := range r {
			r[i] = s.Regs[s.index(reg, i, auto)]
		}
		return nil
	}

	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	for i, b := range w[1:] {
		s.Regs[s.index(reg, i, true)] = b
	}
	return nil
}

func (s *Sim) index(reg byte, i int, auto bool) int {
	if !auto {
		return int(reg)
	}
	return (int(reg) + i) % len(s.Regs)
}
