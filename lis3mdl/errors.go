package lis3mdl

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned when a register field holds a value with no
	// matching setting.
	ErrDecode = errors.New("lis3mdl: unmapped register value")
)

// BusError reports a failed register transaction. Err is the error returned
// by the underlying I²C bus.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lis3mdl: could not %s register %#02x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }
