package quantum

import (
	"errors"
	"fmt"
)

// Domain errors for device and dispatch operations.
var (
	// ErrUnsupportedOperation indicates a gate request outside the
	// device capability set.
	ErrUnsupportedOperation = errors.New("quantum: unsupported operation")

	// ErrSizeMismatch indicates a caller buffer whose length does not
	// match the current state vector.
	ErrSizeMismatch = errors.New("quantum: output buffer size mismatch")

	// ErrWireOutOfRange indicates a target wire outside the allocated
	// register.
	ErrWireOutOfRange = errors.New("quantum: wire index out of range")

	// ErrHardwareExecution indicates an accelerator run that failed.
	// The dispatcher recovers by rerouting to software.
	ErrHardwareExecution = errors.New("quantum: hardware execution failure")

	// ErrConfigurationUnavailable indicates accelerator resources that
	// could not be acquired at construction time.
	ErrConfigurationUnavailable = errors.New("quantum: accelerator configuration unavailable")
)

// HardwareError wraps an accelerator failure with the stage it
// occurred in (load, transfer, run, readback).
type HardwareError struct {
	Stage   string
	Wrapped error
}

func (e *HardwareError) Error() string {
	return fmt.Sprintf("hardware %s: %v", e.Stage, e.Wrapped)
}

func (e *HardwareError) Unwrap() error {
	return e.Wrapped
}

// Is reports every HardwareError as an ErrHardwareExecution so callers
// can match the kind without knowing the stage.
func (e *HardwareError) Is(target error) bool {
	return target == ErrHardwareExecution
}
