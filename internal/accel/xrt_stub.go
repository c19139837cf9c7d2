//go:build !xrt

package accel

import (
	"fmt"

	"github.com/san-kum/qsim/internal/quantum"
)

type XRTSession struct{}

func NewXRTSession(cfg Config) (*XRTSession, error) {
	return nil, fmt.Errorf("%w: built without xrt support", quantum.ErrConfigurationUnavailable)
}

func (x *XRTSession) Name() string    { return "xrt (not available)" }
func (x *XRTSession) Available() bool { return false }
func (x *XRTSession) Close() error    { return nil }

func (x *XRTSession) Run(kind quantum.GateKind, wire, qubits int, in []complex64) ([]complex64, error) {
	return nil, quantum.ErrConfigurationUnavailable
}
