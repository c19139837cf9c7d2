// Package scenario provides named gate sequences, scripted runs and
// parallel ensembles driven through the device contract.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/qsim/internal/config"
	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/quantum"
)

// Scenario is one register preparation: allocate, apply the transform
// to each listed wire in order, read back.
type Scenario struct {
	Name   string `yaml:"name"`
	Qubits int    `yaml:"qubits"`
	Wires  []int  `yaml:"wires"`
	Shots  int    `yaml:"shots"`
}

func FromConfig(name string, cfg *config.Config) Scenario {
	return Scenario{
		Name:   name,
		Qubits: cfg.Qubits,
		Wires:  append([]int(nil), cfg.Wires...),
		Shots:  cfg.Shots,
	}
}

func (s Scenario) Validate() error {
	if s.Qubits < 1 {
		return fmt.Errorf("scenario %q: qubits must be at least 1, got %d", s.Name, s.Qubits)
	}
	for _, w := range s.Wires {
		if w < 0 || w >= s.Qubits {
			return fmt.Errorf("scenario %q: wire %d outside register of %d", s.Name, w, s.Qubits)
		}
	}
	return nil
}

// Run executes the scenario on a device, replacing whatever register
// it currently holds.
func (s Scenario) Run(ctx context.Context, dev *device.Device) (*quantum.Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dev.ReleaseAllQubits()
	dev.AllocateQubits(s.Qubits)
	dev.SetDeviceShots(s.Shots)

	start := time.Now()
	for _, wire := range s.Wires {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := dev.NamedOperation("Hadamard", nil, []int{wire}, false, nil, nil); err != nil {
			return nil, fmt.Errorf("scenario %q, wire %d: %w", s.Name, wire, err)
		}
	}

	amps := dev.StateVector()
	return &quantum.Result{
		Qubits:        s.Qubits,
		Wires:         append([]int(nil), s.Wires...),
		Shots:         s.Shots,
		Amplitudes:    amps,
		Probabilities: amps.Probabilities(),
		Elapsed:       time.Since(start),
	}, nil
}
