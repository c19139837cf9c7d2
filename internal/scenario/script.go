package scenario

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/quantum"
)

// Script defines a scripted device session: a sequence of allocation,
// gate and release steps with optional probability expectations.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single script action. Fields run in declaration order:
// allocate, apply, release, release_all, then the expectation check.
type Step struct {
	Allocate   int       `yaml:"allocate"`
	Apply      []int     `yaml:"apply"`
	Release    int       `yaml:"release"`
	ReleaseAll bool      `yaml:"release_all"`
	Shots      int       `yaml:"shots"`
	Expect     []float64 `yaml:"expect"`
}

// expectTolerance covers the hardware path's float32 precision.
const expectTolerance = 1e-6

// LoadScript loads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}

	return &script, nil
}

// RunScript executes all steps against a device, checking each step's
// expected probabilities when present.
func RunScript(ctx context.Context, script *Script, dev *device.Device) error {
	for i, step := range script.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if step.Allocate > 0 {
			dev.AllocateQubits(step.Allocate)
		}
		if step.Shots > 0 {
			dev.SetDeviceShots(step.Shots)
		}
		for _, wire := range step.Apply {
			if err := dev.NamedOperation("Hadamard", nil, []int{wire}, false, nil, nil); err != nil {
				return fmt.Errorf("step %d, wire %d: %w", i+1, wire, err)
			}
		}
		for r := 0; r < step.Release; r++ {
			dev.ReleaseQubit(quantum.QubitHandle(dev.GetNumQubits() - 1))
		}
		if step.ReleaseAll {
			dev.ReleaseAllQubits()
		}

		if len(step.Expect) > 0 {
			if err := checkExpectation(i+1, step.Expect, dev.StateVector()); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkExpectation(step int, expect []float64, amps quantum.Vector) error {
	probs := amps.Probabilities()
	if len(expect) != len(probs) {
		return fmt.Errorf("step %d: expectation over %d basis states, register has %d", step, len(expect), len(probs))
	}
	for i, want := range expect {
		if math.Abs(probs[i]-want) > expectTolerance {
			return fmt.Errorf("step %d: probability[%d] = %.9f, want %.9f", step, i, probs[i], want)
		}
	}
	return nil
}
