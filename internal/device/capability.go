package device

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Capabilities is the descriptor the device advertises to the host
// runtime: which named operations, observables and measurement kinds
// it accepts. Read once at construction, never re-read.
type Capabilities struct {
	Operations   []string `yaml:"operations"`
	Observables  []string `yaml:"observables"`
	Measurements []string `yaml:"measurements"`
}

// DefaultCapabilities advertises the single supported transform.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Operations:   []string{"Hadamard"},
		Measurements: []string{"State"},
	}
}

// LoadCapabilities reads a descriptor file, filling unset fields from
// the defaults.
func LoadCapabilities(path string) (Capabilities, error) {
	caps := DefaultCapabilities()
	data, err := os.ReadFile(path)
	if err != nil {
		return caps, err
	}
	if err := yaml.Unmarshal(data, &caps); err != nil {
		return caps, err
	}
	return caps, nil
}

// Supports reports whether an operation name is advertised.
func (c Capabilities) Supports(name string) bool {
	for _, op := range c.Operations {
		if op == name {
			return true
		}
	}
	return false
}
