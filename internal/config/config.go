package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qsim/internal/accel"
)

const (
	DefaultQubits = 2
	DefaultShots  = 0
)

// Config is the persisted run configuration: register size, the wire
// sequence to transform, and the accelerator selection.
type Config struct {
	Qubits       int          `yaml:"qubits"`
	Wires        []int        `yaml:"wires"`
	Shots        int          `yaml:"shots"`
	Capabilities string       `yaml:"capabilities"`
	Accel        accel.Config `yaml:"accel"`
}

func DefaultConfig() *Config {
	return &Config{
		Qubits: DefaultQubits,
		Wires:  []int{0, 1},
		Shots:  DefaultShots,
		Accel:  accel.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
