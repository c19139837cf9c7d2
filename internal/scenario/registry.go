package scenario

import "fmt"

// Registry maps scenario names to their definitions.
type Registry struct {
	scenarios map[string]Scenario
}

func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[string]Scenario)}

	r.scenarios["plus"] = Scenario{Name: "plus", Qubits: 1, Wires: []int{0}}
	r.scenarios["split2"] = Scenario{Name: "split2", Qubits: 2, Wires: []int{0}}
	r.scenarios["uniform2"] = Scenario{Name: "uniform2", Qubits: 2, Wires: []int{0, 1}}
	r.scenarios["uniform3"] = Scenario{Name: "uniform3", Qubits: 3, Wires: []int{0, 1, 2}}
	r.scenarios["blink"] = Scenario{Name: "blink", Qubits: 1, Wires: []int{0, 0}}

	return r
}

func (r *Registry) Get(name string) (Scenario, error) {
	s, ok := r.scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario: %s", name)
	}
	return s, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	return names
}
