package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/qsim/internal/quantum"
)

// ExportData is the JSON export shape. Amplitudes are [re, im] pairs
// because complex128 has no native JSON encoding.
type ExportData struct {
	Scenario      string             `json:"scenario"`
	Backend       string             `json:"backend"`
	Qubits        int                `json:"qubits"`
	Wires         []int              `json:"wires"`
	Shots         int                `json:"shots"`
	ElapsedMicros int64              `json:"elapsed_us"`
	Amplitudes    [][2]float64       `json:"amplitudes"`
	Probabilities []float64          `json:"probabilities"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

func newExportData(scenario, backend string, metrics map[string]float64, result *quantum.Result) ExportData {
	data := ExportData{
		Scenario:      scenario,
		Backend:       backend,
		Qubits:        result.Qubits,
		Wires:         result.Wires,
		Shots:         result.Shots,
		ElapsedMicros: result.Elapsed.Microseconds(),
		Amplitudes:    make([][2]float64, len(result.Amplitudes)),
		Probabilities: result.Probabilities,
		Metrics:       metrics,
	}

	for i, a := range result.Amplitudes {
		data.Amplitudes[i] = [2]float64{real(a), imag(a)}
	}
	return data
}

func ExportJSON(path, scenario, backend string, metrics map[string]float64, result *quantum.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeExport(file, newExportData(scenario, backend, metrics, result))
}

func ExportJSONStdout(scenario, backend string, metrics map[string]float64, result *quantum.Result) error {
	return writeExport(os.Stdout, newExportData(scenario, backend, metrics, result))
}

func writeExport(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
