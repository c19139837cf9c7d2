// Package metrics collects dispatch and lifecycle statistics through
// the observer hooks, and provides a line-oriented event logger.
package metrics

import (
	"sync"

	"github.com/san-kum/qsim/internal/quantum"
)

// DispatchStats summarizes device activity since the last reset.
type DispatchStats struct {
	Hardware     bool   `json:"hardware"`
	Bitstream    string `json:"bitstream,omitempty"`
	HardwareRuns int    `json:"hardware_runs"`
	SoftwareRuns int    `json:"software_runs"`
	Fallbacks    int    `json:"fallbacks"`
	Allocations  int    `json:"allocations"`
	Releases     int    `json:"releases"`
	LastError    string `json:"last_error,omitempty"`
}

// SuccessRate is the fraction of hardware attempts that completed on
// hardware. 1.0 when nothing was attempted.
func (s DispatchStats) SuccessRate() float64 {
	attempts := s.HardwareRuns + s.Fallbacks
	if attempts == 0 {
		return 1.0
	}
	return float64(s.HardwareRuns) / float64(attempts)
}

// Recorder implements [quantum.Observer] by counting events. Safe for
// use across the devices of an ensemble.
type Recorder struct {
	mu    sync.Mutex
	stats DispatchStats
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnConstruct(hardware bool, bitstream string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Hardware = hardware
	r.stats.Bitstream = bitstream
}

func (r *Recorder) OnAllocate(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Allocations++
}

func (r *Recorder) OnRelease(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Releases++
}

func (r *Recorder) OnDispatch(path quantum.Path, wire, qubits int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if path == quantum.PathHardware {
		r.stats.HardwareRuns++
	} else {
		r.stats.SoftwareRuns++
	}
}

func (r *Recorder) OnFallback(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Fallbacks++
	if err != nil {
		r.stats.LastError = err.Error()
	}
}

// Stats returns a copy of the current counters.
func (r *Recorder) Stats() DispatchStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = DispatchStats{}
}

// AsMap flattens the counters for run metadata.
func (r *Recorder) AsMap() map[string]float64 {
	s := r.Stats()
	return map[string]float64{
		"hardware_runs": float64(s.HardwareRuns),
		"software_runs": float64(s.SoftwareRuns),
		"fallbacks":     float64(s.Fallbacks),
		"allocations":   float64(s.Allocations),
		"releases":      float64(s.Releases),
		"success_rate":  s.SuccessRate(),
	}
}
