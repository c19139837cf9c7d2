package scenario

import (
	"context"
	"sync"

	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/quantum"
)

// Ensemble runs the same scenario across independently constructed
// devices. Devices are not safe for concurrent use, so each run gets
// its own.
type Ensemble struct {
	scenario Scenario
	numRuns  int
	build    func() *device.Device
}

func NewEnsemble(s Scenario, numRuns int, build func() *device.Device) *Ensemble {
	return &Ensemble{scenario: s, numRuns: numRuns, build: build}
}

func (e *Ensemble) Run(ctx context.Context) ([]*quantum.Result, error) {
	results := make([]*quantum.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			dev := e.build()
			defer dev.Close()

			results[idx], errs[idx] = e.scenario.Run(ctx, dev)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
