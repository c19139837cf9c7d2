package export

import (
	"strings"
	"testing"
)

func TestProbabilityBarsToSVG(t *testing.T) {
	probs := []float64{0.5, 0.5, 0, 0}
	svg := ProbabilityBarsToSVG(probs, 2, 400, 200, "#00ff00")

	if !strings.Contains(svg, "<svg") {
		t.Fatal("output missing svg element")
	}
	if got := strings.Count(svg, "<rect"); got != 5 {
		t.Errorf("rect count = %d, want 5 (background + 4 bars)", got)
	}
	if !strings.Contains(svg, "|01>") {
		t.Error("output missing basis label |01>")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("output missing bar color")
	}
}

func TestProbabilityBarsToSVGEmpty(t *testing.T) {
	if svg := ProbabilityBarsToSVG(nil, 2, 400, 200, "#00ff00"); svg != "" {
		t.Errorf("empty input should produce empty output, got %q", svg)
	}
	if svg := ProbabilityBarsToSVG([]float64{1}, 0, 400, 200, "#00ff00"); svg != "" {
		t.Errorf("zero qubits should produce empty output, got %q", svg)
	}
}

func TestHistoryToSVG(t *testing.T) {
	svg := HistoryToSVG([]float64{1, 0.5, 0.5, 0.25}, 400, 200, "#ff00ff")

	if !strings.Contains(svg, `d="M0.0,0.0`) {
		t.Errorf("path should start at the top-left for probability 1, got %q", svg[:min(len(svg), 400)])
	}
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("line segment count = %d, want 3", got)
	}
}

func TestHistoryToSVGTooShort(t *testing.T) {
	if svg := HistoryToSVG([]float64{1}, 400, 200, "#ff00ff"); svg != "" {
		t.Errorf("single sample should produce empty output, got %q", svg)
	}
}
