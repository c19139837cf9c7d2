package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/qsim/internal/device"
)

const demoScript = `name: demo
description: allocate, spread, verify, tear down
steps:
  - allocate: 2
    apply: [0, 1]
    expect: [0.25, 0.25, 0.25, 0.25]
  - apply: [1]
    expect: [0.5, 0.5, 0, 0]
  - release_all: true
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	script, err := LoadScript(writeScript(t, demoScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	if script.Name != "demo" {
		t.Errorf("name = %q, want demo", script.Name)
	}
	if len(script.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(script.Steps))
	}
	if script.Steps[0].Allocate != 2 || len(script.Steps[0].Apply) != 2 {
		t.Errorf("step 1 = %+v", script.Steps[0])
	}
	if !script.Steps[2].ReleaseAll {
		t.Error("step 3 should release all")
	}
}

func TestLoadScript_MissingFile(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunScript(t *testing.T) {
	script, err := LoadScript(writeScript(t, demoScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	dev := device.New(device.Config{})
	if err := RunScript(context.Background(), script, dev); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if dev.GetNumQubits() != 0 {
		t.Errorf("final qubits = %d, want 0", dev.GetNumQubits())
	}
}

func TestRunScript_ExpectationFailure(t *testing.T) {
	script := &Script{
		Name: "wrong",
		Steps: []Step{
			{Allocate: 1, Apply: []int{0}, Expect: []float64{1, 0}},
		},
	}

	dev := device.New(device.Config{})
	err := RunScript(context.Background(), script, dev)
	if err == nil {
		t.Fatal("expected expectation failure")
	}
	if !strings.Contains(err.Error(), "probability") {
		t.Errorf("error = %v, want probability mismatch", err)
	}
}

func TestRunScript_ReleaseCount(t *testing.T) {
	script := &Script{
		Name: "shrink",
		Steps: []Step{
			{Allocate: 3},
			{Release: 2, Expect: []float64{1, 0}},
		},
	}

	dev := device.New(device.Config{})
	if err := RunScript(context.Background(), script, dev); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if dev.GetNumQubits() != 1 {
		t.Errorf("qubits = %d, want 1", dev.GetNumQubits())
	}
}
