package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
)

func newTestBuilding(t *testing.T) (context.Context, *dispatcher.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	cfg := config.Default()
	cfg.StepDuration = time.Millisecond
	building, err := dispatcher.New(ctx, cfg)
	if err != nil {
		t.Fatalf("dispatcher.New: %v", err)
	}
	return ctx, building
}

func TestRunDemoScript(t *testing.T) {
	ctx, building := newTestBuilding(t)
	var out bytes.Buffer
	if err := runScript(ctx, building, strings.NewReader(demoScript), &out); err != nil {
		t.Fatalf("runScript: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"request 15 UP dispatched to elevator 1",
		"request 25 UP rejected: floor 25",
		"request -1 DOWN rejected: floor -1",
		"=== Building Status ===",
		"Elevator{id=2,",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
	if n := strings.Count(output, "dispatched to elevator"); n != 7 {
		t.Errorf("Expected 7 dispatched requests, got %d", n)
	}
	if n := strings.Count(output, "=== Building Status ==="); n != 2 {
		t.Errorf("Expected 2 status blocks, got %d", n)
	}
	if building.Served() > 7 {
		t.Errorf("Expected at most 7 arrivals, got %d", building.Served())
	}
}

func TestRunScriptErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		errMsg string
	}{
		{"unknown command", "# header\n\nfly 3\n", `line 3: unknown command "fly"`},
		{"missing direction", "request 3\n", "line 1: usage"},
		{"bad floor", "request three up\n", "line 1: floor"},
		{"bad direction", "request 3 sideways\n", "line 1:"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, building := newTestBuilding(t)
			err := runScript(ctx, building, strings.NewReader(tc.script), &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Expected error containing %q, got %v", tc.errMsg, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "elevsim.yaml")
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(yamlPath, []byte("NumElevators: 3\nCapacity: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(envPath, []byte("ELEVSIM_CAPACITY=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(yamlPath, envPath)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.NumElevators != 3 || cfg.Capacity != 5 {
		t.Errorf("Expected NumElevators 3 and Capacity 5, got %+v", cfg)
	}

	cfg, err = loadConfig("", filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("loadConfig without files: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
