package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMachinesConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MachinesConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  width: 800
  height: 600
frameRate: 24
numFrames: 240
resourcesDir: assets
machines:
  - name: left
    number: 1
    startFrame: 0
    location: {x: 300, y: 500}
  - name: right
    number: 2
    startFrame: 48
    location: {x: 600, y: 500}
`,
			validate: func(t *testing.T, cfg *MachinesConfig) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.FrameRate != 24 {
					t.Errorf("frameRate = %v, want 24", cfg.FrameRate)
				}
				if cfg.ResourcesDir != "assets" {
					t.Errorf("resourcesDir = %q, want assets", cfg.ResourcesDir)
				}
				if len(cfg.Machines) != 2 {
					t.Fatalf("len(machines) = %d, want 2", len(cfg.Machines))
				}
				right := cfg.Machines[1]
				if right.Number != 2 || right.StartFrame != 48 || right.Location.X != 600 {
					t.Errorf("right machine = %+v", right)
				}
				if cfg.Duration() != 10 {
					t.Errorf("Duration() = %v, want 10", cfg.Duration())
				}
			},
		},
		{
			name:        "defaults",
			yamlContent: `machines: []`,
			validate: func(t *testing.T, cfg *MachinesConfig) {
				if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
					t.Errorf("window = %dx%d, want defaults", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.FrameRate != DefaultFrameRate {
					t.Errorf("frameRate = %v, want %v", cfg.FrameRate, DefaultFrameRate)
				}
				if cfg.NumFrames != DefaultNumFrames {
					t.Errorf("numFrames = %d, want %d", cfg.NumFrames, DefaultNumFrames)
				}
				if cfg.ResourcesDir != DefaultResourcesDir {
					t.Errorf("resourcesDir = %q, want %q", cfg.ResourcesDir, DefaultResourcesDir)
				}
			},
		},
		{
			name:        "negative frame rate",
			yamlContent: `frameRate: -5`,
			wantErr:     true,
			errContains: "frameRate must be positive",
		},
		{
			name:        "negative window",
			yamlContent: "window:\n  width: -1\n  height: 10\n",
			wantErr:     true,
			errContains: "window size",
		},
		{
			name: "unknown machine number",
			yamlContent: `
machines:
  - name: a
    number: 3
`,
			wantErr:     true,
			errContains: "unknown number 3",
		},
		{
			name: "duplicate name",
			yamlContent: `
machines:
  - name: a
    number: 1
  - name: a
    number: 2
`,
			wantErr:     true,
			errContains: "duplicate machine name",
		},
		{
			name: "missing name",
			yamlContent: `
machines:
  - number: 1
`,
			wantErr:     true,
			errContains: "has no name",
		},
		{
			name: "negative start frame",
			yamlContent: `
machines:
  - name: a
    number: 1
    startFrame: -1
`,
			wantErr:     true,
			errContains: "startFrame",
		},
		{
			name:        "malformed yaml",
			yamlContent: "machines: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMachinesConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMachinesConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machines.yaml")
	content := "machines:\n  - name: solo\n    number: 2\n    location: {x: 10, y: 20}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadMachinesConfig(path)
	if err != nil {
		t.Fatalf("LoadMachinesConfig() error = %v", err)
	}

	m, ok := cfg.FindMachine("solo")
	if !ok {
		t.Fatal("FindMachine(solo) not found")
	}
	if m.Location.X != 10 || m.Location.Y != 20 {
		t.Errorf("location = %+v, want {10 20}", m.Location)
	}
	if _, ok := cfg.FindMachine("missing"); ok {
		t.Error("FindMachine(missing) should not be found")
	}
}

func TestLoadMachinesConfig_MissingFile(t *testing.T) {
	_, err := LoadMachinesConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v", err)
	}
}

// TestRepositoryMachinesConfig 仓库自带的场景配置必须可用
func TestRepositoryMachinesConfig(t *testing.T) {
	cfg, err := LoadMachinesConfig(filepath.Join("..", "..", "data", "machines.yaml"))
	if err != nil {
		t.Fatalf("data/machines.yaml: %v", err)
	}
	if len(cfg.Machines) == 0 {
		t.Error("data/machines.yaml should place at least one machine")
	}
}
