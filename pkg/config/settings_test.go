package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.json")} {
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if s != Default() {
			t.Errorf("Load(%q) = %+v, want defaults", path, s)
		}
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeSettings(t, `{
		"size": 64,
		"seedForce": true,
		"palette": "turbo",
		"fluid": {"fidelity": 30, "gravity": {"x": 0, "y": -9.81}}
	}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Size != 64 || !s.SeedForce || s.Palette != "turbo" {
		t.Errorf("top-level settings not applied: %+v", s)
	}
	if s.Fluid.Fidelity != 30 || s.Fluid.Gravity.Y != -9.81 {
		t.Errorf("fluid options not applied: %+v", s.Fluid)
	}
	if s.Fluid.DiffusionRate != fluid.DefaultOptions().DiffusionRate {
		t.Errorf("diffusion rate lost its default: %v", s.Fluid.DiffusionRate)
	}
	if !s.SeedDensity || s.Scale != 4 {
		t.Errorf("unset fields lost their defaults: %+v", s)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":     `{"size": `,
		"unknown field": `{"size": 32, "resolution": 5}`,
		"wrong type":    `{"size": "large"}`,
	} {
		if _, err := Load(writeSettings(t, body)); err == nil {
			t.Errorf("%s: Load succeeded", name)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	bad := map[string]func(*Settings){
		"size":      func(s *Settings) { s.Size = 0 },
		"scale":     func(s *Settings) { s.Scale = -1 },
		"palette":   func(s *Settings) { s.Palette = "sepia" },
		"fidelity":  func(s *Settings) { s.Fluid.Fidelity = 0 },
		"diffusion": func(s *Settings) { s.Fluid.DiffusionRate = -2 },
	}
	for name, mutate := range bad {
		s := Default()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: Validate accepted %+v", name, s)
		}
	}

	s := Default()
	s.Fluid.Fidelity = -4
	if err := s.Validate(); !errors.Is(err, fluid.ErrInvalidOptions) {
		t.Errorf("fidelity error = %v, want ErrInvalidOptions", err)
	}
}

func TestResized(t *testing.T) {
	for _, tc := range []struct {
		size int
		grow bool
		want int
	}{
		{128, true, 256},
		{128, false, 64},
		{300, true, MaxSize},
		{MaxSize, true, MaxSize},
		{1000, true, 1000},
		{20, false, MinSize},
		{MinSize, false, MinSize},
		{4, false, 4},
		{4, true, 8},
	} {
		s := Default()
		s.Size = tc.size
		got := s.Resized(tc.grow)
		if got.Size != tc.want {
			t.Errorf("Resized(%v) from %d = %d, want %d", tc.grow, tc.size, got.Size, tc.want)
		}
		if s.Size != tc.size {
			t.Errorf("Resized modified its receiver")
		}
		got.Size = s.Size
		if got != s {
			t.Errorf("Resized(%v) changed more than Size: %+v", tc.grow, got)
		}
	}

	s := Default().Resized(false)
	f, err := s.NewFluid()
	if err != nil {
		t.Fatal(err)
	}
	if f.GridSize() != 64 {
		t.Errorf("GridSize() = %d, want 64", f.GridSize())
	}
}

func TestNewFluid(t *testing.T) {
	s := Default()
	s.Size = 16
	s.SeedDensity = false
	s.Fluid = fluid.Options{DiffusionRate: 9, Fidelity: 12}

	f, err := s.NewFluid()
	if err != nil {
		t.Fatalf("NewFluid: %v", err)
	}
	if f.GridSize() != 16 {
		t.Errorf("grid size = %d", f.GridSize())
	}
	if f.Options() != s.Fluid {
		t.Errorf("options = %+v, want %+v", f.Options(), s.Fluid)
	}
	if f.TotalDensity() != 0 {
		t.Error("density seeded although disabled")
	}

	s.Fluid.Fidelity = 0
	if _, err := s.NewFluid(); !errors.Is(err, fluid.ErrInvalidOptions) {
		t.Errorf("NewFluid with bad options = %v", err)
	}
}
