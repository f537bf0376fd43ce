package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsComplete(t *testing.T) {
	cfg := DefaultCookieShiftConfig()

	if cfg.Timing.SlideFrames <= 0 || cfg.Timing.InputWindowFrames <= 0 {
		t.Errorf("default timing has zero values: %+v", cfg.Timing)
	}
	if len(cfg.Pieces) != 6 {
		t.Fatalf("default piece table has %d entries, want 6", len(cfg.Pieces))
	}
	for i, p := range cfg.Pieces {
		if p.Name == "" || p.Glyph == "" || p.Color == "" {
			t.Errorf("piece %d incomplete: %+v", i, p)
		}
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	var cfg CookieShiftConfig
	cfg.Validate()

	def := DefaultCookieShiftConfig()
	if cfg.Timing != def.Timing {
		t.Errorf("Validate timing = %+v, want defaults %+v", cfg.Timing, def.Timing)
	}
	if len(cfg.Pieces) != len(def.Pieces) {
		t.Errorf("Validate padded %d pieces, want %d", len(cfg.Pieces), len(def.Pieces))
	}
}

func TestValidateKeepsCustomValues(t *testing.T) {
	cfg := CookieShiftConfig{
		Timing: TimingConfig{SlideFrames: 8, InputWindowFrames: 2},
	}
	cfg.Validate()

	if cfg.Timing.SlideFrames != 8 || cfg.Timing.InputWindowFrames != 2 {
		t.Errorf("Validate overwrote custom timing: %+v", cfg.Timing)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := LoadCookieShift("")
	if err != nil {
		t.Fatalf("LoadCookieShift() failed: %v", err)
	}
	if cfg.Timing.SlideFrames <= 0 {
		t.Error("loaded config missing slide frames")
	}
	if len(cfg.Pieces) != 6 {
		t.Errorf("loaded config has %d pieces, want 6", len(cfg.Pieces))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "timing:\n  slide_frames: 12\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCookieShift(path)
	if err != nil {
		t.Fatalf("LoadCookieShift(%q) failed: %v", path, err)
	}
	if cfg.Timing.SlideFrames != 12 {
		t.Errorf("slide frames = %d, want 12 from custom file", cfg.Timing.SlideFrames)
	}
	// Omitted values come from the defaults
	if cfg.Timing.InputWindowFrames <= 0 {
		t.Error("omitted input window should be filled from defaults")
	}
	if len(cfg.Pieces) != 6 {
		t.Errorf("omitted piece table should be padded, got %d entries", len(cfg.Pieces))
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadCookieShift("/nonexistent/config.yaml"); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}
