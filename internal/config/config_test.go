package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.DiskRadius != 25 {
		t.Errorf("expected disk radius 25, got %f", cfg.DiskRadius)
	}
	if !cfg.Physics.FrictionEnabled {
		t.Error("friction should default on")
	}
	if cfg.Physics.Restitution != 0.8 {
		t.Errorf("expected restitution 0.8, got %f", cfg.Physics.Restitution)
	}
}

func TestPreset(t *testing.T) {
	cfg := Preset("bouncy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Physics.Restitution != 1.0 {
		t.Errorf("expected restitution 1.0, got %f", cfg.Physics.Restitution)
	}

	if Preset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diskbox.yaml")

	cfg := DefaultConfig()
	cfg.Physics.GravityY = -980
	cfg.DiskRadius = 12

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Physics.GravityY != -980 {
		t.Errorf("expected gravity -980, got %f", loaded.Physics.GravityY)
	}
	if loaded.DiskRadius != 12 {
		t.Errorf("expected disk radius 12, got %f", loaded.DiskRadius)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.GravityX = 1
	cfg.Physics.GravityY = -2

	p := cfg.PhysicsConfig()
	if p.Gravity.X != 1 || p.Gravity.Y != -2 {
		t.Errorf("gravity not carried over: %v", p.Gravity)
	}

	b := cfg.Bounds()
	if b.HalfWidth != float64(cfg.WindowWidth)/2 {
		t.Errorf("expected half width %d, got %f", cfg.WindowWidth/2, b.HalfWidth)
	}
	if b.Margin != cfg.Margin {
		t.Errorf("expected margin %f, got %f", cfg.Margin, b.Margin)
	}
}
