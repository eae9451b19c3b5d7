package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, found, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatalf("found = true for a missing file")
	}
	if s != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte(`
player:
  speed: 120
spawner:
  health: {min: 30, max: 35}
seed: 42
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("found = false")
	}
	if s.Player.Speed != 120 {
		t.Errorf("player speed = %v, want 120", s.Player.Speed)
	}
	if s.Player.Health != 100 {
		t.Errorf("player health = %d, want default 100", s.Player.Health)
	}
	if s.Spawner.Health != (IntRange{Min: 30, Max: 35}) {
		t.Errorf("spawner health = %+v", s.Spawner.Health)
	}
	if s.Seed != 42 {
		t.Errorf("seed = %d, want 42", s.Seed)
	}
}

func TestLoadRejectsInvertedRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("spawner:\n  speed: {min: 50, max: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("player: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsNonPositiveSpawnInterval(t *testing.T) {
	for _, min := range []float64{0, -1} {
		s := DefaultSettings()
		s.Spawner.Interval = Range{Min: min, Max: 4}
		if err := s.Validate(); err == nil {
			t.Fatalf("interval min %v accepted", min)
		}
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}
