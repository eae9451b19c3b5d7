package ui

import (
	"testing"

	"go-arena-shooter/internal/interfaces/surfacetest"
)

func TestHUDReadouts(t *testing.T) {
	s := &surfacetest.Surface{}
	NewHUD(800, 600).Draw(s, 90, 100, 30, false)

	if !s.HasText("Health: 90/100") || !s.HasText("Score: 30") {
		t.Fatalf("texts = %+v", s.Texts)
	}
	if s.HasText(gameOverText) {
		t.Fatalf("banner drawn while playing")
	}
}

func TestHUDGameOverBanner(t *testing.T) {
	s := &surfacetest.Surface{}
	NewHUD(800, 600).Draw(s, -10, 100, 70, true)

	if !s.HasText(gameOverText) {
		t.Fatalf("banner missing: %+v", s.Texts)
	}
	if !s.HasText("Health: 0/100") {
		t.Fatalf("negative health not clamped in readout: %+v", s.Texts)
	}
}
