// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/interfaces"

	"golang.org/x/image/colornames"
)

const (
	gameOverText = "GAME OVER"
	charWidth    = 9 // approximate advance of the HUD font, for centring
)

// HUD draws the health and score readouts and the game-over banner.
type HUD struct {
	X, Y         int
	ScreenWidth  int
	ScreenHeight int
}

func NewHUD(screenWidth, screenHeight int) *HUD {
	return &HUD{
		X:            config.HUDMargin,
		Y:            config.HUDMargin + config.HUDLineHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func HealthText(health, maxHealth int) string {
	if health < 0 {
		health = 0
	}
	return fmt.Sprintf("Health: %d/%d", health, maxHealth)
}

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw overlays the readouts; the banner only appears once the game is over.
func (h *HUD) Draw(surface interfaces.Surface, health, maxHealth, score int, gameOver bool) {
	healthColor := colornames.White
	if health <= maxHealth/4 {
		healthColor = colornames.Orangered
	}
	surface.DrawText(HealthText(health, maxHealth), h.X, h.Y, healthColor)
	surface.DrawText(ScoreText(score), h.X, h.Y+config.HUDLineHeight, colornames.White)

	if gameOver {
		x := (h.ScreenWidth - len(gameOverText)*charWidth) / 2
		y := h.ScreenHeight / 2
		surface.DrawText(gameOverText, x, y, colornames.Red)
	}
}
