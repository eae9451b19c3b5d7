package object

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"
)

// Camera keeps the player at the centre of the screen.
type Camera struct {
	position   utils.Vec2
	halfScreen utils.Vec2
}

func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		halfScreen: utils.NewVec2(float64(screenWidth)/2, float64(screenHeight)/2),
	}
}

// Offset is the world position of the screen's top-left corner.
func (c *Camera) Offset() utils.Vec2 {
	return c.position
}

func (c *Camera) Update(deltaTime float64, frame *component.FrameContext) {
	c.position = frame.PlayerPosition.Sub(c.halfScreen)
}

// Draw is a no-op: the camera has no sprite.
func (c *Camera) Draw(surface interfaces.Surface, texture interfaces.Texture, animationFrame int, frame *component.FrameContext, scale float64) error {
	return nil
}

func (c *Camera) Name() string {
	return "main_camera"
}

func (c *Camera) IsDestroyed() bool {
	return false
}
