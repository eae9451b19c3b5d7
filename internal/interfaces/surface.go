package interfaces

import (
	"image"
	"image/color"
)

// Texture is a loaded bitmap. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// SpriteOp describes one sprite blit.
type SpriteOp struct {
	Src         image.Rectangle // region of the texture
	Dst         image.Rectangle // screen rectangle the region is stretched to
	RotationDeg float64         // clockwise, about the centre of Dst
	Tint        color.Color     // nil draws the sprite untinted
}

// Surface is the drawing target for one frame.
type Surface interface {
	Clear(c color.Color)
	DrawSprite(texture Texture, op SpriteOp) error
	FillRect(x, y, w, h float64, c color.Color)
	DrawText(s string, x, y int, c color.Color)
}
