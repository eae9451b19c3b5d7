// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// tintScale turns a tint into a colour scale; nil leaves the sprite as is.
func tintScale(c color.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	if c == nil {
		return cs
	}
	cs.ScaleWithColor(c)
	return cs
}
