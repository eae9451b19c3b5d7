// Package surfacetest provides in-memory Surface and Texture implementations
// that record draw calls, for tests that exercise rendering code.
package surfacetest

import (
	"image"
	"image/color"

	"go-arena-shooter/internal/interfaces"
)

// Texture is a named texture of a fixed size.
type Texture struct {
	Name string
	W, H int
}

func NewTexture(name string, w, h int) *Texture {
	return &Texture{Name: name, W: w, H: h}
}

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.W, t.H)
}

// Sprite is one recorded DrawSprite call.
type Sprite struct {
	Texture interfaces.Texture
	Op      interfaces.SpriteOp
}

// Rect is one recorded FillRect call.
type Rect struct {
	X, Y, W, H float64
	Color      color.Color
}

// Text is one recorded DrawText call.
type Text struct {
	S    string
	X, Y int
}

// Surface records every call made on it.
type Surface struct {
	Clears  int
	Sprites []Sprite
	Rects   []Rect
	Texts   []Text
	Err     error // returned from DrawSprite when set
}

var _ interfaces.Surface = (*Surface)(nil)

func (s *Surface) Clear(c color.Color) {
	s.Clears++
}

func (s *Surface) DrawSprite(texture interfaces.Texture, op interfaces.SpriteOp) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sprites = append(s.Sprites, Sprite{Texture: texture, Op: op})
	return nil
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.Rects = append(s.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (s *Surface) DrawText(str string, x, y int, c color.Color) {
	s.Texts = append(s.Texts, Text{S: str, X: x, Y: y})
}

// HasText reports whether any recorded text equals str.
func (s *Surface) HasText(str string) bool {
	for _, t := range s.Texts {
		if t.S == str {
			return true
		}
	}
	return false
}

// Textures is a name-keyed texture set.
type Textures map[string]interfaces.Texture

func (t Textures) Texture(name string) (interfaces.Texture, bool) {
	tex, ok := t[name]
	return tex, ok
}
