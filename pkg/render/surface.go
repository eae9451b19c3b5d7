// pkg/render/surface.go
package render

import (
	"fmt"
	"image/color"

	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Surface draws onto an ebiten image. Textures must be *ebiten.Image.
type Surface struct {
	target   *ebiten.Image
	fontFace font.Face
}

var _ interfaces.Surface = (*Surface)(nil)

// NewSurface wraps target; text is drawn with fontFace.
func NewSurface(target *ebiten.Image, fontFace font.Face) *Surface {
	return &Surface{target: target, fontFace: fontFace}
}

// Reset points the surface at a new frame target.
func (s *Surface) Reset(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

// DrawSprite copies op.Src of the texture into op.Dst, rotated clockwise
// about the destination centre.
func (s *Surface) DrawSprite(texture interfaces.Texture, op interfaces.SpriteOp) error {
	img, ok := texture.(*ebiten.Image)
	if !ok {
		return fmt.Errorf("unsupported texture type %T", texture)
	}

	srcRect := op.Src.Intersect(img.Bounds())
	if srcRect.Empty() {
		return fmt.Errorf("source rect %v outside texture bounds %v", op.Src, img.Bounds())
	}
	if op.Dst.Empty() {
		return nil
	}
	src := img.SubImage(srcRect).(*ebiten.Image)

	sw, sh := float64(srcRect.Dx()), float64(srcRect.Dy())
	dw, dh := float64(op.Dst.Dx()), float64(op.Dst.Dy())

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-sw/2, -sh/2)
	opts.GeoM.Scale(dw/sw, dh/sh)
	opts.GeoM.Rotate(utils.DegToRad(op.RotationDeg))
	opts.GeoM.Translate(float64(op.Dst.Min.X)+dw/2, float64(op.Dst.Min.Y)+dh/2)
	opts.ColorScale = tintScale(op.Tint)
	opts.Filter = ebiten.FilterLinear

	s.target.DrawImage(src, opts)
	return nil
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText draws str with its baseline at y.
func (s *Surface) DrawText(str string, x, y int, c color.Color) {
	text.Draw(s.target, str, s.fontFace, x, y, c)
}
