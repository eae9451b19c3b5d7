// internal/entity/entity.go
package entity

import (
	"image"
	"image/color"
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"
)

var debugMarkerColor = color.RGBA{255, 0, 0, 255}

// Entity is the spatial part shared by every drawable object: where it is,
// where it is heading and which sprite cell represents it.
type Entity struct {
	position  utils.Vec2
	rotation  float64 // degrees
	speed     float64
	direction utils.Vec2 // zero means stationary
	sprite    component.Sprite
	name      string
	kind      component.EntityKind
	tint      color.Color
}

var _ interfaces.GameObject = (*Entity)(nil)

// New creates a stationary entity with a 10x10 placeholder sprite.
func New(name string, kind component.EntityKind) *Entity {
	return NewWithSpeed(name, 0, kind)
}

func NewWithSpeed(name string, speed float64, kind component.EntityKind) *Entity {
	return &Entity{
		speed:  speed,
		sprite: component.NewSprite(10, 10),
		name:   name,
		kind:   kind,
	}
}

func (e *Entity) ChangeDirection(direction utils.Vec2) {
	e.direction = direction
}

func (e *Entity) Direction() utils.Vec2 {
	return e.direction
}

func (e *Entity) SetSprite(frameWidth, frameHeight int) {
	e.sprite = component.NewSprite(frameWidth, frameHeight)
}

func (e *Entity) Sprite() component.Sprite {
	return e.sprite
}

func (e *Entity) Rotation() float64 {
	return e.rotation
}

func (e *Entity) SetRotation(deg float64) {
	e.rotation = deg
}

func (e *Entity) Position() utils.Vec2 {
	return e.position
}

func (e *Entity) SetPosition(p utils.Vec2) {
	e.position = p
}

func (e *Entity) Speed() float64 {
	return e.speed
}

func (e *Entity) SetSpeed(speed float64) {
	e.speed = speed
}

func (e *Entity) Kind() component.EntityKind {
	return e.kind
}

// SetTint colours the sprite on the next draws; nil clears it.
func (e *Entity) SetTint(c color.Color) {
	e.tint = c
}

// ForwardDirection is the unit vector the entity faces.
func (e *Entity) ForwardDirection() utils.Vec2 {
	rad := utils.DegToRad(e.rotation)
	return utils.NewVec2(math.Cos(rad), math.Sin(rad))
}

// RightDirection is ForwardDirection turned by 90 degrees.
func (e *Entity) RightDirection() utils.Vec2 {
	f := e.ForwardDirection()
	return utils.NewVec2(f.Y, -f.X)
}

// intendedPosition is where one full second of movement would take the
// entity. Non-player entities turn to face their heading on the way.
func (e *Entity) intendedPosition() utils.Vec2 {
	if e.direction.IsZero() {
		return e.position
	}
	dir := utils.Normalize(e.direction)
	if e.kind != component.KindPlayer {
		e.rotation = utils.AngleDeg(dir)
	}
	return e.position.Add(dir.Scale(e.speed))
}

// Update blends the position toward the intended one by deltaTime.
func (e *Entity) Update(deltaTime float64, frame *component.FrameContext) {
	movement := e.intendedPosition().Sub(e.position).Scale(deltaTime)
	e.position = e.position.Add(movement)
}

// Draw blits the sprite centred on the entity's camera-space position,
// rotated about its own centre.
func (e *Entity) Draw(surface interfaces.Surface, texture interfaces.Texture, animationFrame int, frame *component.FrameContext, scale float64) error {
	screen := frame.ToScreen(e.position)
	w := float64(e.sprite.FrameWidth) * scale
	h := float64(e.sprite.FrameHeight) * scale

	x := int(math.Round(screen.X - w/2))
	y := int(math.Round(screen.Y - h/2))
	dst := image.Rect(x, y, x+int(math.Round(w)), y+int(math.Round(h)))

	err := surface.DrawSprite(texture, interfaces.SpriteOp{
		Src:         e.sprite.SourceRect(animationFrame),
		Dst:         dst,
		RotationDeg: e.rotation,
		Tint:        e.tint,
	})
	if err != nil {
		return err
	}

	if frame.Debug {
		cx := dst.Min.X + dst.Dx()/2
		cy := dst.Min.Y + dst.Dy()/2
		surface.FillRect(float64(cx), float64(cy), 3, 3, debugMarkerColor)
	}
	return nil
}

func (e *Entity) Name() string {
	return e.name
}

// IsDestroyed is always false: an entity goes away with its owner.
func (e *Entity) IsDestroyed() bool {
	return false
}
