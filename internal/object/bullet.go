package object

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"
)

// Bullet flies straight until it hits something not fired by its owner's
// kind or runs out of range.
type Bullet struct {
	entity    *entity.Entity
	owner     component.EntityKind
	life      float64 // range in pixels
	travelled float64
	damage    int
	destroyed bool
}

func NewBullet(direction utils.Vec2, owner component.EntityKind, speed float64, start utils.Vec2) *Bullet {
	e := entity.NewWithSpeed("bullet", speed, component.KindBullet)
	e.ChangeDirection(direction)
	e.SetPosition(start)
	e.SetSprite(config.BulletFrameWidth, config.BulletFrameHeight)
	return &Bullet{
		entity: e,
		owner:  owner,
		life:   config.BulletLife,
		damage: config.BulletDamage,
	}
}

func (b *Bullet) Entity() *entity.Entity {
	return b.entity
}

func (b *Bullet) Owner() component.EntityKind {
	return b.owner
}

func (b *Bullet) Life() float64 {
	return b.life
}

// Travelled is the distance the bullet is credited with, speed times elapsed time.
func (b *Bullet) Travelled() float64 {
	return b.travelled
}

func (b *Bullet) Damage() int {
	return b.damage
}

func (b *Bullet) IsOutOfRange() bool {
	return b.travelled >= b.life
}

// DamageEnemy hits target when it is close enough and not of the owner's kind.
// The bullet is spent by the first hit.
func (b *Bullet) DamageEnemy(target interfaces.Damageable) bool {
	if b.destroyed {
		return false
	}
	if utils.Distance(b.entity.Position(), target.Position()) >= config.BulletHitRange {
		return false
	}
	if target.Kind() == b.owner {
		return false
	}
	target.TakeDamage(b.damage)
	b.damage = 0
	b.destroyed = true
	return true
}

func (b *Bullet) Update(deltaTime float64, frame *component.FrameContext) {
	b.entity.Update(deltaTime, frame)
	b.travelled += b.entity.Speed() * deltaTime
}

func (b *Bullet) Draw(surface interfaces.Surface, texture interfaces.Texture, animationFrame int, frame *component.FrameContext, scale float64) error {
	return b.entity.Draw(surface, texture, animationFrame, frame, scale)
}

func (b *Bullet) Name() string {
	return b.entity.Name()
}

func (b *Bullet) IsDestroyed() bool {
	return b.destroyed || b.IsOutOfRange()
}
