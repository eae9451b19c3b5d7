package object

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"
)

// Enemy chases the player and blows itself up on contact.
type Enemy struct {
	entity *entity.Entity
	health component.Health
	speed  float64
}

var _ interfaces.Damageable = (*Enemy)(nil)

func NewEnemy(name string, speed float64, health int) *Enemy {
	e := entity.NewWithSpeed(name, speed, component.KindEnemy)
	e.SetSprite(config.CharacterFrameWidth, config.CharacterFrameHeight)
	return &Enemy{
		entity: e,
		health: component.NewHealth(health),
		speed:  speed,
	}
}

func (e *Enemy) Entity() *entity.Entity {
	return e.entity
}

func (e *Enemy) Speed() float64 {
	return e.speed
}

func (e *Enemy) MaxHealth() int {
	return e.health.Max
}

// Update heads toward the player, but only moves while outside melee range.
func (e *Enemy) Update(deltaTime float64, frame *component.FrameContext) {
	toPlayer := frame.PlayerPosition.Sub(e.entity.Position())
	e.entity.ChangeDirection(utils.Normalize(toPlayer))

	if utils.Distance(e.entity.Position(), frame.PlayerPosition) > config.EnemyContactRange {
		e.entity.Update(deltaTime, frame)
	}
}

// DamagePlayer hits the player when in melee range. Contact always kills the
// enemy, whatever health it had left.
func (e *Enemy) DamagePlayer(player interfaces.Damageable) bool {
	if utils.Distance(e.entity.Position(), player.Position()) >= config.EnemyContactRange {
		return false
	}
	player.TakeDamage(config.EnemyContactDamage)
	e.health.Current = -1
	return true
}

func (e *Enemy) Draw(surface interfaces.Surface, texture interfaces.Texture, animationFrame int, frame *component.FrameContext, scale float64) error {
	return e.entity.Draw(surface, texture, animationFrame, frame, scale)
}

func (e *Enemy) Name() string {
	return e.entity.Name()
}

func (e *Enemy) IsDestroyed() bool {
	return e.health.Depleted()
}

func (e *Enemy) TakeDamage(damage int) {
	e.health.TakeDamage(damage)
}

func (e *Enemy) CurrentHealth() int {
	return e.health.Current
}

func (e *Enemy) Kind() component.EntityKind {
	return e.entity.Kind()
}

func (e *Enemy) Position() utils.Vec2 {
	return e.entity.Position()
}
