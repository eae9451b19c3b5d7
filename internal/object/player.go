package object

import (
	"image/color"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/utils"
)

const defaultFireRate = 0.5

var deadTint = color.RGBA{90, 90, 90, 255}

// Player is the input-driven character. Movement, aim and firing are
// separate: key events set the heading, the cursor sets the facing, and
// clicks fire along the facing while in Shoot state.
type Player struct {
	entity   *entity.Entity
	state    component.PlayerState
	fireRate float64 // seconds between shots
	cooldown float64 // time left before the next shot
	health   component.Health
}

var _ interfaces.Damageable = (*Player)(nil)

func NewPlayer(name string, speed float64, health int) *Player {
	return NewPlayerWithFireRate(name, speed, health, defaultFireRate)
}

func NewPlayerWithFireRate(name string, speed float64, health int, fireRate float64) *Player {
	e := entity.NewWithSpeed(name, speed, component.KindPlayer)
	e.SetSprite(config.CharacterFrameWidth, config.CharacterFrameHeight)
	return &Player{
		entity:   e,
		state:    component.PlayerIdle,
		fireRate: fireRate,
		health:   component.NewHealth(health),
	}
}

func (p *Player) Entity() *entity.Entity {
	return p.entity
}

func (p *Player) State() component.PlayerState {
	return p.state
}

func (p *Player) FireRate() float64 {
	return p.fireRate
}

func (p *Player) SetFireRate(rate float64) {
	p.fireRate = rate
}

// Cooldown returns the time left before the player may fire again.
func (p *Player) Cooldown() float64 {
	return p.cooldown
}

// Move applies a movement key event. Each key only touches its own axis so
// diagonals survive a partial release.
func (p *Player) Move(ev input.Event) {
	dir := p.entity.Direction()
	switch ev.Type {
	case input.KeyDown:
		switch ev.Key {
		case input.KeyA:
			dir.X = -1
		case input.KeyD:
			dir.X = 1
		case input.KeyS:
			dir.Y = 1
		case input.KeyW:
			dir.Y = -1
		default:
			return
		}
	case input.KeyUp:
		switch ev.Key {
		case input.KeyA, input.KeyD:
			dir.X = 0
		case input.KeyS, input.KeyW:
			dir.Y = 0
		default:
			return
		}
	default:
		return
	}
	p.entity.ChangeDirection(dir)
}

// Control handles the state toggle and the fire trigger. It returns the
// bullet fired by this event, or nil.
func (p *Player) Control(ev input.Event) *Bullet {
	switch {
	case ev.Type == input.KeyDown && ev.Key == input.KeyF:
		if p.state != component.PlayerShoot {
			p.state = component.PlayerShoot
		} else {
			p.state = component.PlayerIdle
		}
	case ev.Type == input.MouseButtonDown && ev.Button == input.MouseLeft:
		return p.Fire()
	}
	return nil
}

// Fire spawns a bullet ahead and to the left of the player when in Shoot
// state and off cooldown.
func (p *Player) Fire() *Bullet {
	if p.state != component.PlayerShoot || p.cooldown > 0 {
		return nil
	}

	forward := p.entity.ForwardDirection()
	right := p.entity.RightDirection()
	offset := forward.Scale(config.BulletForwardOffset).Add(right.Scale(config.BulletRightOffset))
	start := p.entity.Position().Add(offset)

	p.cooldown = p.fireRate
	return NewBullet(forward, component.KindPlayer, config.BulletSpeed, start)
}

// Update moves the player, aims it at the cursor and ticks the fire cooldown.
func (p *Player) Update(deltaTime float64, frame *component.FrameContext) {
	p.entity.Update(deltaTime, frame)

	relative := frame.CursorWorld().Sub(p.entity.Position())
	p.entity.SetRotation(utils.AngleDeg(relative))

	if p.cooldown > 0 {
		p.cooldown -= deltaTime
	}
}

// Draw uses the player's state as the sheet column.
func (p *Player) Draw(surface interfaces.Surface, texture interfaces.Texture, animationFrame int, frame *component.FrameContext, scale float64) error {
	if p.IsDestroyed() {
		p.entity.SetTint(deadTint)
	}
	return p.entity.Draw(surface, texture, int(p.state), frame, scale)
}

func (p *Player) Name() string {
	return p.entity.Name()
}

func (p *Player) IsDestroyed() bool {
	return p.health.Depleted()
}

func (p *Player) TakeDamage(damage int) {
	p.health.TakeDamage(damage)
}

func (p *Player) CurrentHealth() int {
	return p.health.Current
}

func (p *Player) MaxHealth() int {
	return p.health.Max
}

func (p *Player) Kind() component.EntityKind {
	return p.entity.Kind()
}

func (p *Player) Position() utils.Vec2 {
	return p.entity.Position()
}
