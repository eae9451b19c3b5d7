package interfaces

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/utils"
)

// GameObject is the contract every object owned by the game loop satisfies.
// Extra behaviour (bullet hits, enemy contact) is reached through a type
// assertion on the concrete type, never through this interface.
type GameObject interface {
	Update(deltaTime float64, frame *component.FrameContext)
	Draw(surface Surface, texture Texture, animationFrame int, frame *component.FrameContext, scale float64) error
	Name() string
	IsDestroyed() bool
}

// Damageable is a GameObject that carries health and can be hit.
type Damageable interface {
	GameObject
	TakeDamage(damage int)
	CurrentHealth() int
	Kind() component.EntityKind
	Position() utils.Vec2
}
