package system

import (
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/object"
)

// CollisionSystem runs the bullet-versus-enemy sweep over lists that were
// collected from the object collection beforehand, so no element is
// narrowed twice at once.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Partition splits objects into bullets and enemies; everything else is ignored.
func (s *CollisionSystem) Partition(objects []interfaces.GameObject) ([]*object.Bullet, []*object.Enemy) {
	var bullets []*object.Bullet
	var enemies []*object.Enemy
	for _, obj := range objects {
		switch o := obj.(type) {
		case *object.Bullet:
			bullets = append(bullets, o)
		case *object.Enemy:
			enemies = append(enemies, o)
		}
	}
	return bullets, enemies
}

// Sweep checks every bullet against every enemy and returns the number of
// hits. A bullet that hits is spent and deals no further damage, but stays
// in the sweep until the next cleanup retires it.
func (s *CollisionSystem) Sweep(bullets []*object.Bullet, enemies []*object.Enemy) int {
	hits := 0
	for _, b := range bullets {
		for _, e := range enemies {
			if b.DamageEnemy(e) {
				hits++
			}
		}
	}
	return hits
}
