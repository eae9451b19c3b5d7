package component

// EntityKind tags what an entity is, used for friendly-fire checks and auto-rotation.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindItem
	KindOther
	KindBullet
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindItem:
		return "Item"
	case KindOther:
		return "Other"
	case KindBullet:
		return "Bullet"
	}
	return "Unknown"
}
