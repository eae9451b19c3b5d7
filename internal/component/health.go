package component

// Health tracks maximum and current hit points. Current may go negative.
type Health struct {
	Max     int
	Current int
}

func NewHealth(max int) Health {
	return Health{Max: max, Current: max}
}

func (h *Health) TakeDamage(damage int) {
	h.Current -= damage
}

// Depleted reports whether the owner counts as destroyed.
func (h Health) Depleted() bool {
	return h.Current <= 0
}
