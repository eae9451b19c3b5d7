// internal/component/player.go
package component

// PlayerState is the player's action mode. The value doubles as the sprite
// sheet column drawn for the player.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerInteraction
	PlayerShoot
	PlayerReload
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerInteraction:
		return "Interaction"
	case PlayerShoot:
		return "Shoot"
	case PlayerReload:
		return "Reload"
	}
	return "Unknown"
}
