// internal/event/types.go
package event

const (
	EnemyKilled       EventType = "EnemyKilled"       // Data: EnemyKilledData
	BulletFired       EventType = "BulletFired"       // Data: nil
	PlayerDied        EventType = "PlayerDied"        // Data: int final score
	CheckpointReached EventType = "CheckpointReached" // Data: int checkpoint score
)

// EnemyKilledData describes a retired enemy.
type EnemyKilledData struct {
	Name  string
	Score int // score after crediting the kill
}
