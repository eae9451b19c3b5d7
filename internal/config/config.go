// internal/config/config.go
package config

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Arena Shooter"
	TargetTPS    = 60

	// Enemy melee: enemies stop inside this radius and hit the player.
	EnemyContactRange  = 15.0
	EnemyContactDamage = 10
	EnemyKillScore     = 10

	BulletHitRange      = 20.0
	BulletDamage        = 10
	BulletLife          = 200.0 // pixels travelled before the bullet expires
	BulletSpeed         = 200.0 // pixels per second
	BulletForwardOffset = 20.0
	BulletRightOffset   = -12.0
	BulletRenderScale   = 0.2

	ScoreCheckpointStep = 50

	SpawnBatchSize = 2
	SpawnBoxHalf   = 100.0 // enemies appear within ±SpawnBoxHalf of the player

	SpawnIntervalStep  = 0.25
	SpawnIntervalFloor = 0.5
	EnemyHealthStep    = 5
	EnemyHealthCap     = 40
	EnemySpeedStep     = 5.0
	EnemySpeedCap      = 70.0

	// Sprite frame sizes in the sheets.
	CharacterFrameWidth  = 51
	CharacterFrameHeight = 43
	BulletFrameWidth     = 100
	BulletFrameHeight    = 50

	HUDMargin     = 10
	HUDLineHeight = 24
)

// Texture keys the renderer looks up every frame.
const (
	TexturePlayer  = "player"
	TextureDefault = "default"
	TextureBullet  = "bullet"
)
