package system

import (
	"fmt"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/object"
	"go-arena-shooter/internal/utils"

	"go.uber.org/zap"
)

// EnemySpawner releases enemies on a randomized timer. Every stat is drawn
// from a range that IncreaseDifficulty shifts toward harder values.
type EnemySpawner struct {
	SpawnInterval config.Range
	Health        config.IntRange
	Speed         config.Range

	countdown float64
	nextID    int
	rng       *utils.PRNGService
	logger    *zap.Logger
}

func NewEnemySpawner(settings config.SpawnerSettings, rng *utils.PRNGService, logger *zap.Logger) *EnemySpawner {
	return &EnemySpawner{
		SpawnInterval: settings.Interval,
		Health:        settings.Health,
		Speed:         settings.Speed,
		countdown:     settings.Interval.Min,
		rng:           rng,
		logger:        logger,
	}
}

// Countdown is the time left before the next spawn.
func (s *EnemySpawner) Countdown() float64 {
	return s.countdown
}

// SpawnEnemies returns a batch when the countdown has run out, nil otherwise.
// The whole batch shares one health and speed roll.
func (s *EnemySpawner) SpawnEnemies(deltaTime float64, frame *component.FrameContext) []*object.Enemy {
	if s.countdown > 0 {
		s.countdown -= deltaTime
		return nil
	}

	health := s.rng.RangeInt(s.Health.Min, s.Health.Max)
	speed := s.rng.RangeFloat(s.Speed.Min, s.Speed.Max)

	batch := make([]*object.Enemy, 0, config.SpawnBatchSize)
	for i := 0; i < config.SpawnBatchSize; i++ {
		batch = append(batch, s.newEnemy(health, speed, frame))
	}
	s.resetCountdown()
	return batch
}

// SpawnEnemy is the single-enemy variant of SpawnEnemies.
func (s *EnemySpawner) SpawnEnemy(deltaTime float64, frame *component.FrameContext) *object.Enemy {
	if s.countdown > 0 {
		s.countdown -= deltaTime
		return nil
	}
	health := s.rng.RangeInt(s.Health.Min, s.Health.Max)
	speed := s.rng.RangeFloat(s.Speed.Min, s.Speed.Max)
	enemy := s.newEnemy(health, speed, frame)
	s.resetCountdown()
	return enemy
}

func (s *EnemySpawner) newEnemy(health int, speed float64, frame *component.FrameContext) *object.Enemy {
	name := fmt.Sprintf("enemy_base_%d", s.nextID)
	s.nextID++

	enemy := object.NewEnemy(name, speed, health)
	p := frame.PlayerPosition
	enemy.Entity().SetPosition(utils.NewVec2(
		s.rng.RangeFloat(p.X-config.SpawnBoxHalf, p.X+config.SpawnBoxHalf),
		s.rng.RangeFloat(p.Y-config.SpawnBoxHalf, p.Y+config.SpawnBoxHalf),
	))

	s.logger.Debug("enemy spawned",
		zap.String("name", name),
		zap.Int("health", health),
		zap.Float64("speed", speed),
		zap.Float64("x", enemy.Position().X),
		zap.Float64("y", enemy.Position().Y),
	)
	return enemy
}

func (s *EnemySpawner) resetCountdown() {
	s.countdown = s.rng.RangeFloat(s.SpawnInterval.Min, s.SpawnInterval.Max)
}

// IncreaseDifficulty shortens spawn intervals and raises enemy health and
// speed. Each range moves as a whole and stops at its limit.
func (s *EnemySpawner) IncreaseDifficulty() {
	if step := clampStep(config.SpawnIntervalStep, s.SpawnInterval.Min-config.SpawnIntervalFloor); step > 0 {
		s.SpawnInterval.Min -= step
		s.SpawnInterval.Max -= step
	}
	if step := clampStepInt(config.EnemyHealthStep, config.EnemyHealthCap-s.Health.Min); step > 0 {
		s.Health.Min += step
		s.Health.Max += step
	}
	if step := clampStep(config.EnemySpeedStep, config.EnemySpeedCap-s.Speed.Min); step > 0 {
		s.Speed.Min += step
		s.Speed.Max += step
	}

	s.logger.Info("difficulty increased",
		zap.Float64("interval_min", s.SpawnInterval.Min),
		zap.Float64("interval_max", s.SpawnInterval.Max),
		zap.Int("health_min", s.Health.Min),
		zap.Int("health_max", s.Health.Max),
		zap.Float64("speed_min", s.Speed.Min),
		zap.Float64("speed_max", s.Speed.Max),
	)
}

// OnEvent escalates difficulty on every checkpoint.
func (s *EnemySpawner) OnEvent(e event.Event) {
	if e.Type == event.CheckpointReached {
		s.IncreaseDifficulty()
	}
}

func clampStep(step, room float64) float64 {
	if room < step {
		return room
	}
	return step
}

func clampStepInt(step, room int) int {
	if room < step {
		return room
	}
	return step
}
