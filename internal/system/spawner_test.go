package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"

	"go.uber.org/zap"
)

func newTestSpawner(settings config.SpawnerSettings) *EnemySpawner {
	return NewEnemySpawner(settings, utils.NewPRNGService(1), zap.NewNop())
}

func defaultSpawnerSettings() config.SpawnerSettings {
	return config.DefaultSettings().Spawner
}

func TestSpawnWaitsForCountdown(t *testing.T) {
	s := newTestSpawner(defaultSpawnerSettings())
	frame := &component.FrameContext{}

	if s.Countdown() != 2.0 {
		t.Fatalf("initial countdown = %v, want interval min 2.0", s.Countdown())
	}
	for i := 0; i < 3; i++ {
		if batch := s.SpawnEnemies(0.5, frame); batch != nil {
			t.Fatalf("spawned early at step %d", i)
		}
	}
	s.SpawnEnemies(0.5, frame) // countdown reaches 0
	batch := s.SpawnEnemies(0.5, frame)
	if len(batch) != config.SpawnBatchSize {
		t.Fatalf("batch size = %d, want %d", len(batch), config.SpawnBatchSize)
	}
	if c := s.Countdown(); c < 2.0 || c >= 4.0 {
		t.Fatalf("new countdown %v outside [2, 4)", c)
	}
}

func TestSpawnedEnemiesStayInRanges(t *testing.T) {
	settings := defaultSpawnerSettings()
	settings.Interval = config.Range{Min: 0, Max: 0}
	s := newTestSpawner(settings)
	frame := &component.FrameContext{PlayerPosition: utils.NewVec2(500, -200)}

	seen := map[string]bool{}
	for round := 0; round < 20; round++ {
		batch := s.SpawnEnemies(0.016, frame)
		if len(batch) != 2 {
			t.Fatalf("round %d: batch size %d", round, len(batch))
		}
		if batch[0].MaxHealth() != batch[1].MaxHealth() || batch[0].Speed() != batch[1].Speed() {
			t.Fatalf("batch members rolled different stats")
		}
		for _, e := range batch {
			if seen[e.Name()] {
				t.Fatalf("duplicate enemy name %q", e.Name())
			}
			seen[e.Name()] = true

			if h := e.MaxHealth(); h < 10 || h >= 20 {
				t.Fatalf("health %d outside [10, 20)", h)
			}
			if v := e.Speed(); v < 20 || v >= 40 {
				t.Fatalf("speed %v outside [20, 40)", v)
			}
			p := e.Position()
			if p.X < 400 || p.X >= 600 || p.Y < -300 || p.Y >= -100 {
				t.Fatalf("position %+v outside the box around the player", p)
			}
		}
	}
	if !seen["enemy_base_0"] || !seen["enemy_base_39"] {
		t.Fatalf("names are not sequential from enemy_base_0")
	}
}

func TestSpawnEnemySingle(t *testing.T) {
	settings := defaultSpawnerSettings()
	settings.Interval = config.Range{Min: 0, Max: 1}
	s := newTestSpawner(settings)
	if e := s.SpawnEnemy(0.1, &component.FrameContext{}); e == nil || e.Name() != "enemy_base_0" {
		t.Fatalf("SpawnEnemy = %v", e)
	}
}

func TestIncreaseDifficultyDeltas(t *testing.T) {
	s := newTestSpawner(defaultSpawnerSettings())
	s.IncreaseDifficulty()

	if s.SpawnInterval != (config.Range{Min: 1.75, Max: 3.75}) {
		t.Errorf("interval = %+v", s.SpawnInterval)
	}
	if s.Health != (config.IntRange{Min: 15, Max: 25}) {
		t.Errorf("health = %+v", s.Health)
	}
	if s.Speed != (config.Range{Min: 25, Max: 45}) {
		t.Errorf("speed = %+v", s.Speed)
	}
}

func TestIncreaseDifficultyClamps(t *testing.T) {
	s := newTestSpawner(config.SpawnerSettings{
		Interval: config.Range{Min: 0.6, Max: 1.6},
		Health:   config.IntRange{Min: 38, Max: 48},
		Speed:    config.Range{Min: 68, Max: 88},
	})

	for i := 0; i < 5; i++ {
		s.IncreaseDifficulty()
		if s.SpawnInterval.Min != 0.5 || s.Health.Min != 40 || s.Speed.Min != 70 {
			t.Fatalf("call %d: interval=%+v health=%+v speed=%+v", i, s.SpawnInterval, s.Health, s.Speed)
		}
		if s.Health.Max != 50 || s.Speed.Max != 90 {
			t.Fatalf("call %d: range widths changed: health=%+v speed=%+v", i, s.Health, s.Speed)
		}
	}
}

func TestCheckpointEventIncreasesDifficulty(t *testing.T) {
	s := newTestSpawner(defaultSpawnerSettings())
	d := event.NewDispatcher()
	d.Subscribe(event.CheckpointReached, s)

	d.Dispatch(event.Event{Type: event.EnemyKilled})
	if s.Health.Min != 10 {
		t.Fatalf("difficulty changed on unrelated event")
	}
	d.Dispatch(event.Event{Type: event.CheckpointReached, Data: 50})
	if s.Health.Min != 15 {
		t.Fatalf("health min = %d after checkpoint, want 15", s.Health.Min)
	}
}
