// internal/app/game.go
package app

import (
	"fmt"
	"image/color"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/object"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{0, 0, 0, 255}

// TextureSource looks textures up by their registered name.
type TextureSource interface {
	Texture(name string) (interfaces.Texture, bool)
}

// Game owns every live object and runs the per-frame pipeline.
type Game struct {
	SessionID       string
	Player          *object.Player
	Camera          *object.Camera
	Spawner         *system.EnemySpawner
	CollisionSystem *system.CollisionSystem
	EventDispatcher *event.Dispatcher
	HUD             *ui.HUD

	objects        []interfaces.GameObject
	frame          component.FrameContext
	score          int
	nextCheckpoint int
	gameOver       bool
	logger         *zap.Logger
}

// NewGame initializes a session: the player at the origin, a static marker
// entity, and a spawner subscribed to score checkpoints.
func NewGame(settings config.Settings, rng *utils.PRNGService, logger *zap.Logger) *Game {
	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))

	ps := settings.Player
	player := object.NewPlayerWithFireRate(ps.Name, ps.Speed, ps.Health, ps.FireRate)

	marker := entity.New("origin_marker", component.KindOther)
	marker.SetSprite(config.CharacterFrameWidth, config.CharacterFrameHeight)

	dispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       sessionID,
		Player:          player,
		Camera:          object.NewCamera(config.ScreenWidth, config.ScreenHeight),
		Spawner:         system.NewEnemySpawner(settings.Spawner, rng, logger),
		CollisionSystem: system.NewCollisionSystem(),
		EventDispatcher: dispatcher,
		HUD:             ui.NewHUD(config.ScreenWidth, config.ScreenHeight),
		objects:         []interfaces.GameObject{marker},
		frame:           component.FrameContext{Debug: settings.Debug},
		nextCheckpoint:  config.ScoreCheckpointStep,
		logger:          logger,
	}

	listener := &GameEventListener{logger: logger}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.BulletFired, listener)
	dispatcher.Subscribe(event.PlayerDied, listener)
	dispatcher.Subscribe(event.CheckpointReached, listener)
	dispatcher.Subscribe(event.CheckpointReached, g.Spawner)

	logger.Info("game started",
		zap.String("player", ps.Name),
		zap.Int("health", ps.Health),
		zap.Float64("speed", ps.Speed),
	)
	return g
}

// HandleEvents feeds one frame of input to the player and the frame context.
// It returns false when the player asked to quit.
func (g *Game) HandleEvents(events []input.Event) bool {
	for _, ev := range events {
		if ev.IsQuit() {
			g.logger.Info("quit requested", zap.Int("score", g.score))
			return false
		}

		g.Player.Move(ev)
		if !g.Player.IsDestroyed() {
			if bullet := g.Player.Control(ev); bullet != nil {
				g.objects = append(g.objects, bullet)
				g.EventDispatcher.Dispatch(event.Event{Type: event.BulletFired})
			}
		}

		if ev.Type == input.MouseMotion {
			g.frame.Cursor = ev.Cursor
		}
	}
	return true
}

// Update progresses the world by one frame. Once the player is destroyed the
// world freezes; rendering carries on.
func (g *Game) Update(deltaTime float64) {
	if g.Player.IsDestroyed() {
		if !g.gameOver {
			g.gameOver = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: g.score})
		}
		return
	}

	// The camera offset is read before the camera moves, so objects see the
	// previous frame's offset.
	g.frame.PlayerPosition = g.Player.Position()
	g.frame.CameraOffset = g.Camera.Offset()
	g.Camera.Update(deltaTime, &g.frame)

	g.Player.Update(deltaTime, &g.frame)
	for _, obj := range g.objects {
		obj.Update(deltaTime, &g.frame)
		if enemy, ok := obj.(*object.Enemy); ok {
			enemy.DamagePlayer(g.Player)
		}
	}

	g.cleanupDestroyedObjects()

	if batch := g.Spawner.SpawnEnemies(deltaTime, &g.frame); batch != nil {
		for _, enemy := range batch {
			g.objects = append(g.objects, enemy)
		}
	}

	bullets, enemies := g.CollisionSystem.Partition(g.objects)
	if hits := g.CollisionSystem.Sweep(bullets, enemies); hits > 0 {
		g.logger.Debug("bullet hits", zap.Int("hits", hits), zap.Int("bullets", len(bullets)), zap.Int("enemies", len(enemies)))
	}

	g.checkScoreCheckpoint()
}

// Render draws the whole frame: player, every live object, then the HUD.
func (g *Game) Render(surface interfaces.Surface, textures TextureSource) error {
	playerTex, err := requireTexture(textures, config.TexturePlayer)
	if err != nil {
		return err
	}
	defaultTex, err := requireTexture(textures, config.TextureDefault)
	if err != nil {
		return err
	}
	bulletTex, err := requireTexture(textures, config.TextureBullet)
	if err != nil {
		return err
	}

	surface.Clear(backgroundColor)

	if err := g.Player.Draw(surface, playerTex, 0, &g.frame, 1.0); err != nil {
		return fmt.Errorf("failed to draw player: %w", err)
	}

	for _, obj := range g.objects {
		var err error
		if bullet, ok := obj.(*object.Bullet); ok {
			err = bullet.Draw(surface, bulletTex, 0, &g.frame, config.BulletRenderScale)
		} else {
			err = obj.Draw(surface, defaultTex, 0, &g.frame, 1.0)
		}
		if err != nil {
			return fmt.Errorf("failed to draw %s: %w", obj.Name(), err)
		}
	}

	g.HUD.Draw(surface, g.Player.CurrentHealth(), g.Player.MaxHealth(), g.score, g.Player.IsDestroyed())
	return nil
}

// --- Public Accessors & Mutators ---

func (g *Game) Score() int {
	return g.score
}

func (g *Game) NextCheckpoint() int {
	return g.nextCheckpoint
}

func (g *Game) IsGameOver() bool {
	return g.Player.IsDestroyed()
}

// Objects returns the live objects, excluding the player and camera.
func (g *Game) Objects() []interfaces.GameObject {
	out := make([]interfaces.GameObject, len(g.objects))
	copy(out, g.objects)
	return out
}

// AddObject hands ownership of obj to the game.
func (g *Game) AddObject(obj interfaces.GameObject) {
	g.objects = append(g.objects, obj)
}

// Frame returns the current frame context snapshot.
func (g *Game) Frame() component.FrameContext {
	return g.frame
}

// --- Private Helper Functions ---

// cleanupDestroyedObjects retires every destroyed object and credits kills.
func (g *Game) cleanupDestroyedObjects() {
	kept := g.objects[:0]
	for _, obj := range g.objects {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
			continue
		}
		if enemy, ok := obj.(*object.Enemy); ok {
			g.score += config.EnemyKillScore
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{Name: enemy.Name(), Score: g.score},
			})
		}
	}
	for i := len(kept); i < len(g.objects); i++ {
		g.objects[i] = nil
	}
	g.objects = kept
}

// checkScoreCheckpoint raises at most one checkpoint per frame.
func (g *Game) checkScoreCheckpoint() {
	if g.score < g.nextCheckpoint {
		return
	}
	reached := g.nextCheckpoint
	g.nextCheckpoint += config.ScoreCheckpointStep
	g.EventDispatcher.Dispatch(event.Event{Type: event.CheckpointReached, Data: reached})
}

func requireTexture(textures TextureSource, name string) (interfaces.Texture, error) {
	tex, ok := textures.Texture(name)
	if !ok {
		return nil, fmt.Errorf("texture %q is not loaded", name)
	}
	return tex, nil
}

// GameEventListener logs the events raised during play.
type GameEventListener struct {
	logger *zap.Logger
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			l.logger.Info("enemy killed", zap.String("enemy", data.Name), zap.Int("score", data.Score))
		}
	case event.BulletFired:
		l.logger.Debug("bullet fired")
	case event.PlayerDied:
		l.logger.Info("player died", zap.Any("score", e.Data))
	case event.CheckpointReached:
		l.logger.Info("score checkpoint reached", zap.Any("checkpoint", e.Data))
	}
}
