// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	game "go-arena-shooter/internal/app"
	"go-arena-shooter/internal/assets"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/fonts"
	"go-arena-shooter/internal/logger"
	"go-arena-shooter/internal/state"
	"go-arena-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update measures wall-clock time since the previous tick and passes it on
// unclamped.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		configPath string
		logPath    string
		pprofAddr  string
		seed       int64
	)
	flag.StringVar(&configPath, "config", "arena.yaml", "path to the YAML settings file")
	flag.StringVar(&logPath, "log", "", "log file path (overrides the settings file)")
	flag.StringVar(&pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Int64Var(&seed, "seed", 0, "random seed (overrides the settings file; 0 keeps it)")
	flag.Parse()

	settings, found, loadErr := config.Load(configPath)
	if logPath != "" {
		settings.LogFile = logPath
	}
	if seed != 0 {
		settings.Seed = seed
	}

	log := logger.New(settings.LogFile, settings.Debug)
	defer logger.Sync(log)

	if loadErr != nil {
		log.Fatal("failed to load settings", zap.String("path", configPath), zap.Error(loadErr))
	}
	if !found {
		log.Info("settings file not found, using defaults", zap.String("path", configPath))
	}

	if pprofAddr != "" {
		go func() {
			log.Warn("pprof server stopped", zap.Error(http.ListenAndServe(pprofAddr, nil)))
		}()
	}

	textures := assets.NewTextureManager(log)
	if err := textures.LoadAll(settings.Assets); err != nil {
		log.Fatal("failed to load textures", zap.Error(err))
	}
	defer textures.Dispose()

	fontFace, err := fonts.Load(settings.Assets.Font, settings.Assets.FontSize)
	if err != nil {
		log.Fatal("failed to load font", zap.Error(err))
	}

	gameLogic := game.NewGame(settings, utils.NewPRNGService(settings.Seed), log)

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, gameLogic, textures, fontFace, log))
	defer sm.SetState(nil)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TargetTPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal("game loop failed", zap.Error(err))
	}
	log.Info("game exited", zap.Int("score", gameLogic.Score()))
}
