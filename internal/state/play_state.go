// internal/state/play_state.go
package state

import (
	game "go-arena-shooter/internal/app"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

var keyBindings = []struct {
	ebitenKey ebiten.Key
	key       input.Key
}{
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyF, input.KeyF},
	{ebiten.KeyEscape, input.KeyEscape},
}

var mouseBindings = []struct {
	ebitenButton ebiten.MouseButton
	button       input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
}

// PlayState drives a running game from ebiten's input and draws it.
type PlayState struct {
	sm       *StateMachine
	game     *game.Game
	textures game.TextureSource
	surface  *render.Surface
	logger   *zap.Logger

	events    []input.Event
	cursorX   int
	cursorY   int
	hasCursor bool
}

func NewPlayState(sm *StateMachine, g *game.Game, textures game.TextureSource, fontFace font.Face, logger *zap.Logger) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     g,
		textures: textures,
		surface:  render.NewSurface(nil, fontFace),
		logger:   logger,
	}
}

func (s *PlayState) Enter() {
	s.logger.Debug("entering play state", zap.String("session", s.game.SessionID))
}

// Update collects this tick's input, hands it to the game and advances the
// world. Quitting ends the loop with ebiten.Termination.
func (s *PlayState) Update(deltaTime float64) error {
	if !s.game.HandleEvents(s.pollEvents()) {
		return ebiten.Termination
	}
	s.game.Update(deltaTime)
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.surface.Reset(screen)
	if err := s.game.Render(s.surface, s.textures); err != nil {
		s.logger.Fatal("render failed", zap.Error(err))
	}
}

func (s *PlayState) Exit() {
	s.logger.Info("leaving play state", zap.Int("score", s.game.Score()))
}

func (s *PlayState) pollEvents() []input.Event {
	s.events = s.events[:0]

	if ebiten.IsWindowBeingClosed() {
		s.events = append(s.events, input.Event{Type: input.Quit})
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebitenKey) {
			s.events = append(s.events, input.KeyDownEvent(b.key))
		}
		if inpututil.IsKeyJustReleased(b.ebitenKey) {
			s.events = append(s.events, input.KeyUpEvent(b.key))
		}
	}

	x, y := ebiten.CursorPosition()
	if !s.hasCursor || x != s.cursorX || y != s.cursorY {
		s.cursorX, s.cursorY, s.hasCursor = x, y, true
		s.events = append(s.events, input.MotionEvent(float64(x), float64(y)))
	}

	for _, b := range mouseBindings {
		if inpututil.IsMouseButtonJustPressed(b.ebitenButton) {
			ev := input.ClickEvent(b.button)
			ev.Cursor = utils.NewVec2(float64(x), float64(y))
			s.events = append(s.events, ev)
		}
	}
	return s.events
}
