// internal/assets/texture_manager.go
package assets

import (
	"fmt"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// TextureManager loads and caches textures under caller-chosen names.
type TextureManager struct {
	textures map[string]*ebiten.Image
	logger   *zap.Logger
}

// NewTextureManager creates an empty manager.
func NewTextureManager(logger *zap.Logger) *TextureManager {
	return &TextureManager{
		textures: make(map[string]*ebiten.Image),
		logger:   logger,
	}
}

// LoadTexture reads an image file and registers it as name. A name that is
// already registered is reported and left untouched.
func (m *TextureManager) LoadTexture(name, path string) error {
	if _, ok := m.textures[name]; ok {
		m.logger.Warn("texture already loaded", zap.String("name", name), zap.String("path", path))
		return nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load texture %q from %s: %w", name, path, err)
	}

	m.textures[name] = img
	m.logger.Debug("texture loaded",
		zap.String("name", name),
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return nil
}

// Texture returns the texture registered as name.
func (m *TextureManager) Texture(name string) (interfaces.Texture, bool) {
	img, ok := m.textures[name]
	if !ok {
		return nil, false
	}
	return img, true
}

// LoadAll registers the player, enemy and bullet textures.
func (m *TextureManager) LoadAll(settings config.AssetSettings) error {
	sheets := []struct{ name, path string }{
		{config.TexturePlayer, settings.PlayerSheet},
		{config.TextureDefault, settings.DefaultSheet},
		{config.TextureBullet, settings.BulletSprite},
	}
	for _, s := range sheets {
		if err := m.LoadTexture(s.name, s.path); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases every loaded texture.
func (m *TextureManager) Dispose() {
	for name, img := range m.textures {
		img.Deallocate()
		delete(m.textures, name)
	}
}
