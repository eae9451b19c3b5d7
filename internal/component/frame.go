package component

import "go-arena-shooter/internal/utils"

// FrameContext is the per-frame snapshot written by the game loop and read by
// every object during update and draw. Objects never keep it past the frame.
type FrameContext struct {
	PlayerPosition utils.Vec2
	CameraOffset   utils.Vec2
	Cursor         utils.Vec2 // screen space
	Debug          bool       // draw sprite-centre markers
}

// CursorWorld translates the cursor into world space.
func (f *FrameContext) CursorWorld() utils.Vec2 {
	return f.Cursor.Add(f.CameraOffset)
}

// ToScreen maps a world position into camera space.
func (f *FrameContext) ToScreen(world utils.Vec2) utils.Vec2 {
	return world.Sub(f.CameraOffset)
}
