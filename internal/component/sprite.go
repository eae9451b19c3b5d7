package component

import "image"

// Sprite describes the frame cell of an entity inside its sprite sheet.
// Sheets are a single row of frames.
type Sprite struct {
	FrameWidth  int
	FrameHeight int
}

func NewSprite(w, h int) Sprite {
	return Sprite{FrameWidth: w, FrameHeight: h}
}

// SourceRect returns the sheet region for the given animation column.
func (s Sprite) SourceRect(column int) image.Rectangle {
	x := s.FrameWidth * column
	return image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)
}
