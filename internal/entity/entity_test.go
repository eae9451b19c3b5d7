package entity

import (
	"image"
	"math"
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/interfaces/surfacetest"
	"go-arena-shooter/internal/utils"
)

const eps = 1e-9

func near(a, b utils.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestZeroDirectionKeepsPosition(t *testing.T) {
	for _, kind := range []component.EntityKind{component.KindPlayer, component.KindEnemy, component.KindBullet, component.KindOther} {
		e := NewWithSpeed("e", 80, kind)
		e.SetPosition(utils.NewVec2(12, -3))
		e.SetRotation(33)
		e.Update(0.5, &component.FrameContext{})
		if e.Position() != utils.NewVec2(12, -3) {
			t.Fatalf("%v moved with zero direction: %+v", kind, e.Position())
		}
		if e.Rotation() != 33 {
			t.Fatalf("%v rotated with zero direction: %v", kind, e.Rotation())
		}
	}
}

func TestUpdateBlendsTowardIntendedPosition(t *testing.T) {
	e := NewWithSpeed("e", 100, component.KindEnemy)
	e.ChangeDirection(utils.NewVec2(3, 4)) // not normalized on purpose
	e.Update(0.1, &component.FrameContext{})

	want := utils.NewVec2(6, 8) // (0.6, 0.8) * 100 * 0.1
	if !near(e.Position(), want) {
		t.Fatalf("position = %+v, want %+v", e.Position(), want)
	}
}

func TestNonPlayerFacesHeading(t *testing.T) {
	dirs := []utils.Vec2{
		utils.NewVec2(1, 0),
		utils.NewVec2(0, 2),
		utils.NewVec2(-5, -5),
		utils.NewVec2(0.3, -0.9),
	}
	for _, d := range dirs {
		e := NewWithSpeed("bullet", 10, component.KindBullet)
		e.ChangeDirection(d)
		e.Update(1.0/60, &component.FrameContext{})

		n := utils.Normalize(d)
		want := math.Atan2(n.Y, n.X) * 180 / math.Pi
		if math.Abs(e.Rotation()-want) > eps {
			t.Errorf("direction %+v: rotation = %v, want %v", d, e.Rotation(), want)
		}
	}
}

func TestPlayerRotationIsNotDrivenByMovement(t *testing.T) {
	e := NewWithSpeed("Player", 50, component.KindPlayer)
	e.SetRotation(-90)
	e.ChangeDirection(utils.NewVec2(1, 0))
	e.Update(0.1, &component.FrameContext{})
	if e.Rotation() != -90 {
		t.Fatalf("player rotation = %v, want -90", e.Rotation())
	}
	if e.Position().X <= 0 {
		t.Fatalf("player did not move: %+v", e.Position())
	}
}

func TestForwardAndRight(t *testing.T) {
	e := New("e", component.KindOther)
	e.SetRotation(0)
	if !near(e.ForwardDirection(), utils.NewVec2(1, 0)) {
		t.Fatalf("forward = %+v", e.ForwardDirection())
	}
	if !near(e.RightDirection(), utils.NewVec2(0, -1)) {
		t.Fatalf("right = %+v", e.RightDirection())
	}

	e.SetRotation(90)
	if !near(e.ForwardDirection(), utils.NewVec2(0, 1)) {
		t.Fatalf("forward at 90 = %+v", e.ForwardDirection())
	}
	if !near(e.RightDirection(), utils.NewVec2(1, 0)) {
		t.Fatalf("right at 90 = %+v", e.RightDirection())
	}
}

func TestDrawPlacesSpriteInCameraSpace(t *testing.T) {
	e := New("e", component.KindOther)
	e.SetSprite(51, 43)
	e.SetPosition(utils.NewVec2(100, 50))
	e.SetRotation(45)

	surface := &surfacetest.Surface{}
	tex := surfacetest.NewTexture("default", 500, 500)
	frame := &component.FrameContext{CameraOffset: utils.NewVec2(60, 10), Debug: true}

	if err := e.Draw(surface, tex, 1, frame, 2.0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(surface.Sprites) != 1 {
		t.Fatalf("sprites drawn = %d, want 1", len(surface.Sprites))
	}
	op := surface.Sprites[0].Op
	// screen centre (40, 40), size 102x86
	if want := image.Rect(-11, -3, 91, 83); op.Dst != want {
		t.Errorf("dst = %v, want %v", op.Dst, want)
	}
	if want := image.Rect(51, 0, 102, 43); op.Src != want {
		t.Errorf("src = %v, want %v", op.Src, want)
	}
	if op.RotationDeg != 45 {
		t.Errorf("rotation = %v, want 45", op.RotationDeg)
	}
	if len(surface.Rects) != 1 || surface.Rects[0].X != 40 || surface.Rects[0].Y != 40 {
		t.Errorf("debug marker = %+v, want one at (40, 40)", surface.Rects)
	}
}

func TestDrawWithoutDebugSkipsMarker(t *testing.T) {
	e := New("e", component.KindOther)
	surface := &surfacetest.Surface{}
	if err := e.Draw(surface, surfacetest.NewTexture("t", 10, 10), 0, &component.FrameContext{}, 1); err != nil {
		t.Fatal(err)
	}
	if len(surface.Rects) != 0 {
		t.Fatalf("marker drawn without debug")
	}
}
