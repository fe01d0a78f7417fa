package app

import (
	"time"

	"portfolio3d/internal/effects"
	"portfolio3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	torusRadius float32 = 10
	torusTube   float32 = 3

	// scroll progress per wheel notch or arrow key press, in sections
	scrollStep float32 = 0.1
	maxScroll  float32 = 3
)

// showcasePage selects which background animation runs.
type showcasePage int

const (
	pageHero showcasePage = iota
	pageAbout
	pageContact
	pageEditorMenu
	pageCount
)

// showcase is the state of the showcase window between frames.
type showcase struct {
	field   *effects.ParticleField
	spinner *effects.Spinner
	tilter  *effects.Tilter
	squares *effects.SquareStream
	orbit   *effects.Orbit
	page    showcasePage
	scroll  float32
}

func newShowcase(seed uint64) *showcase {
	return &showcase{
		field:   effects.NewParticleField(effects.DefaultParticleCount, effects.DefaultFieldSize, seed),
		spinner: effects.NewSpinner(torusRadius, torusTube),
		tilter:  effects.NewTilter(torusRadius, torusTube),
		squares: effects.NewSquareStream(effects.DefaultSquareCount, seed),
		orbit:   effects.NewOrbit(effects.DefaultTrailSize),
	}
}

func showcaseCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Z: 30},
		Target:     rl.Vector3Zero(),
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

// projectToPlane intersects ray with the z=0 plane.
func projectToPlane(ray rl.Ray) (rl.Vector3, bool) {
	if ray.Direction.Z == 0 {
		return rl.Vector3{}, false
	}
	t := -ray.Position.Z / ray.Direction.Z
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

// pointerHeight maps a screen y to [-1, 1] with the top at 1.
func pointerHeight(y float32, screenH int) float32 {
	if screenH <= 0 {
		return 0
	}
	return 1 - 2*y/float32(screenH)
}

// pointerAcross maps a screen x to [-1, 1] with the left edge at -1.
func pointerAcross(x float32, screenW int) float32 {
	if screenW <= 0 {
		return 0
	}
	return 2*x/float32(screenW) - 1
}

func (s *showcase) scrollBy(delta float32) {
	s.scroll += delta
	if s.scroll < 0 {
		s.scroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	s.spinner.SetTargetX(effects.ScrollTarget(s.scroll))
}

func (s *showcase) nextPage() {
	s.page = (s.page + 1) % pageCount
}

func (s *showcase) camera() rl.Camera3D {
	switch s.page {
	case pageContact:
		return effects.StreamCamera()
	case pageEditorMenu:
		return effects.BackdropCamera()
	}
	return showcaseCamera()
}

// step advances one frame given the pointer ray and its screen position.
func (s *showcase) step(ray rl.Ray, mouse rl.Vector2, screenW, screenH int, pressed, down bool) {
	switch s.page {
	case pageContact:
		s.squares.Step()
		return
	case pageEditorMenu:
		s.orbit.Aim(pointerAcross(mouse.X, screenW), -pointerHeight(mouse.Y, screenH))
		s.orbit.Step()
		return
	}

	if p, ok := projectToPlane(ray); ok {
		s.field.SetRepeller(p)
	} else {
		s.field.ClearRepeller()
	}
	s.field.Step()

	switch s.page {
	case pageHero:
		if pressed && s.spinner.Hit(ray) {
			s.spinner.BeginDrag(mouse)
		}
		if s.spinner.Dragging() {
			if down {
				s.spinner.DragTo(mouse)
			} else {
				s.spinner.EndDrag()
			}
		}
		s.spinner.Step()
	case pageAbout:
		s.tilter.Aim(pointerHeight(mouse.Y, screenH))
		s.tilter.Step()
	}
}

// RunShowcase opens the showcase window and blocks until it is closed.
func RunShowcase(width, height, fps int32, log *zap.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, "Showcase")
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	sc := newShowcase(uint64(time.Now().UnixNano()))
	torus := effects.LoadTorus(torusRadius, torusTube)
	defer rl.UnloadModel(torus)
	ring := effects.LoadRing()
	defer rl.UnloadModel(ring)

	log.Info("showcase started", zap.Int("particles", len(sc.field.Points)))

	for !rl.WindowShouldClose() {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			sc.scrollBy(-wheel * scrollStep)
		}
		if rl.IsKeyPressed(rl.KeyDown) {
			sc.scrollBy(scrollStep)
		}
		if rl.IsKeyPressed(rl.KeyUp) {
			sc.scrollBy(-scrollStep)
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			sc.nextPage()
		}

		cam := sc.camera()
		mouse := rl.GetMousePosition()
		sc.step(rl.GetScreenToWorldRay(mouse, cam), mouse, rl.GetScreenWidth(), rl.GetScreenHeight(),
			rl.IsMouseButtonPressed(rl.MouseLeftButton), rl.IsMouseButtonDown(rl.MouseLeftButton))

		rl.BeginDrawing()
		rl.ClearBackground(world.BackgroundColor)
		rl.BeginMode3D(cam)
		switch sc.page {
		case pageHero:
			sc.field.Draw()
			sc.spinner.Draw(torus)
		case pageAbout:
			sc.field.Draw()
			sc.tilter.Draw(torus)
		case pageContact:
			sc.squares.Draw()
		case pageEditorMenu:
			sc.orbit.Draw(ring)
		}
		rl.EndMode3D()
		rl.DrawText("Drag the torus  |  Move the pointer  |  Wheel/Arrows: scroll  |  Tab: next page", 10, 10, 18, rl.Gray)
		rl.DrawFPS(10, 34)
		rl.EndDrawing()
	}
	return nil
}
