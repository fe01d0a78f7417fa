package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	spinIdle      float32 = 0.01
	dragSpinScale float32 = 0.005
	spinDecay     float32 = 0.95
	followRate    float32 = 0.1

	tiltLimit float32 = 0.3
	tiltRate  float32 = 0.05
	tiltRoll  float32 = 0.005
)

// Spinner is the hero torus. It turns slowly on its own, can be spun by
// dragging, and slides along X towards a target position.
type Spinner struct {
	Radius   float32
	Tube     float32
	Position rl.Vector3
	Rotation rl.Vector3
	Color    rl.Color

	targetX  float32
	velocity rl.Vector2
	dragging bool
	lastDrag rl.Vector2
}

func NewSpinner(radius, tube float32) *Spinner {
	return &Spinner{
		Radius: radius,
		Tube:   tube,
		Color:  rl.NewColor(255, 140, 0, 255),
	}
}

// SetTargetX sets where the torus glides to along X.
func (s *Spinner) SetTargetX(x float32) {
	s.targetX = x
}

// ScrollTarget maps scroll progress to the torus X target the way the
// landing page does: it slides right over the first screen, stays there
// for the second and jumps left after that.
func ScrollTarget(progress float32) float32 {
	switch {
	case progress < 0:
		return 0
	case progress < 1:
		return progress * 20
	case progress < 2:
		return 20
	default:
		return -20
	}
}

// Hit reports whether ray passes through the torus's bounding sphere.
func (s *Spinner) Hit(ray rl.Ray) bool {
	outer := s.Radius + s.Tube
	return rl.GetRayCollisionSphere(ray, s.Position, outer).Hit
}

// BeginDrag grabs the torus at screen point p.
func (s *Spinner) BeginDrag(p rl.Vector2) {
	s.dragging = true
	s.lastDrag = p
}

// DragTo sets the spin velocity from pointer movement since the last call.
func (s *Spinner) DragTo(p rl.Vector2) {
	if !s.dragging {
		return
	}
	s.velocity.X = (p.Y - s.lastDrag.Y) * dragSpinScale
	s.velocity.Y = (p.X - s.lastDrag.X) * dragSpinScale
	s.lastDrag = p
}

func (s *Spinner) EndDrag() {
	s.dragging = false
}

func (s *Spinner) Dragging() bool {
	return s.dragging
}

// Step advances one animation tick.
func (s *Spinner) Step() {
	s.Position.X += (s.targetX - s.Position.X) * followRate

	if s.dragging {
		s.Rotation.X += s.velocity.X
		s.Rotation.Y += s.velocity.Y
		return
	}
	s.Rotation.X += spinIdle
	s.Rotation.Y += spinIdle
	s.velocity.X *= spinDecay
	s.velocity.Y *= spinDecay
}

// Tilter is the about-page torus: lying flat, rolling slowly and leaning
// towards the pointer's height within a small angle.
type Tilter struct {
	Radius   float32
	Tube     float32
	Position rl.Vector3
	Rotation rl.Vector3
	Color    rl.Color

	target float32
}

func NewTilter(radius, tube float32) *Tilter {
	return &Tilter{
		Radius:   radius,
		Tube:     tube,
		Position: rl.Vector3{X: -15},
		Rotation: rl.Vector3{X: 1.5707964},
		Color:    rl.NewColor(255, 140, 0, 255),
	}
}

// Aim sets the lean from a pointer height in [-1, 1] (top is 1).
func (t *Tilter) Aim(pointerY float32) {
	t.target = clamp(pointerY*tiltLimit, -tiltLimit, tiltLimit)
}

func (t *Tilter) Step() {
	t.Rotation.Y += (t.target - t.Rotation.Y) * tiltRate
	t.Rotation.Z += tiltRoll
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
