package effects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func inField(p rl.Vector3, half float32) bool {
	return p.X >= -half && p.X < half && p.Y >= -half && p.Y < half && p.Z >= -half && p.Z < half
}

func TestNewParticleFieldDeterministic(t *testing.T) {
	a := NewParticleField(100, DefaultFieldSize, 7)
	b := NewParticleField(100, DefaultFieldSize, 7)
	c := NewParticleField(100, DefaultFieldSize, 8)

	require.Len(t, a.Points, 100)
	assert.Equal(t, a.Points, b.Points)
	assert.NotEqual(t, a.Points, c.Points)
	for _, p := range a.Points {
		assert.True(t, inField(p, DefaultFieldSize/2), "point %v outside field", p)
	}
}

func TestParticleFieldStaysInBounds(t *testing.T) {
	f := NewParticleField(200, 4, 1)
	f.SetRepeller(rl.Vector3{})
	for range 2000 {
		f.Step()
	}
	for _, p := range f.Points {
		assert.True(t, inField(p, 2), "point %v escaped", p)
	}
}

func TestParticleFieldDrifts(t *testing.T) {
	f := NewParticleField(10, DefaultFieldSize, 3)
	before := append([]rl.Vector3(nil), f.Points...)
	f.Step()
	assert.NotEqual(t, before, f.Points)
}

func TestRepellerPushesAway(t *testing.T) {
	f := &ParticleField{Points: []rl.Vector3{{X: 2, Y: 0, Z: 0}}, size: 100}
	f.SetRepeller(rl.Vector3{})
	f.Step()

	p := f.Points[0]
	assert.Greater(t, p.X, float32(2), "point should move away from the repeller")
	assert.Equal(t, float32(0), p.Y)
	assert.Equal(t, float32(0), p.Z, "repulsion acts in the XY plane only")

	// Outside the radius the point only drifts
	far := &ParticleField{Points: []rl.Vector3{{X: 30}}, size: 100}
	far.SetRepeller(rl.Vector3{})
	far.Step()
	assert.InDelta(t, 30, far.Points[0].X, 0.05)
}

func TestWrapCoord(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{0, 0},
		{1.5, 1.5},
		{2, -2},
		{2.5, -1.5},
		{-2.5, 1.5},
		{9, 1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, wrapCoord(c.in, 2), 1e-5, "wrapCoord(%v)", c.in)
	}
}

func TestSpinnerIdleSpin(t *testing.T) {
	s := NewSpinner(10, 3)
	for range 10 {
		s.Step()
	}
	assert.InDelta(t, 0.1, s.Rotation.X, 1e-5)
	assert.InDelta(t, 0.1, s.Rotation.Y, 1e-5)
}

func TestSpinnerFollowsTarget(t *testing.T) {
	s := NewSpinner(10, 3)
	s.SetTargetX(20)
	s.Step()
	assert.InDelta(t, 2, s.Position.X, 1e-5)
	for range 200 {
		s.Step()
	}
	assert.InDelta(t, 20, s.Position.X, 1e-3)
}

func TestSpinnerDrag(t *testing.T) {
	s := NewSpinner(10, 3)
	s.BeginDrag(rl.Vector2{X: 100, Y: 100})
	s.DragTo(rl.Vector2{X: 120, Y: 90})
	require.True(t, s.Dragging())

	s.Step()
	assert.InDelta(t, -0.05, s.Rotation.X, 1e-5)
	assert.InDelta(t, 0.1, s.Rotation.Y, 1e-5)

	s.EndDrag()
	s.Step()
	assert.InDelta(t, -0.04, s.Rotation.X, 1e-5, "released torus falls back to idle spin")
	assert.InDelta(t, 0.095, s.velocity.Y, 1e-5)
}

func TestSpinnerDragIgnoredWhenNotDragging(t *testing.T) {
	s := NewSpinner(10, 3)
	s.DragTo(rl.Vector2{X: 500})
	assert.Equal(t, rl.Vector2{}, s.velocity)
}

func TestScrollTarget(t *testing.T) {
	assert.Equal(t, float32(0), ScrollTarget(-1))
	assert.Equal(t, float32(10), ScrollTarget(0.5))
	assert.Equal(t, float32(20), ScrollTarget(1.5))
	assert.Equal(t, float32(-20), ScrollTarget(2))
}

func TestTilterClampsLean(t *testing.T) {
	tl := NewTilter(10, 4)
	tl.Aim(5)
	for range 500 {
		tl.Step()
	}
	assert.InDelta(t, tiltLimit, tl.Rotation.Y, 1e-3)
	assert.InDelta(t, math.Pi/2, tl.Rotation.X, 1e-5, "stays flat")
	assert.Greater(t, tl.Rotation.Z, float32(2))

	tl.Aim(-1)
	for range 500 {
		tl.Step()
	}
	assert.InDelta(t, -tiltLimit, tl.Rotation.Y, 1e-3)
}

func TestSquareStreamMovesTowardsViewer(t *testing.T) {
	s := NewSquareStream(10, 3)
	start := s.Squares[0]
	if start.Position.Z+squareSpeed > squareNearZ {
		t.Skip("first square would respawn")
	}
	s.Step()
	got := s.Squares[0]
	assert.InDelta(t, start.Position.Z+squareSpeed, got.Position.Z, 1e-6)
	assert.InDelta(t, squareSpin, got.Angle, 1e-6)
	assert.Equal(t, start.Position.X, got.Position.X)
}

func TestSquareStreamRespawnsBehind(t *testing.T) {
	s := NewSquareStream(1, 3)
	s.Squares[0].Position = rl.Vector3{X: 1, Y: 1, Z: squareNearZ - 0.01}
	s.Step()
	p := s.Squares[0].Position
	assert.Equal(t, squareRespawn, p.Z)
	assert.LessOrEqual(t, math.Abs(float64(p.X)), float64(squareSpread/2))
	assert.LessOrEqual(t, math.Abs(float64(p.Y)), float64(squareSpread/2))
}

func TestSquareStreamStaysInRange(t *testing.T) {
	s := NewSquareStream(DefaultSquareCount, 9)
	for range 1000 {
		s.Step()
	}
	for _, sq := range s.Squares {
		require.GreaterOrEqual(t, sq.Position.Z, squareRespawn)
		require.LessOrEqual(t, sq.Position.Z, squareNearZ)
	}
}

func TestSquareCorners(t *testing.T) {
	c := squareCorners(Square{Position: rl.Vector3{Z: 2}})
	assert.InDelta(t, -0.25, c[0].X, 1e-6)
	assert.InDelta(t, 0.25, c[2].Y, 1e-6)

	turned := squareCorners(Square{Angle: math.Pi / 2})
	assert.InDelta(t, 0.25, turned[0].X, 1e-6)
	assert.InDelta(t, -0.25, turned[0].Y, 1e-6)
	assert.Equal(t, float32(0), turned[0].Z)
}

func liveTrail(o *Orbit) int {
	n := 0
	for _, p := range o.Trail {
		if p.Life > 0 {
			n++
		}
	}
	return n
}

func TestOrbitTrailSpawnsAtInnerSphere(t *testing.T) {
	o := NewOrbit(DefaultTrailSize)
	o.Step()

	require.Equal(t, 1, liveTrail(o))
	assert.Equal(t, trailLife-1, o.Trail[0].Life)
	assert.InDelta(t, 0.98, o.Trail[0].Alpha(), 1e-6)
	assert.Equal(t, o.InnerPosition(), o.Trail[0].Position, "pointer at rest adds no lean after the spawn")
}

func TestOrbitTrailFades(t *testing.T) {
	o := NewOrbit(DefaultTrailSize)
	for range 200 {
		o.Step()
	}
	assert.Equal(t, trailLife-1, liveTrail(o), "one spawn per tick, each lives trailLife ticks")
	for _, p := range o.Trail {
		assert.GreaterOrEqual(t, p.Alpha(), float32(0))
		assert.LessOrEqual(t, p.Alpha(), float32(1))
	}

	small := NewOrbit(10)
	for range 20 {
		small.Step()
	}
	assert.Equal(t, 10, liveTrail(small), "no spawn while every slot is live")
}

func TestOrbitInnerSphereCircles(t *testing.T) {
	o := NewOrbit(0)
	assert.Equal(t, rl.Vector3Add(orbitCenter, rl.Vector3{X: orbitRadius}), o.InnerPosition())

	o.Aim(0.5, -0.7)
	for range 300 {
		o.Step()
		d := rl.Vector3Distance(o.InnerPosition(), orbitCenter)
		require.InDelta(t, orbitRadius, d, 1e-3)
	}
}

func TestOrbitGridCreeps(t *testing.T) {
	o := NewOrbit(0)
	o.Step()
	assert.InDelta(t, -0.01, o.GridZ, 1e-6)
	for range 250 {
		o.Step()
		require.True(t, o.GridZ > -1 && o.GridZ <= 0, "grid offset %v", o.GridZ)
	}
}

func TestOrbitLeansTowardsPointer(t *testing.T) {
	still := NewOrbit(0)
	leaning := NewOrbit(0)
	leaning.Aim(3, 0)

	still.Step()
	leaning.Step()
	assert.InDelta(t, 0.0025, leaning.lean.Y, 1e-6, "eases a twentieth of the way")
	assert.Equal(t, float32(1), leaning.pointer.X, "pointer clamps")

	for range 100 {
		still.Step()
		leaning.Step()
	}
	assert.Greater(t, leaning.SkyRotation.Y, still.SkyRotation.Y)
	assert.Greater(t, leaning.PivotRotation.Y, still.PivotRotation.Y)
	assert.Equal(t, still.SkyRotation.X, leaning.SkyRotation.X, "no vertical pointer, no pitch")
	assert.InDelta(t, math.Pi/2, leaning.RingRotation.X, 1e-6, "ring stays horizontal")
}
