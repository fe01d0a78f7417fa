// Package effects holds the decorative animations of the showcase window:
// a drifting particle field and a spinning wireframe torus.
package effects

import (
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultParticleCount matches the hero section.
	DefaultParticleCount = 800
	// DefaultFieldSize is the edge length of the cube particles start in.
	DefaultFieldSize float32 = 50

	timeStep        float32 = 0.01
	driftAmount     float32 = 0.5
	driftSpeed      float32 = 0.05
	repulsionRadius float32 = 10
	repulsionForce  float32 = 0.2
)

// ParticleField is a cloud of points that drift on their own and are
// pushed away from a repeller (normally the mouse projected into the
// scene). Points leaving the field re-enter on the opposite side.
type ParticleField struct {
	Points []rl.Vector3
	Color  rl.Color

	size     float32
	time     float32
	repeller rl.Vector3
	repel    bool
}

// NewParticleField scatters count points uniformly in a cube of the given
// edge length centered on the origin. The same seed gives the same field.
func NewParticleField(count int, size float32, seed uint64) *ParticleField {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	points := make([]rl.Vector3, count)
	for i := range points {
		points[i] = rl.Vector3{
			X: (rng.Float32() - 0.5) * size,
			Y: (rng.Float32() - 0.5) * size,
			Z: (rng.Float32() - 0.5) * size,
		}
	}
	return &ParticleField{
		Points: points,
		Color:  rl.NewColor(255, 140, 0, 128),
		size:   size,
	}
}

// SetRepeller moves the repelling point. Only X and Y are used; the
// repeller acts as an infinite column along Z.
func (f *ParticleField) SetRepeller(p rl.Vector3) {
	f.repeller = p
	f.repel = true
}

func (f *ParticleField) ClearRepeller() {
	f.repel = false
}

// Size is the field's edge length.
func (f *ParticleField) Size() float32 {
	return f.size
}

// Step advances the field by one animation tick.
func (f *ParticleField) Step() {
	f.time += timeStep
	step := driftAmount * driftSpeed

	for i := range f.Points {
		p := &f.Points[i]
		// Component index of the flat x,y,z layout the phase offsets follow
		c := float64(i * 3)

		if f.repel {
			dx := p.X - f.repeller.X
			dy := p.Y - f.repeller.Y
			dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if dist < repulsionRadius && dist > 0 {
				force := (1 - dist/repulsionRadius) * repulsionForce
				p.X += dx / dist * force
				p.Y += dy / dist * force
				f.wrap(p)
				continue
			}
		}

		t := float64(f.time)
		p.X += float32(math.Sin(t+c*0.1)) * step
		p.Y += float32(math.Cos(t+(c+1)*0.1)) * step
		p.Z += float32(math.Sin(t+(c+2)*0.05)) * step
		f.wrap(p)
	}
}

func (f *ParticleField) wrap(p *rl.Vector3) {
	half := f.size / 2
	p.X = wrapCoord(p.X, half)
	p.Y = wrapCoord(p.Y, half)
	p.Z = wrapCoord(p.Z, half)
}

// wrapCoord folds v back into [-half, half).
func wrapCoord(v, half float32) float32 {
	size := 2 * half
	if v >= -half && v < half {
		return v
	}
	m := float32(math.Mod(float64(v+half), float64(size)))
	if m < 0 {
		m += size
	}
	if m >= size {
		m = 0
	}
	return m - half
}

// Draw renders each point as a tiny cube. Call inside BeginMode3D/EndMode3D.
func (f *ParticleField) Draw() {
	rl.BeginBlendMode(rl.BlendAdditive)
	dot := rl.Vector3{X: 0.1, Y: 0.1, Z: 0.1}
	for _, p := range f.Points {
		rl.DrawCubeV(p, dot, f.Color)
	}
	rl.EndBlendMode()
}
