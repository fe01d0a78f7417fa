package effects

import (
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultSquareCount = 100

	squareSize    float32 = 0.5
	squareSpread  float32 = 10
	squareSpeed   float32 = 0.05
	squareSpin    float32 = 0.01
	squareNearZ   float32 = 5
	squareRespawn float32 = -10
)

// Square is one wireframe quad of a SquareStream.
type Square struct {
	Position rl.Vector3
	Angle    float32
}

// SquareStream is the contact-page background: squares fly towards the
// viewer while turning, and start again further back once they pass it.
type SquareStream struct {
	Squares []Square
	Color   rl.Color

	rng *rand.Rand
}

func NewSquareStream(count int, seed uint64) *SquareStream {
	rng := rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
	s := &SquareStream{
		Squares: make([]Square, count),
		Color:   rl.NewColor(255, 140, 0, 128),
		rng:     rng,
	}
	for i := range s.Squares {
		s.Squares[i].Position = rl.Vector3{
			X: s.spread(),
			Y: s.spread(),
			Z: s.spread(),
		}
	}
	return s
}

func (s *SquareStream) spread() float32 {
	return (s.rng.Float32() - 0.5) * squareSpread
}

// Step advances one animation tick.
func (s *SquareStream) Step() {
	for i := range s.Squares {
		sq := &s.Squares[i]
		sq.Position.Z += squareSpeed
		sq.Angle += squareSpin
		if sq.Position.Z > squareNearZ {
			sq.Position = rl.Vector3{X: s.spread(), Y: s.spread(), Z: squareRespawn}
		}
	}
}

// StreamCamera looks slightly down the stream the way the contact page does.
func StreamCamera() rl.Camera3D {
	const tilt = 0.3
	pos := rl.Vector3{Y: 2, Z: 5}
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3{X: pos.X, Y: pos.Y - float32(math.Sin(tilt)), Z: pos.Z - float32(math.Cos(tilt))},
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders every square as an outline in its XY plane. Call inside
// BeginMode3D/EndMode3D.
func (s *SquareStream) Draw() {
	for _, sq := range s.Squares {
		corners := squareCorners(sq)
		for i := range corners {
			rl.DrawLine3D(corners[i], corners[(i+1)%len(corners)], s.Color)
		}
	}
}

func squareCorners(sq Square) [4]rl.Vector3 {
	h := squareSize / 2
	sin, cos := math.Sincos(float64(sq.Angle))
	var out [4]rl.Vector3
	for i, c := range [4][2]float32{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
		out[i] = rl.Vector3{
			X: sq.Position.X + c[0]*float32(cos) - c[1]*float32(sin),
			Y: sq.Position.Y + c[0]*float32(sin) + c[1]*float32(cos),
			Z: sq.Position.Z,
		}
	}
	return out
}
