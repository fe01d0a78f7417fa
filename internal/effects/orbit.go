package effects

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultTrailSize = 1000

	trailLife = 50 // frames

	skyRadius   float32 = 30
	ringRadius  float32 = 40
	ringTube    float32 = 3
	outerRadius float32 = 60
	innerRadius float32 = 25
	orbitRadius float32 = 40
	gridSlices  int32   = 75
	gridCreep   float32 = 0.01
	pointerGain float32 = 0.05
	pointerEase float32 = 0.05
)

var (
	skyCenter   = rl.Vector3{X: -250, Y: 100, Z: -250}
	orbitCenter = rl.Vector3{X: 250, Y: 100, Z: -250}
)

// TrailPoint is one slot of the orbit trail. Life counts down to zero.
type TrailPoint struct {
	Position rl.Vector3
	Life     int
}

// Alpha fades from 1 at spawn to 0 when the point dies.
func (p TrailPoint) Alpha() float32 {
	return float32(p.Life) / trailLife
}

// Orbit is the editor-menu backdrop: a wireframe sky sphere and ring off to
// one side, a large sphere on the other with a smaller one circling inside
// it and leaving a fading trail, and a grid creeping under the camera.
// Everything leans towards the pointer.
type Orbit struct {
	SkyRotation   rl.Vector3
	RingRotation  rl.Vector3
	OuterRotation rl.Vector3
	PivotRotation rl.Vector3
	InnerSpin     float32
	GridZ         float32
	Trail         []TrailPoint
	Color         rl.Color

	pointer rl.Vector2
	lean    rl.Vector2
}

func NewOrbit(trailSize int) *Orbit {
	return &Orbit{
		RingRotation: rl.Vector3{X: math.Pi / 2},
		Trail:        make([]TrailPoint, trailSize),
		Color:        rl.NewColor(255, 165, 0, 255),
	}
}

// Aim sets the pointer in [-1, 1] screen units, top-left at (-1, -1).
func (o *Orbit) Aim(x, y float32) {
	o.pointer = rl.Vector2{X: clamp(x, -1, 1), Y: clamp(y, -1, 1)}
}

// InnerPosition is the world position of the circling sphere.
func (o *Orbit) InnerPosition() rl.Vector3 {
	offset := rl.Vector3{X: orbitRadius}
	offset = rl.Vector3RotateByAxisAngle(offset, rl.Vector3{Y: 1}, o.PivotRotation.Y)
	offset = rl.Vector3RotateByAxisAngle(offset, rl.Vector3{X: 1}, o.PivotRotation.X)
	return rl.Vector3Add(orbitCenter, offset)
}

// Step advances one animation tick.
func (o *Orbit) Step() {
	o.GridZ = float32(math.Mod(float64(o.GridZ-gridCreep), 1))

	o.SkyRotation.X += 0.0002
	o.SkyRotation.Y += 0.0001
	o.RingRotation.Z += 0.001
	o.OuterRotation.X += 0.0001
	o.OuterRotation.Y += 0.0001
	o.PivotRotation.Y += 0.005
	o.InnerSpin += 0.02

	o.stepTrail()

	o.lean.X += (o.pointer.Y*pointerGain - o.lean.X) * pointerEase
	o.lean.Y += (o.pointer.X*pointerGain - o.lean.Y) * pointerEase

	o.SkyRotation.X += o.lean.X * 0.3
	o.SkyRotation.Y += o.lean.Y * 0.3
	o.RingRotation.Y += o.lean.Y * 0.2
	o.RingRotation.Z += o.lean.X * 0.2
	o.OuterRotation.X += o.lean.X * 0.15
	o.OuterRotation.Y += o.lean.Y * 0.15
	o.PivotRotation.X += o.lean.X * 0.1
	o.PivotRotation.Y += o.lean.Y * 0.1
}

// stepTrail spawns at most one point into a free slot, then ages every
// live point.
func (o *Orbit) stepTrail() {
	for i := range o.Trail {
		if o.Trail[i].Life <= 0 {
			o.Trail[i] = TrailPoint{Position: o.InnerPosition(), Life: trailLife}
			break
		}
	}
	for i := range o.Trail {
		if o.Trail[i].Life > 0 {
			o.Trail[i].Life--
		}
	}
}

// BackdropCamera sits just above the grid looking down -Z.
func BackdropCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Y: 5, Z: 5},
		Target:     rl.Vector3{Y: 5, Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}
