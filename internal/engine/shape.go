package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Kind is the primitive a SceneObject is built from.
type Kind string

const (
	KindBox      Kind = "box"
	KindSphere   Kind = "sphere"
	KindCylinder Kind = "cylinder"
	KindCone     Kind = "cone"
	KindTorus    Kind = "torus"
)

// Kinds lists every shape the editor can place, in toolbar order.
var Kinds = []Kind{KindBox, KindSphere, KindCylinder, KindCone, KindTorus}

func (k Kind) Valid() bool {
	switch k {
	case KindBox, KindSphere, KindCylinder, KindCone, KindTorus:
		return true
	}
	return false
}

// Default primitive dimensions, in unscaled local units.
const (
	BoxSize        float32 = 1.0
	SphereRadius   float32 = 0.5
	CylinderRadius float32 = 0.5
	CylinderHeight float32 = 1.0
	ConeRadius     float32 = 0.5
	ConeHeight     float32 = 1.0
	TorusRadius    float32 = 0.4
	TorusTube      float32 = 0.15
)

// HalfExtents returns the unscaled local half size of the kind's bounding box.
// Every primitive is centered on its origin.
func (k Kind) HalfExtents() rl.Vector3 {
	switch k {
	case KindSphere:
		return rl.Vector3{X: SphereRadius, Y: SphereRadius, Z: SphereRadius}
	case KindCylinder:
		return rl.Vector3{X: CylinderRadius, Y: CylinderHeight / 2, Z: CylinderRadius}
	case KindCone:
		return rl.Vector3{X: ConeRadius, Y: ConeHeight / 2, Z: ConeRadius}
	case KindTorus:
		outer := TorusRadius + TorusTube
		return rl.Vector3{X: outer, Y: outer, Z: TorusTube}
	default:
		h := BoxSize / 2
		return rl.Vector3{X: h, Y: h, Z: h}
	}
}
