package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ID identifies a SceneObject within a Scene. Zero means "no object".
type ID uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in radians
	Scale    rl.Vector3
}

// MaterialKind selects the shading used for an object.
type MaterialKind string

const (
	MaterialStandard MaterialKind = "standard"
	MaterialBasic    MaterialKind = "basic"
	MaterialNormal   MaterialKind = "normal"
)

type Material struct {
	Color     string // "#rrggbb"
	Wireframe bool
	Kind      MaterialKind
}

// SceneObject is a placed primitive. All fields are values, so a plain
// assignment is a deep copy.
type SceneObject struct {
	ID        ID
	Kind      Kind
	Name      string
	Transform Transform
	Material  Material
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Position: rl.Vector3{},
		Rotation: rl.Vector3{},
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// HalfExtents is the object's bounding half size with scale applied.
func (o *SceneObject) HalfExtents() rl.Vector3 {
	h := o.Kind.HalfExtents()
	s := o.Transform.Scale
	return rl.Vector3{X: h.X * absF(s.X), Y: h.Y * absF(s.Y), Z: h.Z * absF(s.Z)}
}

// RotationMatrix applies X, then Y, then Z.
func (o *SceneObject) RotationMatrix() rl.Matrix {
	rot := o.Transform.Rotation
	rotX := rl.MatrixRotateX(rot.X)
	rotY := rl.MatrixRotateY(rot.Y)
	rotZ := rl.MatrixRotateZ(rot.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// Matrix combines scale -> rotate -> translate.
func (o *SceneObject) Matrix() rl.Matrix {
	s := o.Transform.Scale
	p := o.Transform.Position
	scaleMatrix := rl.MatrixScale(s.X, s.Y, s.Z)
	transMatrix := rl.MatrixTranslate(p.X, p.Y, p.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, o.RotationMatrix()), transMatrix)
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
