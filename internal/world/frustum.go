package world

import (
	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.1
	cullFar  float32 = 1000
)

// Frustum is the six planes of a camera's view volume, used to skip
// objects that can't be seen.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0 with a unit normal pointing inwards.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum extracts the planes of camera for a target with the given
// aspect ratio (Gribb/Hartmann).
func NewFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraOrthographic {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	} else {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	}
	m := rl.MatrixMultiply(view, proj)

	// rows of the combined matrix
	r1 := [4]float32{m.M0, m.M4, m.M8, m.M12}
	r2 := [4]float32{m.M1, m.M5, m.M9, m.M13}
	r3 := [4]float32{m.M2, m.M6, m.M10, m.M14}
	r4 := [4]float32{m.M3, m.M7, m.M11, m.M15}

	var f Frustum
	f.planes[0] = planeFrom(r4, r1, 1)
	f.planes[1] = planeFrom(r4, r1, -1)
	f.planes[2] = planeFrom(r4, r2, 1)
	f.planes[3] = planeFrom(r4, r2, -1)
	f.planes[4] = planeFrom(r4, r3, 1)
	f.planes[5] = planeFrom(r4, r3, -1)
	return f
}

// planeFrom builds the normalized plane w + sign*r.
func planeFrom(w, r [4]float32, sign float32) plane {
	p := plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

// Visible tests the object's bounding sphere, which covers any rotation.
func (f *Frustum) Visible(obj *engine.SceneObject) bool {
	return f.ContainsSphere(obj.Transform.Position, rl.Vector3Length(obj.HalfExtents()))
}
