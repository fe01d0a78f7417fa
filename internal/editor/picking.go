package editor

import (
	"math"

	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PickAt returns the frontmost object hit by ray. When two hits are at the
// same distance the one earlier in the scene list wins.
func PickAt(scene *engine.Scene, ray rl.Ray) (engine.ID, bool) {
	dir := rl.Vector3Normalize(ray.Direction)
	best := float32(math.MaxFloat32)
	var hit engine.ID

	for _, obj := range scene.List() {
		dist, ok := intersectObject(obj, ray.Position, dir)
		if ok && dist < best {
			best = dist
			hit = obj.ID
		}
	}
	return hit, hit != 0
}

// intersectObject tests a normalized ray against the object's bounding
// volume: a sphere for spheres, an oriented box for everything else.
func intersectObject(obj *engine.SceneObject, origin, dir rl.Vector3) (float32, bool) {
	half := obj.HalfExtents()
	if obj.Kind == engine.KindSphere {
		radius := max(half.X, half.Y, half.Z)
		return raySphere(origin, dir, obj.Transform.Position, radius)
	}

	// Move the ray into the object's rotated frame; rotation preserves
	// length so the distance is the same in both frames.
	inv := rl.MatrixTranspose(obj.RotationMatrix())
	localOrigin := rl.Vector3Transform(rl.Vector3Subtract(origin, obj.Transform.Position), inv)
	localDir := rl.Vector3Transform(dir, inv)

	return rayAABB(localOrigin, localDir, rl.Vector3Negate(half), half)
}

// raySphere returns the distance to the first intersection in front of the
// origin. An origin inside the sphere hits at distance 0.
func raySphere(origin, dir, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		t = 0
	}
	return t, true
}

// rayAABB is a slab test. An origin inside the box hits at distance 0.
func rayAABB(origin, dir, boxMin, boxMax rl.Vector3) (float32, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	lo := [3]float32{boxMin.X, boxMin.Y, boxMin.Z}
	hi := [3]float32{boxMax.X, boxMax.Y, boxMax.Z}

	for i := range 3 {
		if absF(d[i]) < 1e-8 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
