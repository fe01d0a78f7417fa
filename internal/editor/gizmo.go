package editor

import (
	"math"

	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type GizmoMode int

const (
	GizmoMove   GizmoMode = 0
	GizmoRotate GizmoMode = 1
	GizmoScale  GizmoMode = 2
)

func (m GizmoMode) String() string {
	switch m {
	case GizmoRotate:
		return "rotate"
	case GizmoScale:
		return "scale"
	default:
		return "move"
	}
}

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoHitDist   float32 = 0.3
	gizmoThickness float32 = 0.06

	// rotateRadiansPerUnit maps drag distance to rotation (1 unit = 45 degrees).
	rotateRadiansPerUnit float32 = math.Pi / 4
	minScaleFactor       float32 = 0.1
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0}, // X - red
	{X: 0, Y: 1, Z: 0}, // Y - green
	{X: 0, Y: 0, Z: 1}, // Z - blue
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// dragState is the in-flight gizmo drag. Values are applied relative to the
// transform captured at the start, so a drag is one edit however many
// frames it spans.
type dragState struct {
	active      bool
	target      engine.ID
	axisIdx     int
	axis        rl.Vector3
	planeNormal rl.Vector3
	start       float32
	initial     engine.Transform
}

func (e *Editor) GizmoMode() GizmoMode {
	return e.gizmoMode
}

// SetGizmoMode switches the handle type. An active drag is finished first.
func (e *Editor) SetGizmoMode(m GizmoMode) {
	if e.drag.active {
		e.EndDrag()
	}
	e.gizmoMode = m
}

// Dragging reports whether a gizmo drag is in progress.
func (e *Editor) Dragging() bool {
	return e.drag.active
}

// pickGizmoAxis returns the index of the gizmo axis closest to the mouse ray,
// or -1. A hidden gizmo has no handles.
func (e *Editor) pickGizmoAxis(ray rl.Ray) int {
	sel := e.scene.Selected()
	if sel == nil || !e.View.ShowHelpers {
		return -1
	}

	center := sel.Transform.Position
	bestDist := float32(999.0)
	bestAxis := -1

	if e.gizmoMode == GizmoRotate {
		// For rotation gizmo, check distance to each ring
		radius := gizmoLength * 0.8
		ringHitDist := float32(0.4)

		for i, planeNormal := range gizmoAxes {
			if pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, center, planeNormal); ok {
				distFromCenter := rl.Vector3Length(rl.Vector3Subtract(pt, center))
				distFromRing := absF(distFromCenter - radius)

				if distFromRing < ringHitDist && distFromRing < bestDist {
					bestDist = distFromRing
					bestAxis = i
				}
			}
		}
		return bestAxis
	}

	// For move/scale gizmos, use line-ray intersection
	for i, axis := range gizmoAxes {
		_, t2, dist := closestPointBetweenRays(ray.Position, ray.Direction, center, axis)
		if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist && dist < bestDist {
			bestDist = dist
			bestAxis = i
		}
	}
	return bestAxis
}

// BeginDrag starts manipulating the selected object along axisIdx.
func (e *Editor) BeginDrag(axisIdx int, ray rl.Ray) bool {
	sel := e.scene.Selected()
	if sel == nil || axisIdx < 0 || axisIdx > 2 {
		return false
	}
	e.finishTextEdit()

	e.drag = dragState{
		active:  true,
		target:  sel.ID,
		axisIdx: axisIdx,
		axis:    gizmoAxes[axisIdx],
		initial: sel.Transform,
	}

	// Drag plane contains the axis and faces the camera as much as possible
	origin := sel.Transform.Position
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(origin, e.camera.Position))
	cross1 := rl.Vector3CrossProduct(viewDir, e.drag.axis)
	e.drag.planeNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(e.drag.axis, cross1))

	if pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, origin, e.drag.planeNormal); ok {
		e.drag.start = rl.Vector3DotProduct(rl.Vector3Subtract(pt, origin), e.drag.axis)
	}
	return true
}

// UpdateDrag applies the drag for the current pointer ray. Nothing is
// committed until EndDrag.
func (e *Editor) UpdateDrag(ray rl.Ray) {
	if !e.drag.active {
		return
	}
	obj := e.scene.Get(e.drag.target)
	if obj == nil {
		e.drag = dragState{}
		return
	}

	origin := e.drag.initial.Position
	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, origin, e.drag.planeNormal)
	if !ok {
		return
	}
	delta := rl.Vector3DotProduct(rl.Vector3Subtract(pt, origin), e.drag.axis) - e.drag.start
	e.applyDragDelta(obj, delta)
}

// applyDragDelta sets obj's transform to the drag-start value moved by
// delta units along the drag axis.
func (e *Editor) applyDragDelta(obj *engine.SceneObject, delta float32) {
	start := e.drag.initial

	switch e.gizmoMode {
	case GizmoMove:
		obj.Transform.Position = rl.Vector3Add(start.Position, rl.Vector3Scale(e.drag.axis, delta))

	case GizmoRotate:
		rot := start.Rotation
		setAxis(&rot, Axis(e.drag.axisIdx), axisValue(rot, Axis(e.drag.axisIdx))+delta*rotateRadiansPerUnit)
		obj.Transform.Rotation = rot

	case GizmoScale:
		// Drag right = bigger; the factor never reaches zero
		factor := float32(1.0) + delta*0.5
		if factor < minScaleFactor {
			factor = minScaleFactor
		}
		s := start.Scale
		setAxis(&s, Axis(e.drag.axisIdx), axisValue(start.Scale, Axis(e.drag.axisIdx))*factor)
		obj.Transform.Scale = s
	}
}

// EndDrag finishes the drag and commits it if the object changed.
func (e *Editor) EndDrag() {
	if !e.drag.active {
		return
	}
	d := e.drag
	e.drag = dragState{}

	obj := e.scene.Get(d.target)
	if obj == nil || obj.Transform == d.initial {
		return
	}
	e.commit(e.gizmoMode.String())
}

// cancelDrag drops an in-flight drag without committing.
func (e *Editor) cancelDrag() {
	if !e.drag.active {
		return
	}
	if obj := e.scene.Get(e.drag.target); obj != nil {
		obj.Transform = e.drag.initial
	}
	e.drag = dragState{}
}

// drawGizmo draws the selection's transform handles. Call inside
// BeginMode3D/EndMode3D.
func (e *Editor) drawGizmo() {
	sel := e.scene.Selected()
	if sel == nil {
		return
	}

	// Disable depth testing so gizmos always draw on top
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	center := sel.Transform.Position

	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if e.drag.active && e.drag.axisIdx == i {
			color = rl.Yellow
		} else if !e.drag.active && e.hoveredAxis == i {
			color = rl.Yellow
		}

		end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))

		switch e.gizmoMode {
		case GizmoMove:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}
			rl.DrawCubeV(end, tip, color)
		case GizmoRotate:
			drawRing(center, i, gizmoLength*0.8, color)
		case GizmoScale:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			cubeSize := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}
			rl.DrawCubeV(end, cubeSize, color)
			rl.DrawCubeWiresV(end, cubeSize, color)
		}
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// drawRing draws the rotation ring around axis i as thick segments.
func drawRing(center rl.Vector3, i int, radius float32, color rl.Color) {
	segments := 16
	for s := range segments {
		t0 := float64(s) / float64(segments) * math.Pi * 2
		t1 := float64(s+1) / float64(segments) * math.Pi * 2
		p0 := ringPoint(center, i, radius, t0)
		p1 := ringPoint(center, i, radius, t1)
		rl.DrawCylinderEx(p0, p1, gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
	}
}

func ringPoint(center rl.Vector3, axis int, radius float32, t float64) rl.Vector3 {
	c := radius * float32(math.Cos(t))
	s := radius * float32(math.Sin(t))
	switch axis {
	case 0: // X - rotate in YZ plane
		return rl.Vector3{X: center.X, Y: center.Y + c, Z: center.Z + s}
	case 1: // Y - rotate in XZ plane
		return rl.Vector3{X: center.X + c, Y: center.Y, Z: center.Z + s}
	default: // Z - rotate in XY plane
		return rl.Vector3{X: center.X + c, Y: center.Y + s, Z: center.Z}
	}
}

// --- math helpers ---

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v rl.Vector3) (t1, t2, dist float32) {
	w := rl.Vector3Subtract(a, b)
	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := rl.Vector3Add(a, rl.Vector3Scale(u, t1))
	p2 := rl.Vector3Add(b, rl.Vector3Scale(v, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return
}

// rayPlaneIntersect returns where a ray hits a plane (defined by point + normal).
func rayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}
