package editor

import (
	"math"
	"strconv"

	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// transformField names the vector a property edit targets.
type transformField int

const (
	fieldPosition transformField = iota
	fieldRotation
	fieldScale
)

func (f transformField) label() string {
	switch f {
	case fieldRotation:
		return "rotation"
	case fieldScale:
		return "scale"
	default:
		return "position"
	}
}

func axisValue(v rl.Vector3, a Axis) float32 {
	switch a {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return v.X
	}
}

func setAxis(v *rl.Vector3, a Axis, val float32) {
	switch a {
	case AxisY:
		v.Y = val
	case AxisZ:
		v.Z = val
	default:
		v.X = val
	}
}

func DegreesToRadians(deg float32) float32 {
	return deg * math.Pi / 180
}

func RadiansToDegrees(rad float32) float32 {
	return rad * 180 / math.Pi
}

// FormatDegrees renders a stored rotation for the property panel.
func FormatDegrees(rad float32) string {
	return strconv.FormatFloat(float64(RadiansToDegrees(rad)), 'f', 1, 32)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// applyField writes an absolute value into obj without touching history.
// Rotation values are in radians. Non-finite values and non-positive scales
// are refused and leave obj unchanged.
func applyField(obj *engine.SceneObject, f transformField, a Axis, v float32) bool {
	if !finite(v) {
		return false
	}
	switch f {
	case fieldPosition:
		setAxis(&obj.Transform.Position, a, v)
	case fieldRotation:
		setAxis(&obj.Transform.Rotation, a, v)
	case fieldScale:
		if v <= 0 {
			return false
		}
		setAxis(&obj.Transform.Scale, a, v)
	}
	return true
}

// editField applies a discrete property edit to the selection and commits
// it. It reports whether anything changed.
func (e *Editor) editField(f transformField, a Axis, v float32) bool {
	obj := e.scene.Selected()
	if obj == nil || e.drag.active {
		return false
	}
	before := obj.Transform
	if !applyField(obj, f, a, v) || obj.Transform == before {
		return false
	}
	e.commit(f.label())
	return true
}

// SetPosition sets one axis of the selected object's position.
func (e *Editor) SetPosition(a Axis, v float32) bool {
	return e.editField(fieldPosition, a, v)
}

// SetRotationDegrees sets one rotation axis from a value in degrees.
func (e *Editor) SetRotationDegrees(a Axis, deg float32) bool {
	return e.editField(fieldRotation, a, DegreesToRadians(deg))
}

// SetScale sets one scale axis. Zero or negative values are ignored.
func (e *Editor) SetScale(a Axis, v float32) bool {
	return e.editField(fieldScale, a, v)
}

// CycleColor moves the selection to the next palette color.
func (e *Editor) CycleColor() bool {
	obj := e.scene.Selected()
	if obj == nil {
		return false
	}
	obj.Material.Color = engine.NextPaletteColor(obj.Material.Color)
	e.commit("color")
	return true
}

// SetWireframe toggles wireframe rendering of the selection.
func (e *Editor) SetWireframe(on bool) bool {
	obj := e.scene.Selected()
	if obj == nil || obj.Material.Wireframe == on {
		return false
	}
	obj.Material.Wireframe = on
	e.commit("wireframe")
	return true
}

// SetMaterialKind changes the selection's shading.
func (e *Editor) SetMaterialKind(k engine.MaterialKind) bool {
	obj := e.scene.Selected()
	if obj == nil || obj.Material.Kind == k {
		return false
	}
	obj.Material.Kind = k
	e.commit("material")
	return true
}
