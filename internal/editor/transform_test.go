package editor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio3d/internal/engine"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return New(engine.NewScene("test"), Options{MaxHistory: 50})
}

func TestSetPositionCommits(t *testing.T) {
	e := newTestEditor(t)
	obj, _ := e.AddShape(engine.KindBox)
	before := e.History().Len()

	require.True(t, e.SetPosition(AxisX, 2))
	assert.Equal(t, float32(2), obj.Transform.Position.X)
	assert.Equal(t, before+1, e.History().Len())
}

func TestSetPositionSameValueNoCommit(t *testing.T) {
	e := newTestEditor(t)
	e.AddShape(engine.KindBox)
	before := e.History().Len()

	assert.False(t, e.SetPosition(AxisY, 0.5), "setting the current value is not an edit")
	assert.Equal(t, before, e.History().Len())
}

func TestSetScaleRejectsNonPositive(t *testing.T) {
	e := newTestEditor(t)
	obj, _ := e.AddShape(engine.KindBox)
	before := e.History().Len()

	for _, v := range []float32{-1, 0} {
		assert.False(t, e.SetScale(AxisX, v), "scale %v", v)
	}
	assert.Equal(t, float32(1), obj.Transform.Scale.X)
	assert.Equal(t, before, e.History().Len())
}

func TestSetRejectsNonFinite(t *testing.T) {
	e := newTestEditor(t)
	obj, _ := e.AddShape(engine.KindBox)

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	assert.False(t, e.SetPosition(AxisX, nan))
	assert.False(t, e.SetRotationDegrees(AxisY, inf))
	assert.False(t, e.SetScale(AxisZ, inf))

	want := engine.NewTransform()
	want.Position.Y = 0.5
	assert.Equal(t, want, obj.Transform)
}

func TestSetRotationDegrees(t *testing.T) {
	e := newTestEditor(t)
	obj, _ := e.AddShape(engine.KindCone)

	e.SetRotationDegrees(AxisY, 90)
	assert.InDelta(t, math.Pi/2, obj.Transform.Rotation.Y, 1e-5)
	assert.Equal(t, "90.0", FormatDegrees(obj.Transform.Rotation.Y))
}

func TestFormatDegreesOneDecimal(t *testing.T) {
	cases := []struct {
		rad  float32
		want string
	}{
		{0, "0.0"},
		{math.Pi, "180.0"},
		{-math.Pi / 4, "-45.0"},
		{DegreesToRadians(12.34), "12.3"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDegrees(c.rad), "radians %v", c.rad)
	}
}

func TestEditWithoutSelection(t *testing.T) {
	e := newTestEditor(t)
	e.AddShape(engine.KindBox)
	e.ClearSelection()

	assert.False(t, e.SetPosition(AxisX, 1))
	assert.False(t, e.CycleColor())
	assert.False(t, e.SetWireframe(true))
}

func TestMaterialEdits(t *testing.T) {
	e := newTestEditor(t)
	obj, _ := e.AddShape(engine.KindTorus)
	start := e.History().Len()
	color := obj.Material.Color

	assert.True(t, e.CycleColor())
	assert.NotEqual(t, color, obj.Material.Color)

	assert.True(t, e.SetWireframe(true))
	assert.True(t, obj.Material.Wireframe)
	assert.False(t, e.SetWireframe(true), "already wireframe")

	assert.True(t, e.SetMaterialKind(engine.MaterialNormal))
	assert.Equal(t, engine.MaterialNormal, obj.Material.Kind)
	assert.Equal(t, start+3, e.History().Len())
}

func TestApplyFieldScaleGuard(t *testing.T) {
	obj := engine.SceneObject{Transform: engine.NewTransform()}

	assert.False(t, applyField(&obj, fieldScale, AxisY, -0.5))
	assert.True(t, applyField(&obj, fieldScale, AxisY, 0.25))
	assert.Equal(t, float32(0.25), obj.Transform.Scale.Y)
	assert.True(t, applyField(&obj, fieldPosition, AxisZ, -3), "negative positions are fine")
	assert.Equal(t, float32(-3), obj.Transform.Position.Z)
}
