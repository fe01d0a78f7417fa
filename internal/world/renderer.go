package world

import (
	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridSlices  int32   = 20
	gridSpacing float32 = 1.0

	// selectedBrightness lightens the selected object's color to fake an
	// emissive highlight without a custom shader.
	selectedBrightness float32 = 0.35
)

// BackgroundColor matches the portfolio's dark theme.
var BackgroundColor = rl.NewColor(10, 10, 15, 255)

// Renderer owns one GPU model per shape kind and draws a scene with them.
// It must be created after the window (OpenGL context) exists.
type Renderer struct {
	models map[engine.Kind]rl.Model
}

func NewRenderer() *Renderer {
	return &Renderer{models: make(map[engine.Kind]rl.Model)}
}

// Initialize builds the primitive meshes.
func (r *Renderer) Initialize() {
	r.models[engine.KindBox] = rl.LoadModelFromMesh(rl.GenMeshCube(engine.BoxSize, engine.BoxSize, engine.BoxSize))
	r.models[engine.KindSphere] = rl.LoadModelFromMesh(rl.GenMeshSphere(engine.SphereRadius, 16, 24))
	r.models[engine.KindCylinder] = rl.LoadModelFromMesh(rl.GenMeshCylinder(engine.CylinderRadius, engine.CylinderHeight, 24))
	r.models[engine.KindCone] = rl.LoadModelFromMesh(rl.GenMeshCone(engine.ConeRadius, engine.ConeHeight, 24))
	// GenMeshTorus takes the tube as a fraction of the ring radius
	r.models[engine.KindTorus] = rl.LoadModelFromMesh(rl.GenMeshTorus(engine.TorusTube/engine.TorusRadius, engine.TorusRadius*2, 24, 32))
}

// meshOffset recenters meshes that raylib generates from y=0 upward.
func meshOffset(kind engine.Kind) rl.Matrix {
	switch kind {
	case engine.KindCylinder:
		return rl.MatrixTranslate(0, -engine.CylinderHeight/2, 0)
	case engine.KindCone:
		return rl.MatrixTranslate(0, -engine.ConeHeight/2, 0)
	}
	return rl.MatrixIdentity()
}

// DrawScene draws the grid (when enabled) and every object inside the
// frustum. Call inside BeginMode3D/EndMode3D.
func (r *Renderer) DrawScene(scene *engine.Scene, view ViewSettings, frustum Frustum) {
	if view.ShowGrid {
		rl.DrawGrid(gridSlices, gridSpacing)
	}

	selected, _ := scene.SelectedID()
	for _, obj := range scene.List() {
		if !frustum.Visible(obj) {
			continue
		}
		r.drawObject(obj, obj.ID == selected)
	}
}

func (r *Renderer) drawObject(obj *engine.SceneObject, selected bool) {
	model, ok := r.models[obj.Kind]
	if !ok {
		return
	}

	color, err := engine.ParseHexColor(obj.Material.Color)
	if err != nil {
		color = rl.White
	}
	if obj.Material.Kind == engine.MaterialNormal {
		color = normalTint(obj)
	}
	if selected {
		color = rl.ColorBrightness(color, selectedBrightness)
	}

	model.Transform = rl.MatrixMultiply(meshOffset(obj.Kind), obj.Matrix())
	if obj.Material.Wireframe {
		rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, color)
	} else {
		rl.DrawModel(model, rl.Vector3Zero(), 1.0, color)
	}

	if selected {
		rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, rl.Yellow)
	}
}

// normalTint approximates a normal material by mapping the object's up
// vector to RGB.
func normalTint(obj *engine.SceneObject) rl.Color {
	up := rl.Vector3Transform(rl.Vector3{Y: 1}, obj.RotationMatrix())
	return rl.Color{
		R: uint8((up.X*0.5 + 0.5) * 255),
		G: uint8((up.Y*0.5 + 0.5) * 255),
		B: uint8((up.Z*0.5 + 0.5) * 255),
		A: 255,
	}
}

// DrawHelpers draws the world axes at the origin.
func (r *Renderer) DrawHelpers() {
	rl.DrawLine3D(rl.Vector3Zero(), rl.Vector3{X: 2}, rl.Red)
	rl.DrawLine3D(rl.Vector3Zero(), rl.Vector3{Y: 2}, rl.Green)
	rl.DrawLine3D(rl.Vector3Zero(), rl.Vector3{Z: 2}, rl.Blue)
}

func (r *Renderer) Unload() {
	for kind, model := range r.models {
		rl.UnloadModel(model)
		delete(r.models, kind)
	}
}
