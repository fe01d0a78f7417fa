package editor

import (
	"fmt"
	"math"
	"time"

	"portfolio3d/internal/engine"
	"portfolio3d/internal/history"
	"portfolio3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const statusDuration = 2 * time.Second

type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

// Options configures a new Editor.
type Options struct {
	MaxHistory int
	Export     world.ExportSettings
	ExportDir  string
	Logger     *zap.Logger
}

type Editor struct {
	scene    *engine.Scene
	history  *history.History
	renderer *world.Renderer
	log      *zap.Logger

	camera EditorCamera
	View   world.ViewSettings

	// Gizmo state
	gizmoMode   GizmoMode
	drag        dragState
	hoveredAxis int // -1 = none, 0=X, 1=Y, 2=Z

	// Hierarchy panel
	hierarchyScroll int32

	// Float field editing state
	activeInputID     string  // e.g., "pos.x", "rot.y"
	inputTextValue    string  // current text being edited
	fieldDragging     bool    // true if drag-scrubbing a field
	fieldDragID       string  // which field is being dragged
	fieldDragStartX   float32 // mouse X when drag started
	fieldDragStartVal float32 // value when drag started
	fieldEditStart    engine.Transform
	fieldHoveredAny   bool

	// Status bar feedback
	status     string
	statusErr  bool
	statusTime time.Time

	// Panel sizing
	hierarchyWidth int32
	inspectorWidth int32

	exportSettings world.ExportSettings
	exportDir      string
}

// New creates an editor over scene and commits the starting state so the
// first edit can be undone.
func New(scene *engine.Scene, opts Options) *Editor {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "exports"
	}

	e := &Editor{
		scene:   scene,
		history: history.New(opts.MaxHistory),
		log:     log,
		camera: EditorCamera{
			Position:  rl.Vector3{X: 6, Y: 5, Z: 6},
			Yaw:       -135,
			Pitch:     -30,
			MoveSpeed: 10.0,
		},
		View:           world.DefaultView(),
		hoveredAxis:    -1,
		hierarchyWidth: 210,
		inspectorWidth: 310,
		exportSettings: opts.Export,
		exportDir:      exportDir,
	}
	e.commit("initial")
	return e
}

func (e *Editor) Scene() *engine.Scene {
	return e.scene
}

func (e *Editor) History() *history.History {
	return e.history
}

// SetRenderer attaches the GPU renderer once the window exists.
func (e *Editor) SetRenderer(r *world.Renderer) {
	e.renderer = r
}

// commit snapshots the scene into history.
func (e *Editor) commit(label string) {
	e.history.Commit(label, e.scene.Snapshot())
	e.log.Debug("history commit",
		zap.String("label", label),
		zap.Int("objects", e.scene.Len()),
		zap.Int("entries", e.history.Len()))
}

// AddShape places a new shape, selects it and records the edit.
func (e *Editor) AddShape(kind engine.Kind) (*engine.SceneObject, error) {
	e.finishTextEdit()
	obj, err := e.scene.Add(kind)
	if err != nil {
		e.setError("%v", err)
		return nil, err
	}
	e.Select(obj.ID)
	e.commit("add " + obj.Name)
	e.setMsg("Added %s", obj.Name)
	return obj, nil
}

// DeleteSelected removes the selected object. The scene clears the
// selection as part of the removal.
func (e *Editor) DeleteSelected() bool {
	obj := e.scene.Selected()
	if obj == nil {
		return false
	}
	name := obj.Name
	e.cancelDrag()
	e.cancelTextEdit()
	e.scene.Remove(obj.ID)
	e.commit("delete " + name)
	e.setMsg("Deleted %s", name)
	return true
}

// Undo restores the previous history entry. Restored objects are not
// reselected.
func (e *Editor) Undo() bool {
	e.cancelDrag()
	undone, _ := e.history.Current()
	entry, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.scene.Restore(entry.Objects)
	e.cancelTextEdit()
	e.fieldDragging = false
	e.setMsg("Undo %s", undone.Label)
	return true
}

// setMsg shows a transient status message.
func (e *Editor) setMsg(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
	e.statusErr = false
	e.statusTime = time.Now()
}

func (e *Editor) setError(format string, args ...any) {
	e.setMsg(format, args...)
	e.statusErr = true
	e.log.Warn("editor", zap.String("msg", e.status))
}

// Status returns the current status message, or "" once it has expired.
func (e *Editor) Status() string {
	if time.Since(e.statusTime) > statusDuration {
		return ""
	}
	return e.status
}

// Update handles one frame of input.
func (e *Editor) Update(deltaTime float32) {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	isEditingText := e.activeInputID != ""

	// Ctrl+Z or Cmd+Z: undo
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		e.Undo()
	}

	// Ctrl+E: export image
	if ctrl && rl.IsKeyPressed(rl.KeyE) {
		e.exportImage()
	}

	if !isEditingText && !ctrl {
		// Number keys add shapes in toolbar order
		for i, kind := range engine.Kinds {
			if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
				e.AddShape(kind)
			}
		}
		if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
			e.DeleteSelected()
		}
		if rl.IsKeyPressed(rl.KeyG) {
			e.View.ShowGrid = !e.View.ShowGrid
		}
		if rl.IsKeyPressed(rl.KeyH) {
			e.View.ShowHelpers = !e.View.ShowHelpers
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.ClearSelection()
		}
	}

	// Camera: right-click + drag to look, right-click + WASD to fly
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		e.updateCamera(deltaTime)
	}

	// Gizmo mode hotkeys (only when not holding RMB for camera and not editing text)
	if !rl.IsMouseButtonDown(rl.MouseRightButton) && !isEditingText && !ctrl {
		if rl.IsKeyPressed(rl.KeyW) {
			e.SetGizmoMode(GizmoMove)
		}
		if rl.IsKeyPressed(rl.KeyE) {
			e.SetGizmoMode(GizmoRotate)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			e.SetGizmoMode(GizmoScale)
		}
	}

	cam := e.Camera()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)

	// Handle active drag; only the release commits
	if e.drag.active {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			e.EndDrag()
		} else {
			e.UpdateDrag(ray)
		}
		return
	}

	// Update hovered axis for visual feedback
	e.hoveredAxis = -1
	if e.scene.Selected() != nil && e.View.ShowHelpers {
		e.hoveredAxis = e.pickGizmoAxis(ray)
	}

	// Left-click: skip 3D interaction if mouse is over a UI panel
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.mouseInPanel() {
		e.Click(ray)
	}
}

// Click starts a gizmo drag when ray hits a handle of the selected object,
// otherwise picks. A miss clears the selection.
func (e *Editor) Click(ray rl.Ray) {
	if e.scene.Selected() != nil {
		if axis := e.pickGizmoAxis(ray); axis >= 0 {
			e.BeginDrag(axis, ray)
			return
		}
	}
	if id, ok := PickAt(e.scene, ray); ok {
		e.Select(id)
	} else {
		e.ClearSelection()
	}
}

// Select makes id the only selected object and moves the gizmo to it.
// A value being typed for the previous selection is applied first.
func (e *Editor) Select(id engine.ID) bool {
	if cur, ok := e.scene.SelectedID(); ok && cur != id {
		e.ClearSelection()
	}
	return e.scene.Select(id)
}

// ClearSelection applies any pending typed value, then deselects.
func (e *Editor) ClearSelection() {
	e.cancelDrag()
	e.finishTextEdit()
	e.scene.ClearSelection()
}

func (e *Editor) updateCamera(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	e.camera.Yaw += mouseDelta.X * 0.1
	e.camera.Pitch -= mouseDelta.Y * 0.1
	if e.camera.Pitch > 89 {
		e.camera.Pitch = 89
	}
	if e.camera.Pitch < -89 {
		e.camera.Pitch = -89
	}

	forward, right := e.getDirections()
	speed := e.camera.MoveSpeed * deltaTime

	if rl.IsKeyDown(rl.KeyW) {
		e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
	}
	if rl.IsKeyDown(rl.KeyS) {
		e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
	}
	if rl.IsKeyDown(rl.KeyA) {
		e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
	}
	if rl.IsKeyDown(rl.KeyD) {
		e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
	}
	if rl.IsKeyDown(rl.KeyE) {
		e.camera.Position.Y += speed
	}
	if rl.IsKeyDown(rl.KeyQ) {
		e.camera.Position.Y -= speed
	}
}

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(e.camera.Yaw) * math.Pi / 180
	pitchRad := float64(e.camera.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// Camera returns the active raylib camera.
func (e *Editor) Camera() rl.Camera3D {
	forward, _ := e.getDirections()
	target := rl.Vector3Add(e.camera.Position, forward)
	return rl.Camera3D{
		Position:   e.camera.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// Draw3D draws the scene, helpers and the gizmo. Call inside
// BeginMode3D/EndMode3D.
func (e *Editor) Draw3D() {
	if e.renderer == nil {
		return
	}
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	e.renderer.DrawScene(e.scene, e.View, world.NewFrustum(e.Camera(), aspect))
	if e.View.ShowHelpers {
		e.renderer.DrawHelpers()
		e.drawGizmo()
	}
}
