package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"portfolio3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefs is the editor state kept between sessions. The scene itself is
// not part of it.
type Prefs struct {
	WindowWidth     int                `json:"windowWidth"`
	WindowHeight    int                `json:"windowHeight"`
	WindowX         int                `json:"windowX"`
	WindowY         int                `json:"windowY"`
	CameraPosition  rl.Vector3         `json:"cameraPosition"`
	CameraYaw       float32            `json:"cameraYaw"`
	CameraPitch     float32            `json:"cameraPitch"`
	CameraMoveSpeed float32            `json:"cameraMoveSpeed"`
	GizmoMode       int                `json:"gizmoMode"`
	View            world.ViewSettings `json:"view"`
	HierarchyWidth  int32              `json:"hierarchyWidth"`
	InspectorWidth  int32              `json:"inspectorWidth"`
}

const PrefsFile = ".editor_prefs.json"

// LoadPrefs reads preferences from path. A missing file returns nil
// without an error.
func LoadPrefs(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse editor prefs: %w", err)
	}
	return &prefs, nil
}

// SavePrefs writes prefs to path.
func SavePrefs(path string, prefs Prefs) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal editor prefs: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Prefs captures the editor's camera, view and panel state. Window
// geometry is left for the caller, which owns the window.
func (e *Editor) Prefs() Prefs {
	return Prefs{
		CameraPosition:  e.camera.Position,
		CameraYaw:       e.camera.Yaw,
		CameraPitch:     e.camera.Pitch,
		CameraMoveSpeed: e.camera.MoveSpeed,
		GizmoMode:       int(e.gizmoMode),
		View:            e.View,
		HierarchyWidth:  e.hierarchyWidth,
		InspectorWidth:  e.inspectorWidth,
	}
}

// ApplyPrefs applies loaded preferences to the editor.
func (e *Editor) ApplyPrefs(prefs *Prefs) {
	if prefs == nil {
		return
	}

	e.camera.Position = prefs.CameraPosition
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	if prefs.CameraMoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.CameraMoveSpeed
	}
	if m := GizmoMode(prefs.GizmoMode); m >= GizmoMove && m <= GizmoScale {
		e.gizmoMode = m
	}
	e.View = prefs.View
	if prefs.HierarchyWidth > 0 {
		e.hierarchyWidth = prefs.HierarchyWidth
	}
	if prefs.InspectorWidth > 0 {
		e.inspectorWidth = prefs.InspectorWidth
	}
}
