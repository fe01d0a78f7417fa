package editor

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// exportName returns the file name for an export taken at t.
func exportName(t time.Time) string {
	return fmt.Sprintf("scene-%s.png", t.Format("20060102-150405"))
}

// ExportImage renders the scene to a PNG under the export directory and
// returns its path. The editor's view settings are unchanged afterwards.
func (e *Editor) ExportImage() (string, error) {
	if e.renderer == nil {
		return "", fmt.Errorf("export: renderer not initialized")
	}
	s, err := e.exportSettings.Resolve(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.exportDir, exportName(time.Now()))
	if err := e.renderer.Export(path, e.Camera(), e.scene, &e.View, s, e.drawGizmo); err != nil {
		return "", err
	}
	e.log.Info("exported image",
		zap.String("path", path),
		zap.Int32("width", s.Width),
		zap.Int32("height", s.Height))
	return path, nil
}

func (e *Editor) exportImage() {
	path, err := e.ExportImage()
	if err != nil {
		e.setError("Export failed: %v", err)
		return
	}
	e.setMsg("Exported %s", filepath.Base(path))
}
