package world

import (
	"fmt"
	"os"
	"path/filepath"

	"portfolio3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Export renders scene from cam into an offscreen target of the requested
// size and writes it as an image. view is switched to the export's
// visibility flags for the pass and restored afterwards. overlay, when not
// nil, runs inside the 3D pass if helpers are shown (gizmo, outlines).
func (r *Renderer) Export(path string, cam rl.Camera3D, scene *engine.Scene, view *ViewSettings, s ExportSettings, overlay func()) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	restore := applyExportView(view, s)
	defer restore()

	target := rl.LoadRenderTexture(s.Width, s.Height)
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(BackgroundColor)
	rl.BeginMode3D(cam)
	r.DrawScene(scene, *view, NewFrustum(cam, float32(s.Width)/float32(s.Height)))
	if view.ShowHelpers {
		r.DrawHelpers()
		if overlay != nil {
			overlay()
		}
	}
	rl.EndMode3D()
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(target.Texture)
	defer rl.UnloadImage(img)
	// Render textures are stored bottom-up
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("export: could not write %s", path)
	}
	return nil
}
