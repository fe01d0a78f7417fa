// Package app runs the desktop windows: the scene editor and the
// animated showcase.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio3d/internal/config"
	"portfolio3d/internal/editor"
	"portfolio3d/internal/engine"
	"portfolio3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ChdirToExecutable moves the working directory next to the binary so
// relative asset and prefs paths resolve for deployed builds. Only the
// desktop commands call it, after the config has been read.
func ChdirToExecutable(log *zap.Logger) {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	dir, ok := assetDir(execPath)
	if !ok {
		return
	}
	if err := os.Chdir(dir); err != nil {
		log.Warn("cannot enter binary directory", zap.String("dir", dir), zap.Error(err))
	}
}

// assetDir is the directory holding execPath. "go run" binaries live in a
// go-build temp directory and report false.
func assetDir(execPath string) (string, bool) {
	dir := filepath.Dir(execPath)
	if strings.Contains(dir, "go-build") {
		return "", false
	}
	return dir, true
}

// exportSettings converts the export section of the config.
func exportSettings(c config.ExportConfig) world.ExportSettings {
	return world.ExportSettings{
		ShowGrid:    c.ShowGrid,
		ShowHelpers: c.ShowHelpers,
		Width:       c.Width,
		Height:      c.Height,
	}
}

// NewEditor builds the editor for cfg without touching the window.
func NewEditor(cfg *config.Config, log *zap.Logger) *editor.Editor {
	return editor.New(engine.NewScene("Main"), editor.Options{
		MaxHistory: cfg.Editor.MaxHistory,
		Export:     exportSettings(cfg.Export),
		ExportDir:  cfg.Export.Dir,
		Logger:     log,
	})
}

// RunEditor opens the editor window and blocks until it is closed.
func RunEditor(cfg *config.Config, log *zap.Logger) error {
	ed := NewEditor(cfg, log)

	prefs, err := editor.LoadPrefs(cfg.Editor.PrefsFile)
	if err != nil {
		log.Warn("editor prefs ignored", zap.String("path", cfg.Editor.PrefsFile), zap.Error(err))
		prefs = nil
	}

	width, height := cfg.Editor.WindowWidth, cfg.Editor.WindowHeight
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width, height = int32(prefs.WindowWidth), int32(prefs.WindowHeight)
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, "Scene Editor")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open editor window")
	}

	rl.SetTargetFPS(cfg.Editor.TargetFPS)
	// Escape clears the selection instead of quitting
	rl.SetExitKey(rl.KeyNull)

	if prefs != nil {
		ed.ApplyPrefs(prefs)
		if prefs.WindowX != 0 || prefs.WindowY != 0 {
			rl.SetWindowPosition(prefs.WindowX, prefs.WindowY)
		}
	}

	editor.InitStyle(log)

	// Renderer needs the OpenGL context
	renderer := world.NewRenderer()
	renderer.Initialize()
	defer renderer.Unload()
	ed.SetRenderer(renderer)

	log.Info("editor started",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Int("maxHistory", cfg.Editor.MaxHistory))

	for !rl.WindowShouldClose() {
		ed.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(world.BackgroundColor)
		rl.BeginMode3D(ed.Camera())
		ed.Draw3D()
		rl.EndMode3D()
		ed.DrawUI()
		rl.EndDrawing()
	}

	saved := ed.Prefs()
	pos := rl.GetWindowPosition()
	saved.WindowX, saved.WindowY = int(pos.X), int(pos.Y)
	saved.WindowWidth, saved.WindowHeight = rl.GetScreenWidth(), rl.GetScreenHeight()
	if err := editor.SavePrefs(cfg.Editor.PrefsFile, saved); err != nil {
		log.Warn("editor prefs not saved", zap.Error(err))
	}
	return nil
}
