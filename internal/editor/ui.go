package editor

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Editor fonts - Outfit for UI, JetBrains Mono for values
var editorFont rl.Font     // Outfit Regular - main UI font
var editorFontBold rl.Font // Outfit Bold - headers
var editorFontMono rl.Font // JetBrains Mono - numeric values
var editorFontsLoaded bool

// Theme colors - indigo/purple dark theme matching the website
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorBgActive  = rl.NewColor(48, 48, 65, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)  // #6c63ff
	colorAccentLight = rl.NewColor(167, 139, 250, 255) // #a78bfa

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSelection = rl.NewColor(108, 99, 255, 60)

	colorOK    = rl.NewColor(100, 220, 100, 255)
	colorError = rl.NewColor(255, 120, 120, 255)
)

const topBarHeight int32 = 36

// InitStyle loads the editor fonts and applies the raygui theme.
// Call once after the window is open.
func InitStyle(log *zap.Logger) {
	if !editorFontsLoaded {
		editorFontsLoaded = true
		editorFont = loadFont(log, "assets/fonts/Outfit-Regular.ttf")
		editorFontBold = loadFont(log, "assets/fonts/Outfit-Bold.ttf")
		editorFontMono = loadFont(log, "assets/fonts/JetBrainsMono-Regular.ttf")
		if editorFont.Texture.ID > 0 {
			gui.SetFont(editorFont)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// loadFont loads a TTF at high resolution for smooth scaling. A missing
// file falls back to raylib's default font.
func loadFont(log *zap.Logger, path string) rl.Font {
	font := rl.LoadFontEx(path, 48, nil)
	if font.Texture.ID == 0 {
		log.Warn("font not loaded", zap.String("path", path))
		return font
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// drawTextEx draws text using the specified font scaled to the requested size
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}

func pointIn(p rl.Vector2, x, y, w, h int32) bool {
	return p.X >= float32(x) && p.X <= float32(x+w) && p.Y >= float32(y) && p.Y <= float32(y+h)
}

// DrawUI draws the editor overlay: top bar, hierarchy panel (left),
// inspector panel (right).
func (e *Editor) DrawUI() {
	screenW := int32(rl.GetScreenWidth())

	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)
	drawTextEx(editorFontBold, "EDITOR", 12, 7, 22, colorAccent)

	// Gizmo mode indicator
	modeNames := [3]string{"[W] Move", "[E] Rotate", "[R] Scale"}
	for i, name := range modeNames {
		x := int32(115 + i*100)
		color := colorTextMuted
		if GizmoMode(i) == e.gizmoMode {
			color = colorAccentLight
		}
		drawTextEx(editorFont, name, x, 9, 18, color)
	}
	drawTextEx(editorFont, "1-5: Add  |  Del: Delete  |  Ctrl+Z: Undo  |  Ctrl+E: Export  |  G/H: Grid/Helpers", 430, 9, 16, colorTextMuted)

	if msg := e.Status(); msg != "" {
		color := colorOK
		if e.statusErr {
			color = colorError
		}
		drawTextEx(editorFontBold, msg, screenW/2-50, topBarHeight+11, 16, color)
	}

	screenH := int32(rl.GetScreenHeight())
	drawTextEx(editorFontMono, e.historyLine(), e.hierarchyWidth+12, screenH-22, 14, colorTextMuted)

	e.fieldHoveredAny = false

	e.drawHierarchy()
	e.drawInspector()

	if e.fieldHoveredAny || e.fieldDragging {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// historyLine summarises the undo stack for the bottom of the viewport.
func (e *Editor) historyLine() string {
	if !e.history.CanUndo() {
		return "History: nothing to undo"
	}
	labels := e.history.Labels()
	cur := e.history.Cursor()
	return fmt.Sprintf("History %d/%d  |  undo %s", cur, e.history.MaxSteps()-1, labels[cur])
}

// mouseInPanel returns true if the mouse is over the hierarchy or inspector panel.
func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	if m.Y <= float32(topBarHeight) {
		return true
	}
	if m.X <= float32(e.hierarchyWidth) && m.Y <= screenH {
		return true
	}
	if e.scene.Selected() != nil && m.X >= screenW-float32(e.inspectorWidth) {
		return true
	}
	return false
}
