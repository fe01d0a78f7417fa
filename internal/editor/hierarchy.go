package editor

import (
	"portfolio3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHierarchy draws the toolbar and object list on the left.
func (e *Editor) drawHierarchy() {
	panelX := int32(0)
	panelY := topBarHeight
	panelW := e.hierarchyWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)

	// Add-shape toolbar
	drawTextEx(editorFontBold, "Add", panelX+12, panelY+8, 18, colorTextSecondary)
	btnY := panelY + 32
	btnW := (panelW - 28) / 2
	for i, kind := range engine.Kinds {
		bx := panelX + 10 + int32(i%2)*(btnW+6)
		by := btnY + int32(i/2)*28
		if gui.Button(rl.Rectangle{X: float32(bx), Y: float32(by), Width: float32(btnW), Height: 24}, string(kind)) {
			e.AddShape(kind)
		}
	}
	rows := (int32(len(engine.Kinds)) + 1) / 2
	y := btnY + rows*28 + 8

	deleteBounds := rl.Rectangle{X: float32(panelX + 10), Y: float32(y), Width: float32(panelW - 20), Height: 24}
	if e.scene.Selected() == nil {
		gui.Disable()
	}
	if gui.Button(deleteBounds, "Delete") {
		e.DeleteSelected()
	}
	gui.Enable()
	y += 34

	rl.DrawLine(panelX+12, y, panelX+panelW-12, y, rl.NewColor(40, 40, 55, 255))
	y += 6
	drawTextEx(editorFontBold, "Scene", panelX+12, y, 18, colorTextSecondary)
	y += 26

	listTop := y
	listH := panelY + panelH - listTop
	mousePos := rl.GetMousePosition()
	mouseInList := pointIn(mousePos, panelX, listTop, panelW, listH)

	if mouseInList && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		scroll := rl.GetMouseWheelMove()
		e.hierarchyScroll -= int32(scroll * 20)
		if e.hierarchyScroll < 0 {
			e.hierarchyScroll = 0
		}
	}

	itemH := int32(22)
	objects := e.scene.List()
	maxScroll := int32(len(objects))*itemH - listH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.hierarchyScroll > maxScroll {
		e.hierarchyScroll = maxScroll
	}

	selID, hasSel := e.scene.SelectedID()

	rl.BeginScissorMode(panelX, listTop, panelW, listH)

	for i, obj := range objects {
		itemY := listTop + int32(i)*itemH - e.hierarchyScroll
		if itemY+itemH < listTop || itemY > panelY+panelH {
			continue
		}

		hovered := mouseInList && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		selected := hasSel && selID == obj.ID

		if selected {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.Select(obj.ID)
		}

		txtColor := colorTextSecondary
		if selected {
			txtColor = colorAccentLight
		}
		drawTextEx(editorFont, obj.Name, panelX+12, itemY+3, 16, txtColor)
	}

	if len(objects) == 0 {
		drawTextEx(editorFont, "Empty scene", panelX+12, listTop+3, 15, colorTextMuted)
	}

	rl.EndScissorMode()
}
