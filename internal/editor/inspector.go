package editor

import (
	"fmt"
	"strconv"

	"portfolio3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// fieldEvent is what a float field did this frame.
type fieldEvent int

const (
	fieldIdle   fieldEvent = iota
	fieldLive              // value is changing (scrub in progress)
	fieldCommit            // scrub released
)

var materialKinds = []engine.MaterialKind{engine.MaterialStandard, engine.MaterialBasic, engine.MaterialNormal}

// drawInspector draws the selected object's properties on the right.
func (e *Editor) drawInspector() {
	obj := e.scene.Selected()
	if obj == nil {
		return
	}

	panelW := e.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := topBarHeight
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	y := panelY + 8

	// Name and kind (read-only)
	drawTextEx(editorFontBold, obj.Name, panelX+12, y, 20, colorTextPrimary)
	y += 26
	drawTextEx(editorFont, string(obj.Kind), panelX+12, y, 15, colorTextMuted)
	y += 22

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
	y += 10

	y = e.drawTransformSection(obj, panelX, y, panelW)

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
	y += 10

	e.drawMaterialSection(obj, panelX, y, panelW)
}

func (e *Editor) drawTransformSection(obj *engine.SceneObject, panelX, y, panelW int32) int32 {
	drawTextEx(editorFontBold, "Transform", panelX+12, y, 18, colorTextSecondary)
	y += 28

	rows := []struct {
		label string
		id    string
		field transformField
	}{
		{"Pos", "pos", fieldPosition},
		{"Rot", "rot", fieldRotation},
		{"Scale", "scale", fieldScale},
	}

	labelW := int32(45)
	fieldW := (panelW - 38 - labelW) / 3
	fieldH := int32(24)
	startX := panelX + 12 + labelW

	for _, row := range rows {
		drawTextEx(editorFont, row.label, panelX+14, y+4, 16, colorTextMuted)
		for a := AxisX; a <= AxisZ; a++ {
			x := startX + int32(a)*(fieldW+2)
			id := fmt.Sprintf("%s.%c", row.id, "xyz"[a])
			e.drawTransformField(obj, x, y, fieldW, fieldH, id, row.field, a)
		}
		y += fieldH + 4
	}
	drawTextEx(editorFontMono, "rotation in degrees", panelX+16, y, 13, colorTextMuted)
	return y + 22
}

// drawTransformField draws one axis field. Scrubbing updates the object
// live and commits on release; typed values go through finishTextEdit.
func (e *Editor) drawTransformField(obj *engine.SceneObject, x, y, w, h int32, id string, f transformField, a Axis) {
	var vec rl.Vector3
	switch f {
	case fieldPosition:
		vec = obj.Transform.Position
	case fieldRotation:
		vec = obj.Transform.Rotation
	case fieldScale:
		vec = obj.Transform.Scale
	}

	display := axisValue(vec, a)
	prec := 2
	if f == fieldRotation {
		display = RadiansToDegrees(display)
		prec = 1
	}

	v, ev := e.drawFloatField(x, y, w, h, id, display, prec)
	if ev == fieldIdle {
		return
	}
	if f == fieldRotation {
		v = DegreesToRadians(v)
	}
	applyField(obj, f, a, v)
	if ev == fieldCommit && obj.Transform != e.fieldEditStart {
		e.commit(f.label())
	}
}

// drawFloatField draws an editable float input field with drag-to-scrub support.
func (e *Editor) drawFloatField(x, y, w, h int32, id string, value float32, prec int) (float32, fieldEvent) {
	mousePos := rl.GetMousePosition()
	hovered := pointIn(mousePos, x, y, w, h)

	editMode := e.activeInputID == id
	isDragging := e.fieldDragging && e.fieldDragID == id
	event := fieldIdle

	if hovered && !editMode {
		e.fieldHoveredAny = true
	}

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered || isDragging {
		bgColor = colorBgHover
	}
	bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, colorAccent)
	}

	// Handle drag-to-scrub (when not in edit mode)
	if !editMode {
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.fieldDragging = true
			e.fieldDragID = id
			e.fieldDragStartX = mousePos.X
			e.fieldDragStartVal = value
			if obj := e.scene.Selected(); obj != nil {
				e.fieldEditStart = obj.Transform
			}
		}

		if isDragging {
			deltaX := mousePos.X - e.fieldDragStartX
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				// Sensitivity: 100 pixels = 1.0 change, hold shift for fine control
				sensitivity := float32(0.01)
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity = 0.001
				}
				value = e.fieldDragStartVal + deltaX*sensitivity
				event = fieldLive
			} else {
				if deltaX > -2 && deltaX < 2 {
					// Was a click, not a drag - enter edit mode
					e.beginTextEdit(id, strconv.FormatFloat(float64(value), 'f', prec, 32))
				} else {
					event = fieldCommit
				}
				e.fieldDragging = false
				e.fieldDragID = ""
			}
		}
	}

	if editMode {
		drawTextEx(editorFontMono, e.inputTextValue+"_", x+6, y+5, 15, colorTextPrimary)

		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			ch := rune(key)
			// Allow digits, minus, dot
			if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
				e.inputTextValue += string(ch)
			}
		}

		if rl.IsKeyPressed(rl.KeyBackspace) && len(e.inputTextValue) > 0 {
			e.inputTextValue = e.inputTextValue[:len(e.inputTextValue)-1]
		}

		// Enter or click outside to confirm
		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || clickedOutside || rl.IsKeyPressed(rl.KeyTab) {
			e.finishTextEdit()
		}

		if rl.IsKeyPressed(rl.KeyEscape) {
			e.cancelTextEdit()
		}
	} else {
		text := strconv.FormatFloat(float64(value), 'f', prec, 32)
		drawTextEx(editorFontMono, text, x+6, y+5, 15, colorTextSecondary)
	}

	return value, event
}

func (e *Editor) drawMaterialSection(obj *engine.SceneObject, panelX, y, panelW int32) int32 {
	drawTextEx(editorFontBold, "Material", panelX+12, y, 18, colorTextSecondary)
	y += 28

	// Color swatch + cycle button
	color, err := engine.ParseHexColor(obj.Material.Color)
	if err != nil {
		color = rl.White
	}
	swatch := rl.Rectangle{X: float32(panelX + 14), Y: float32(y), Width: 24, Height: 24}
	rl.DrawRectangleRec(swatch, color)
	rl.DrawRectangleLinesEx(swatch, 1, rl.Gray)
	drawTextEx(editorFontMono, obj.Material.Color, panelX+46, y+4, 15, colorTextSecondary)
	if gui.Button(rl.Rectangle{X: float32(panelX + panelW - 96), Y: float32(y), Width: 80, Height: 24}, "Next") {
		e.CycleColor()
	}
	y += 32

	wire := gui.CheckBox(rl.Rectangle{X: float32(panelX + 14), Y: float32(y), Width: 20, Height: 20}, "Wireframe", obj.Material.Wireframe)
	if wire != obj.Material.Wireframe {
		e.SetWireframe(wire)
	}
	y += 30

	btnW := (panelW - 36) / int32(len(materialKinds))
	for i, k := range materialKinds {
		bx := panelX + 12 + int32(i)*(btnW+4)
		if obj.Material.Kind == k {
			rl.DrawRectangle(bx-2, y-2, btnW+4, 28, colorSelection)
		}
		if gui.Button(rl.Rectangle{X: float32(bx), Y: float32(y), Width: float32(btnW), Height: 24}, string(k)) {
			e.SetMaterialKind(k)
		}
	}
	return y + 34
}

// fieldIDs maps inspector field ids to the property they edit.
var fieldIDs = map[string]struct {
	field transformField
	axis  Axis
}{
	"pos.x": {fieldPosition, AxisX}, "pos.y": {fieldPosition, AxisY}, "pos.z": {fieldPosition, AxisZ},
	"rot.x": {fieldRotation, AxisX}, "rot.y": {fieldRotation, AxisY}, "rot.z": {fieldRotation, AxisZ},
	"scale.x": {fieldScale, AxisX}, "scale.y": {fieldScale, AxisY}, "scale.z": {fieldScale, AxisZ},
}

// beginTextEdit puts field id into typing mode starting from text.
func (e *Editor) beginTextEdit(id, text string) {
	e.activeInputID = id
	e.inputTextValue = text
}

func (e *Editor) cancelTextEdit() {
	e.activeInputID = ""
	e.inputTextValue = ""
}

// finishTextEdit applies the typed value to the selection and commits it
// when it changed anything. Unparseable or refused input is dropped.
// Rotation is typed in degrees.
func (e *Editor) finishTextEdit() bool {
	id, text := e.activeInputID, e.inputTextValue
	e.cancelTextEdit()
	if id == "" {
		return false
	}

	target, ok := fieldIDs[id]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(text, 32)
	if err != nil {
		e.log.Debug("typed value dropped", zap.String("field", id), zap.String("text", text))
		return false
	}
	v := float32(parsed)
	if target.field == fieldRotation {
		v = DegreesToRadians(v)
	}
	return e.editField(target.field, target.axis, v)
}
