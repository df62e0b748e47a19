// Package raygui implements overlay.Toolkit on top of raylib's raygui.
//
// raygui is stateless, so this backend keeps what an immediate-mode overlay needs
// between frames: header open state, the text field in edit mode, the slider being
// dragged and last frame's panel size. Capture is derived from those: the keyboard
// belongs to the overlay while a text field is edited, the mouse while the cursor
// is over the panel or a slider drag is in progress.
package raygui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/primitives"
)

const (
	panelX      = 10
	panelY      = 10
	panelWidth  = 320
	titleHeight = 24
	padding     = 8
	rowHeight   = 22
	rowSpacing  = 4
	labelWidth  = 96
	valueWidth  = 44
	fontSize    = 14
	swatchWidth = 18
)

// Toolkit draws a single fixed panel in the top-left corner. Widgets stack top to
// bottom in call order.
type Toolkit struct {
	title       string
	cursorY     float32
	panelHeight float32

	collapsed    map[string]bool
	editing      string
	activeSlider string

	wantKeyboard bool
	wantMouse    bool
	inFrame      bool
	closed       bool
}

// New styles raygui and returns a toolkit whose panel is titled title.
// Needs an open window.
func New(title string) *Toolkit {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(30, 30, 35, 230)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 200, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.Yellow))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(80, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(100, 100, 120, 255)))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(60, 60, 60, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, fontSize)

	return &Toolkit{
		title:       title,
		panelHeight: titleHeight + 2*padding,
		collapsed:   make(map[string]bool),
	}
}

func (t *Toolkit) bounds() rl.Rectangle {
	return rl.NewRectangle(panelX, panelY, panelWidth, t.panelHeight)
}

// BeginFrame draws the panel background sized to what the previous frame laid out.
func (t *Toolkit) BeginFrame() {
	if t.closed {
		return
	}
	t.inFrame = true
	gui.Panel(t.bounds(), t.title)
	t.cursorY = panelY + titleHeight + padding
}

// EndFrame records the panel height and resolves capture for the frame.
func (t *Toolkit) EndFrame() {
	if !t.inFrame {
		return
	}
	t.inFrame = false
	t.panelHeight = t.cursorY - panelY + padding - rowSpacing

	overPanel := rl.CheckCollisionPointRec(rl.GetMousePosition(), t.bounds())
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel {
		t.editing = ""
	}
	t.wantMouse = overPanel || t.activeSlider != ""
	t.wantKeyboard = t.editing != ""
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		t.activeSlider = ""
	}
}

// row reserves the next full-width row.
func (t *Toolkit) row() rl.Rectangle {
	r := rl.NewRectangle(panelX+padding, t.cursorY, panelWidth-2*padding, rowHeight)
	t.cursorY += rowHeight + rowSpacing
	return r
}

// labeled reserves a row, draws label in its left column and returns the control area.
func (t *Toolkit) labeled(label string) rl.Rectangle {
	r := t.row()
	gui.Label(rl.NewRectangle(r.X, r.Y, labelWidth, r.Height), label)
	return rl.NewRectangle(r.X+labelWidth, r.Y, r.Width-labelWidth, r.Height)
}

func clicked(r rl.Rectangle) bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}

// Combo cycles through items on click. raygui clamps its active index, so the
// change is detected from the click itself rather than from the returned index.
func (t *Toolkit) Combo(label string, items []string, current *int) bool {
	if !t.inFrame || len(items) == 0 {
		return false
	}
	r := t.labeled(label)
	released := rl.IsMouseButtonReleased(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
	next := int(gui.ComboBox(r, strings.Join(items, ";"), int32(max(*current, 0))))
	if !released {
		return false
	}
	if *current < 0 {
		next = 0
	}
	if next == *current {
		return false
	}
	*current = next
	return true
}

// TextField is a click-to-edit line. Enter, Escape or a click elsewhere ends editing.
func (t *Toolkit) TextField(label string, text *string) bool {
	if !t.inFrame {
		return false
	}
	r := t.labeled(label)
	hovered := rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	if hovered && pressed {
		t.editing = label
	}
	editing := t.editing == label

	bg := rl.NewColor(45, 45, 50, 255)
	switch {
	case editing:
		bg = rl.NewColor(60, 60, 70, 255)
	case hovered:
		bg = rl.NewColor(55, 55, 60, 255)
	}
	rl.DrawRectangleRec(r, bg)
	rl.DrawRectangleLinesEx(r, 1, rl.NewColor(80, 80, 90, 255))

	changed := false
	if editing {
		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			*text += string(rune(key))
			changed = true
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(*text) > 0 {
			_, size := utf8.DecodeLastRuneInString(*text)
			*text = (*text)[:len(*text)-size]
			changed = true
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) ||
			rl.IsKeyPressed(rl.KeyEscape) || (pressed && !hovered) {
			t.editing = ""
		}
	}

	display, color := *text, rl.LightGray
	if editing {
		display += "_"
		color = rl.White
	}
	display = fitTail(display, r.Width-8)
	rl.DrawText(display, int32(r.X)+4, int32(r.Y)+4, fontSize, color)
	return changed
}

// fitTail drops leading runes until s fits in width pixels, so the caret end stays visible.
func fitTail(s string, width float32) string {
	for s != "" && float32(rl.MeasureText(s, fontSize)) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

func (t *Toolkit) Button(label string) bool {
	if !t.inFrame {
		return false
	}
	return gui.Button(t.row(), label)
}

// Header is a collapsible section title, open until clicked.
func (t *Toolkit) Header(label string) bool {
	if !t.inFrame {
		return false
	}
	r := t.row()
	if clicked(r) {
		t.collapsed[label] = !t.collapsed[label]
	}
	open := !t.collapsed[label]
	rl.DrawRectangleRec(r, rl.NewColor(55, 60, 75, 255))
	marker := "v "
	if !open {
		marker = "> "
	}
	rl.DrawText(marker+label, int32(r.X)+6, int32(r.Y)+4, fontSize, rl.RayWhite)
	return open
}

// Slider reports a change only while the user drags this slider, so an
// out-of-range value raygui would clamp is never written back unasked.
func (t *Toolkit) Slider(label string, value *float32, min, max float32) bool {
	if !t.inFrame {
		return false
	}
	r := t.labeled(label)
	r.Width -= valueWidth
	if clicked(r) {
		t.activeSlider = label
	}
	next := gui.Slider(r, "", fmt.Sprintf("%.2f", *value), *value, min, max)
	if t.activeSlider != label || next == *value {
		return false
	}
	*value = next
	return true
}

// ColorEdit is one 0..1 slider per channel plus a swatch.
func (t *Toolkit) ColorEdit(label string, color *[4]float32) bool {
	if !t.inFrame {
		return false
	}
	r := t.row()
	gui.Label(rl.NewRectangle(r.X, r.Y, r.Width-swatchWidth, r.Height), label)
	b := primitives.ToRGBA8(*color)
	c := rl.NewColor(b[0], b[1], b[2], b[3])
	rl.DrawRectangleRec(rl.NewRectangle(r.X+r.Width-swatchWidth, r.Y+2, swatchWidth, r.Height-4), c)

	changed := false
	for i, ch := range [4]string{"R", "G", "B", "A"} {
		if t.Slider(label+" "+ch, &color[i], 0, 1) {
			changed = true
		}
	}
	return changed
}

func (t *Toolkit) Text(text string) {
	if !t.inFrame {
		return
	}
	gui.Label(t.row(), text)
}

// WantsKeyboardCapture is true while a text field is being edited.
func (t *Toolkit) WantsKeyboardCapture() bool { return t.wantKeyboard }

// WantsMouseCapture is true while the cursor is over the panel or a slider is dragged.
func (t *Toolkit) WantsMouseCapture() bool { return t.wantMouse }

// Shutdown stops drawing. raygui owns no resources beyond raylib's default font.
func (t *Toolkit) Shutdown() {
	t.closed = true
	t.inFrame = false
	t.wantKeyboard = false
	t.wantMouse = false
}
