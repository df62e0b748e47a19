package overlay

import "errors"

// ErrFrameClosed is returned by Frame when fn tries to run on a toolkit that is shut down.
var ErrFrameClosed = errors.New("overlay: toolkit shut down")

// Toolkit is an immediate-mode widget backend. Widget calls are only valid between
// BeginFrame and EndFrame; use Frame rather than calling those directly.
// Widgets report interaction: value-changed for editors, pressed for buttons,
// open for collapsible headers.
type Toolkit interface {
	BeginFrame()
	EndFrame()

	Combo(label string, items []string, current *int) bool
	TextField(label string, text *string) bool
	Button(label string) bool
	Header(label string) bool
	Slider(label string, value *float32, min, max float32) bool
	ColorEdit(label string, color *[4]float32) bool
	Text(text string)

	// Capture intent, valid after EndFrame for the frame just rendered.
	WantsKeyboardCapture() bool
	WantsMouseCapture() bool

	Shutdown()
}

// Context is the handle widgets are drawn through during one overlay frame. It
// stops forwarding once the frame has ended, so a context leaked past Frame
// cannot draw outside Begin/End.
type Context struct {
	tk   Toolkit
	open bool
}

// Frame brackets fn with BeginFrame/EndFrame. EndFrame runs on every exit path,
// including an early error return or a panic inside fn.
func Frame(tk Toolkit, fn func(ctx *Context) error) error {
	if tk == nil {
		return ErrFrameClosed
	}
	tk.BeginFrame()
	ctx := &Context{tk: tk, open: true}
	defer func() {
		ctx.open = false
		tk.EndFrame()
	}()
	return fn(ctx)
}

// Open reports whether the frame this context belongs to is still running.
func (c *Context) Open() bool { return c.open }

// Combo shows items as a selector bound to *current; true when the user picked a different item.
func (c *Context) Combo(label string, items []string, current *int) bool {
	if !c.open || len(items) == 0 {
		return false
	}
	return c.tk.Combo(label, items, current)
}

// TextField edits *text in place; true when the text changed.
func (c *Context) TextField(label string, text *string) bool {
	if !c.open {
		return false
	}
	return c.tk.TextField(label, text)
}

// Button reports whether the button was pressed this frame.
func (c *Context) Button(label string) bool {
	if !c.open {
		return false
	}
	return c.tk.Button(label)
}

// Header draws a collapsible section header and reports whether it is expanded.
func (c *Context) Header(label string) bool {
	if !c.open {
		return false
	}
	return c.tk.Header(label)
}

// Slider edits *value in [min, max]; true when the user moved it.
func (c *Context) Slider(label string, value *float32, min, max float32) bool {
	if !c.open {
		return false
	}
	return c.tk.Slider(label, value, min, max)
}

// SliderVec3 draws one slider per axis with suffixes X, Y, Z; true when any moved.
func (c *Context) SliderVec3(prefix string, v *[3]float32, min, max float32) bool {
	changed := false
	for i, axis := range [3]string{"X", "Y", "Z"} {
		if c.Slider(prefix+axis, &v[i], min, max) {
			changed = true
		}
	}
	return changed
}

// ColorEdit edits an RGBA color with channels in 0..1; true when changed.
func (c *Context) ColorEdit(label string, color *[4]float32) bool {
	if !c.open {
		return false
	}
	return c.tk.ColorEdit(label, color)
}

// Text draws a line of static text.
func (c *Context) Text(text string) {
	if !c.open {
		return
	}
	c.tk.Text(text)
}
