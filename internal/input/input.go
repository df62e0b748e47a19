package input

// CaptureFlags records which devices the overlay claimed for the current tick.
// Flags are recomputed from the overlay's post-render state, never accumulated.
type CaptureFlags struct {
	Keyboard bool
	Mouse    bool
}

// Camera is the scene side of input: a keyboard handler and a mouse handler
// that receives cursor coordinates in window pixels.
type Camera interface {
	HandleKeyboard()
	HandleMouse(x, y float32)
}

// Cursor reports the current cursor position in window pixels.
type Cursor interface {
	CursorPosition() (x, y float32)
}

// Dispatched reports which camera handlers ran during a Dispatch.
type Dispatched struct {
	Keyboard bool
	Mouse    bool
}

// ResolveCapture builds the flags for this tick from the overlay's want-capture state.
// The overlay's intent always wins.
func ResolveCapture(overlayWantsKeyboard, overlayWantsMouse bool) CaptureFlags {
	return CaptureFlags{Keyboard: overlayWantsKeyboard, Mouse: overlayWantsMouse}
}

// Dispatch hands input to the camera for every device the overlay did not capture.
// The cursor is polled only when the mouse handler will run. Input arriving while a
// device is captured is dropped for the scene; nothing is queued or replayed.
func Dispatch(flags CaptureFlags, cam Camera, cursor Cursor) Dispatched {
	var d Dispatched
	if cam == nil {
		return d
	}
	if !flags.Keyboard {
		cam.HandleKeyboard()
		d.Keyboard = true
	}
	if !flags.Mouse && cursor != nil {
		x, y := cursor.CursorPosition()
		cam.HandleMouse(x, y)
		d.Mouse = true
	}
	return d
}
