package window

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/camera"
	"model-viewer/internal/primitives"
)

// InitError reports that the window or its GL context could not be created.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return "window init: " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }

// Config holds window creation settings.
type Config struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int // 0 = uncapped
}

// Window is the raylib window and GL context. raylib keeps one global window, so
// only one Window may be open at a time, on the thread that opened it.
type Window struct {
	destroyed bool
}

// Open creates a resizable window. Escape does not close it; use the window's close button.
func Open(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &InitError{Err: fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)}
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		rl.CloseWindow()
		return nil, &InitError{Err: errors.New("no window or GL context")}
	}
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	return &Window{}, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.destroyed || rl.WindowShouldClose()
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) { rl.SetWindowTitle(title) }

// Now returns seconds since the window opened.
func (w *Window) Now() float64 { return rl.GetTime() }

// Clear begins the frame and fills the framebuffer with color (RGBA 0..1,
// out-of-range channels clamped).
func (w *Window) Clear(color [4]float32) {
	b := primitives.ToRGBA8(color)
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(b[0], b[1], b[2], b[3]))
}

// Present ends the frame and swaps buffers. raylib polls input as part of this.
func (w *Window) Present() { rl.EndDrawing() }

// PollEvents is a no-op: Present already polled, and polling twice per frame would
// drop key-pressed edges.
func (w *Window) PollEvents() {}

// CursorPosition returns the mouse position in window pixels.
func (w *Window) CursorPosition() (float32, float32) {
	p := rl.GetMousePosition()
	return p.X, p.Y
}

// Destroy closes the window. Safe to call more than once.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	rl.CloseWindow()
}

var keyMap = map[camera.Key]int32{
	camera.KeyForward: rl.KeyW,
	camera.KeyBack:    rl.KeyS,
	camera.KeyLeft:    rl.KeyA,
	camera.KeyRight:   rl.KeyD,
	camera.KeyUp:      rl.KeySpace,
	camera.KeyDown:    rl.KeyLeftControl,
	camera.KeyBoost:   rl.KeyLeftShift,
}

// KeyDown implements camera.Controls.
func (w *Window) KeyDown(k camera.Key) bool {
	key, ok := keyMap[k]
	return ok && rl.IsKeyDown(key)
}

// LookHeld implements camera.Controls: mouse look while the right button is held.
func (w *Window) LookHeld() bool {
	return rl.IsMouseButtonDown(rl.MouseRightButton)
}
