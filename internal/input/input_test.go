package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCamera struct {
	keyboard int
	mouse    int
	lastX    float32
	lastY    float32
}

func (c *recordingCamera) HandleKeyboard() { c.keyboard++ }

func (c *recordingCamera) HandleMouse(x, y float32) {
	c.mouse++
	c.lastX, c.lastY = x, y
}

type fixedCursor struct {
	x, y  float32
	polls int
}

func (f *fixedCursor) CursorPosition() (float32, float32) {
	f.polls++
	return f.x, f.y
}

func TestResolveCapture(t *testing.T) {
	assert.Equal(t, CaptureFlags{Keyboard: true}, ResolveCapture(true, false))
	assert.Equal(t, CaptureFlags{Mouse: true}, ResolveCapture(false, true))
	assert.Equal(t, CaptureFlags{}, ResolveCapture(false, false))
}

func TestKeyboardCaptureBlocksCamera(t *testing.T) {
	for _, mouse := range []bool{false, true} {
		cam := &recordingCamera{}
		d := Dispatch(ResolveCapture(true, mouse), cam, &fixedCursor{})
		assert.Zero(t, cam.keyboard)
		assert.False(t, d.Keyboard)
	}
}

func TestMouseCaptureSkipsCursorPoll(t *testing.T) {
	cam := &recordingCamera{}
	cur := &fixedCursor{x: 10, y: 20}
	d := Dispatch(ResolveCapture(false, true), cam, cur)
	assert.Equal(t, Dispatched{Keyboard: true}, d)
	assert.Zero(t, cam.mouse)
	assert.Zero(t, cur.polls)
}

func TestMouseCapturedThenReleased(t *testing.T) {
	cam := &recordingCamera{}
	cur := &fixedCursor{x: 300, y: 400}

	// tick N: overlay holds the mouse, large cursor delta is ignored
	Dispatch(ResolveCapture(false, true), cam, cur)
	assert.Zero(t, cam.mouse)

	// tick N+1: released, handler runs exactly once with fresh coordinates
	cur.x, cur.y = 320, 410
	Dispatch(ResolveCapture(false, false), cam, cur)
	assert.Equal(t, 1, cam.mouse)
	assert.Equal(t, float32(320), cam.lastX)
	assert.Equal(t, float32(410), cam.lastY)
}

func TestNilCamera(t *testing.T) {
	assert.Equal(t, Dispatched{}, Dispatch(CaptureFlags{}, nil, &fixedCursor{}))
}
