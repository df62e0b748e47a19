package camera

import "github.com/chewxy/math32"

const (
	// moveStep is the distance covered per keyboard poll at speed 1.
	moveStep = 0.1
	// boostFactor multiplies movement while the boost key is held.
	boostFactor = 4
	// defaultSensitivity is degrees of rotation per pixel of cursor motion.
	defaultSensitivity = 0.15
	maxPitch           = 89
	defaultFovy        = 45
)

// Key is a logical camera control; backends map physical keys onto it.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBoost
)

// Controls exposes the raw device state the camera reads while handling input.
type Controls interface {
	KeyDown(k Key) bool
	// LookHeld reports whether the mouse-look button is held.
	LookHeld() bool
}

// Camera is a free-flying perspective camera. Yaw and pitch are in degrees; yaw 0
// looks down +X, pitch is clamped to ±89 so the view never flips.
type Camera struct {
	Position    [3]float32
	Yaw         float32
	Pitch       float32
	Fovy        float32
	Sensitivity float32

	speed    float32
	controls Controls
	looking  bool
	lastX    float32
	lastY    float32
}

// New returns a camera at position looking at the origin. controls may be nil,
// in which case keyboard and mouse handlers do nothing.
func New(position [3]float32, speed float32, controls Controls) *Camera {
	c := &Camera{
		Position:    position,
		Fovy:        defaultFovy,
		Sensitivity: defaultSensitivity,
		controls:    controls,
	}
	c.SetSpeed(speed)
	c.LookAt([3]float32{0, 0, 0})
	return c
}

// Speed returns the movement speed multiplier.
func (c *Camera) Speed() float32 { return c.speed }

// SetSpeed sets the movement speed multiplier. Negative values clamp to zero.
func (c *Camera) SetSpeed(speed float32) {
	c.speed = math32.Max(speed, 0)
}

// LookAt points the camera at target. A target equal to the position is ignored.
func (c *Camera) LookAt(target [3]float32) {
	d := sub(target, c.Position)
	n := length(d)
	if n == 0 {
		return
	}
	c.Yaw = math32.Atan2(d[2], d[0]) * rad2deg
	c.Pitch = clampPitch(math32.Asin(d[1]/n) * rad2deg)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() [3]float32 {
	yaw := c.Yaw * deg2rad
	pitch := c.Pitch * deg2rad
	return [3]float32{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Sin(yaw),
	}
}

// Right returns the unit vector to the camera's right on the XZ plane.
func (c *Camera) Right() [3]float32 {
	yaw := c.Yaw * deg2rad
	return [3]float32{-math32.Sin(yaw), 0, math32.Cos(yaw)}
}

// Target returns a point one unit ahead of the camera.
func (c *Camera) Target() [3]float32 {
	return add(c.Position, c.Forward())
}

// HandleKeyboard moves the camera according to the held movement keys.
func (c *Camera) HandleKeyboard() {
	if c.controls == nil {
		return
	}
	step := c.speed * moveStep
	if c.controls.KeyDown(KeyBoost) {
		step *= boostFactor
	}
	if step == 0 {
		return
	}
	fwd, right := c.Forward(), c.Right()
	up := [3]float32{0, 1, 0}
	var move [3]float32
	if c.controls.KeyDown(KeyForward) {
		move = add(move, fwd)
	}
	if c.controls.KeyDown(KeyBack) {
		move = sub(move, fwd)
	}
	if c.controls.KeyDown(KeyRight) {
		move = add(move, right)
	}
	if c.controls.KeyDown(KeyLeft) {
		move = sub(move, right)
	}
	if c.controls.KeyDown(KeyUp) {
		move = add(move, up)
	}
	if c.controls.KeyDown(KeyDown) {
		move = sub(move, up)
	}
	n := length(move)
	if n == 0 {
		return
	}
	for i := range move {
		c.Position[i] += move[i] / n * step
	}
}

// HandleMouse rotates the camera by the cursor delta while the look button is held.
// The first sample after the button goes down only records the cursor so the view
// does not jump.
func (c *Camera) HandleMouse(x, y float32) {
	if c.controls == nil || !c.controls.LookHeld() {
		c.looking = false
		return
	}
	if !c.looking {
		c.looking = true
		c.lastX, c.lastY = x, y
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	c.Yaw = wrapDegrees(c.Yaw + dx*c.Sensitivity)
	c.Pitch = clampPitch(c.Pitch - dy*c.Sensitivity)
}

const (
	deg2rad = math32.Pi / 180
	rad2deg = 180 / math32.Pi
)

func clampPitch(p float32) float32 {
	return math32.Max(-maxPitch, math32.Min(maxPitch, p))
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func add(a, b [3]float32) [3]float32 { return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func length(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
