package frameclock

// DefaultGateHz is the cadence of gated ticks (title refresh, input polling).
const DefaultGateHz = 60

// Sample is the result of one Tick. FPS and FrameMs are averaged over every frame
// counted since the previous gate and only change on gated ticks.
type Sample struct {
	ShouldGate bool
	FPS        float64
	FrameMs    float64
}

// State is the clock's internal bookkeeping, exposed for inspection.
// Accumulated and Frames reset to zero exactly when a gated tick fires.
type State struct {
	LastTick    float64
	Accumulated float64
	Frames      int
}

// Clock tracks elapsed time between frames and fires a gated tick whenever at least
// one gate interval has accumulated. Render frames may run far above the gate rate;
// low-frequency work keys off Sample.ShouldGate instead of running every frame.
type Clock struct {
	interval float64
	started  bool
	state    State
	fps      float64
	frameMs  float64
}

// New returns a clock that gates at gateHz ticks per second. gateHz <= 0 uses DefaultGateHz.
func New(gateHz float64) *Clock {
	if gateHz <= 0 {
		gateHz = DefaultGateHz
	}
	return &Clock{interval: 1 / gateHz}
}

// Interval returns the gate interval in seconds.
func (c *Clock) Interval() float64 {
	return c.interval
}

// Tick records a frame at time now (seconds, monotonic source such as rl.GetTime).
// The first tick has no prior timestamp. It only sets LastTick; it never gates and
// is not counted in the first average.
func (c *Clock) Tick(now float64) Sample {
	if !c.started {
		c.started = true
		c.state.LastTick = now
		return c.sample(false)
	}

	elapsed := now - c.state.LastTick
	if elapsed < 0 {
		elapsed = 0
	}
	c.state.LastTick = now
	c.state.Accumulated += elapsed
	c.state.Frames++

	if c.state.Accumulated < c.interval {
		return c.sample(false)
	}
	if c.state.Frames > 0 && c.state.Accumulated > 0 {
		c.fps = float64(c.state.Frames) / c.state.Accumulated
		c.frameMs = c.state.Accumulated / float64(c.state.Frames) * 1000
	}
	c.state.Accumulated = 0
	c.state.Frames = 0
	return c.sample(true)
}

func (c *Clock) sample(gate bool) Sample {
	return Sample{ShouldGate: gate, FPS: c.fps, FrameMs: c.frameMs}
}

// State returns a copy of the clock's bookkeeping.
func (c *Clock) State() State {
	return c.state
}
