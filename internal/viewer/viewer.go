package viewer

import (
	"context"
	"errors"
	"fmt"

	"model-viewer/internal/frameclock"
	"model-viewer/internal/input"
	"model-viewer/internal/logger"
	"model-viewer/internal/overlay"
	"model-viewer/internal/scene"
	"model-viewer/internal/selection"
	"model-viewer/internal/viewerconfig"
)

// Window is the windowing system the viewer drives. Clear starts a frame on the
// framebuffer, Present ends it; PollEvents must not block.
type Window interface {
	ShouldClose() bool
	Now() float64
	Clear(color [4]float32)
	SetTitle(title string)
	CursorPosition() (x, y float32)
	Present()
	PollEvents()
	Destroy()
}

// Stage updates and draws the 3D scene. A Stage that also has an Unload method
// gets it called on shutdown, before the window goes away.
type Stage interface {
	Update()
	Draw()
}

type unloader interface {
	Unload()
}

// Camera is the scene camera: input handlers plus a speed knob.
type Camera interface {
	input.Camera
	Speed() float32
	SetSpeed(speed float32)
}

// Watcher reports model files changed on disk. Optional.
type Watcher interface {
	Add(path string) error
	Remove(path string)
	Changed() ([]string, []error)
	Close() error
}

// State is the orchestrator's lifecycle state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Options wires the viewer's collaborators. Watcher may be nil; Log may be nil
// (lines are then kept in memory only).
type Options struct {
	Config  viewerconfig.Config
	Window  Window
	Overlay overlay.Toolkit
	Scene   *scene.Scene
	Stage   Stage
	Camera  Camera
	Watcher Watcher
	Log     *logger.Logger
}

// Viewer is the per-frame orchestrator. Everything runs on the calling goroutine,
// one step after another; nothing is in flight between frames.
type Viewer struct {
	cfg     viewerconfig.Config
	win     Window
	ui      overlay.Toolkit
	scn     *scene.Scene
	stage   Stage
	cam     Camera
	watcher Watcher
	log     *logger.Logger

	clock  *frameclock.Clock
	bridge *selection.Bridge

	snapshot  selection.Snapshot
	handle    scene.Handle
	capture   input.CaptureFlags
	sample    frameclock.Sample
	pathInput string
	status    string
	state     State
}

// New builds a viewer in the Running state with an empty selection.
func New(opts Options) (*Viewer, error) {
	switch {
	case opts.Window == nil:
		return nil, errors.New("viewer: window is required")
	case opts.Overlay == nil:
		return nil, errors.New("viewer: overlay is required")
	case opts.Scene == nil:
		return nil, errors.New("viewer: scene is required")
	case opts.Stage == nil:
		return nil, errors.New("viewer: stage is required")
	case opts.Camera == nil:
		return nil, errors.New("viewer: camera is required")
	}
	log := opts.Log
	if log == nil {
		log = logger.New("")
	}
	v := &Viewer{
		cfg:     opts.Config,
		win:     opts.Window,
		ui:      opts.Overlay,
		scn:     opts.Scene,
		stage:   opts.Stage,
		cam:     opts.Camera,
		watcher: opts.Watcher,
		log:     log,
		clock:   frameclock.New(opts.Config.GateHz),
		bridge:  selection.NewBridge(opts.Scene, opts.Scene, opts.Camera),
	}
	v.snapshot.LightColor = opts.Config.LightColor
	v.snapshot.CameraSpeed = opts.Config.Camera.Speed
	return v, nil
}

// Preload loads each path as if typed into the overlay. Failures are logged and
// returned; the remaining paths still load.
func (v *Viewer) Preload(paths []string) []error {
	var errs []error
	for _, p := range paths {
		if err := v.loadModel(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Run drives frames until the window asks to close or ctx is cancelled, then shuts down.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.Shutdown()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !v.Frame() {
			return nil
		}
	}
}

// Frame runs one frame and reports whether the viewer is still running. Order:
// close check, clock, clear, scene update and draw, overlay, push, capture,
// gated title and input, present, poll.
func (v *Viewer) Frame() bool {
	if v.state == Closing {
		return false
	}
	if v.win.ShouldClose() {
		v.Shutdown()
		return false
	}

	sample := v.clock.Tick(v.win.Now())
	v.win.Clear(v.cfg.Background)

	v.reloadChanged()
	v.stage.Update()
	v.revalidateSelection()
	v.stage.Draw()

	if err := overlay.Frame(v.ui, v.drawPanel); err != nil {
		v.log.Log(err.Error())
	}
	v.bridge.PushEveryFrame(v.snapshot, v.handle)
	v.capture = input.ResolveCapture(v.ui.WantsKeyboardCapture(), v.ui.WantsMouseCapture())

	if sample.ShouldGate {
		v.sample = sample
		v.win.SetTitle(v.title(sample))
		input.Dispatch(v.capture, v.cam, v.win)
	}

	v.win.Present()
	v.win.PollEvents()
	return true
}

// Shutdown releases the overlay, scene assets, stage resources, file watcher and
// window, in that order. Only the first call does anything. Release errors are logged, not returned.
func (v *Viewer) Shutdown() {
	if v.state == Closing {
		return
	}
	v.state = Closing
	v.ui.Shutdown()
	v.scn.Close()
	if u, ok := v.stage.(unloader); ok {
		u.Unload()
	}
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.log.Logf("watcher close: %v", err)
		}
	}
	v.win.Destroy()
	v.handle = scene.Handle{}
	v.log.Log("viewer closed")
}

func (v *Viewer) title(s frameclock.Sample) string {
	return fmt.Sprintf("%s - (%.1f FPS / %.3f ms)", v.cfg.Window.Title, s.FPS, s.FrameMs)
}

// revalidateSelection drops a handle the scene no longer honors. If the scene
// still has a selection (its index shifted after a removal) the snapshot is pulled
// from it again.
func (v *Viewer) revalidateSelection() {
	if !v.handle.HasSelection() || v.scn.Valid(v.handle) {
		return
	}
	v.handle = v.scn.Selection()
	if v.handle.HasSelection() {
		v.bridge.OnSelectionChanged(v.handle, &v.snapshot)
	}
}

func (v *Viewer) selectModel(i int) {
	v.scn.SelectModel(i)
	h := v.scn.Selection()
	if h.Index() != i {
		return
	}
	v.handle = h
	v.bridge.OnSelectionChanged(h, &v.snapshot)
}

func (v *Viewer) loadModel(path string) error {
	h, err := v.scn.LoadModel(path)
	if err != nil {
		v.status = "Load failed: " + err.Error()
		return err
	}
	v.selectModel(h.Index())
	m, _ := v.scn.Selected()
	// The scene stores the trimmed path; watch and reload by that one.
	if v.watcher != nil {
		if err := v.watcher.Add(m.Path()); err != nil {
			v.log.Logf("watch %s: %v", m.Path(), err)
		}
	}
	v.status = "Loaded " + m.Name()
	v.log.Logf("loaded %s as %q", m.Path(), m.Name())
	return nil
}

func (v *Viewer) removeSelected() {
	m, ok := v.scn.Selected()
	if !ok {
		return
	}
	name, path := m.Name(), m.Path()
	if err := v.scn.RemoveModel(v.handle); err != nil {
		v.log.Logf("remove %s: %v", name, err)
		return
	}
	v.handle = scene.Handle{}
	if v.watcher != nil && !v.pathInUse(path) {
		v.watcher.Remove(path)
	}
	v.status = "Removed " + name
	v.log.Logf("removed %q", name)
}

func (v *Viewer) pathInUse(path string) bool {
	for _, m := range v.scn.Models() {
		if scene.SamePath(m.Path(), path) {
			return true
		}
	}
	return false
}

func (v *Viewer) reloadChanged() {
	if v.watcher == nil {
		return
	}
	changed, errs := v.watcher.Changed()
	for _, err := range errs {
		v.log.Logf("watch: %v", err)
	}
	for _, path := range changed {
		n, err := v.scn.Reload(path)
		if err != nil {
			v.status = "Reload failed: " + err.Error()
			v.log.Log(err.Error())
			continue
		}
		if n > 0 {
			v.log.Logf("reloaded %s (%d model(s))", path, n)
		}
	}
}

// State returns the lifecycle state.
func (v *Viewer) State() State { return v.state }

// Snapshot returns a copy of the editable snapshot.
func (v *Viewer) Snapshot() selection.Snapshot { return v.snapshot }

// Selection returns the handle the overlay is editing.
func (v *Viewer) Selection() scene.Handle { return v.handle }

// Capture returns the capture flags computed on the last frame.
func (v *Viewer) Capture() input.CaptureFlags { return v.capture }

// Status returns the overlay status line.
func (v *Viewer) Status() string { return v.status }

// Stats returns the FPS sample from the last gated tick.
func (v *Viewer) Stats() frameclock.Sample { return v.sample }
