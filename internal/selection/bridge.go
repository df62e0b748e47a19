package selection

import (
	"github.com/jinzhu/copier"

	"model-viewer/internal/scene"
)

// Snapshot is the overlay's editable copy of the selection and the global settings.
// Widgets mutate it freely; nothing reaches the scene until the bridge pushes it.
// Position/Rotation/Scale share field names with scene.Transform so they copy by name.
type Snapshot struct {
	Position    [3]float32
	Rotation    [3]float32 // degrees, XYZ Euler
	Scale       [3]float32
	LightColor  [4]float32 // RGBA, 0..1 per channel
	CameraSpeed float32
}

// Source resolves a selection handle to the object it names. Resolution must
// recheck validity on every call.
type Source interface {
	Resolve(h scene.Handle) (scene.Transformable, bool)
}

// LightSink receives the global light color.
type LightSink interface {
	SetLightColor(c [4]float32)
}

// SpeedSink receives the camera speed.
type SpeedSink interface {
	SetSpeed(speed float32)
}

// Bridge keeps a Snapshot and the selected scene object in sync: pull on selection
// change, push every frame. There is no dirty tracking; every push rewrites the
// selected object's transform from the snapshot.
type Bridge struct {
	source Source
	light  LightSink
	speed  SpeedSink
}

// NewBridge returns a bridge over source. light and speed may be nil.
func NewBridge(source Source, light LightSink, speed SpeedSink) *Bridge {
	return &Bridge{source: source, light: light, speed: speed}
}

// OnSelectionChanged pulls position, rotation and scale of the object behind h into
// snap, discarding any unsaved edits. Light color and camera speed are untouched.
// Returns false (and leaves snap alone) when h does not resolve.
func (b *Bridge) OnSelectionChanged(h scene.Handle, snap *Snapshot) bool {
	if snap == nil || b.source == nil || !h.HasSelection() {
		return false
	}
	obj, ok := b.source.Resolve(h)
	if !ok {
		return false
	}
	t := obj.Transform()
	if err := copier.Copy(snap, &t); err != nil {
		return false
	}
	return true
}

// PushEveryFrame writes snap back to the scene. The transform goes to the object
// behind h when it resolves; light color and camera speed are pushed regardless.
func (b *Bridge) PushEveryFrame(snap Snapshot, h scene.Handle) {
	if b.light != nil {
		b.light.SetLightColor(snap.LightColor)
	}
	if b.speed != nil {
		b.speed.SetSpeed(snap.CameraSpeed)
	}
	if b.source == nil || !h.HasSelection() {
		return
	}
	obj, ok := b.source.Resolve(h)
	if !ok {
		return
	}
	var t scene.Transform
	if err := copier.Copy(&t, &snap); err != nil {
		return
	}
	obj.SetTransform(t)
}
