package viewer

import "model-viewer/internal/overlay"

// Widget labels of the "Inspect Model" panel.
const (
	labelSelect      = "Selected Model"
	labelPath        = "Model Path"
	labelLoad        = "Load Model"
	labelRemove      = "Remove Model"
	labelPosition    = "Position"
	labelRotation    = "Rotation"
	labelScale       = "Scale"
	labelLightColor  = "Light Color"
	labelCameraSpeed = "Camera Speed"
)

// drawPanel builds the overlay for one frame. A failed load returns its error
// right away; the rest of the panel is skipped for that frame and the caller
// logs the error once.
func (v *Viewer) drawPanel(ctx *overlay.Context) error {
	current := v.handle.Index()
	if ctx.Combo(labelSelect, v.scn.ModelNames(), &current) {
		v.selectModel(current)
	}

	ctx.TextField(labelPath, &v.pathInput)
	if ctx.Button(labelLoad) {
		if err := v.loadModel(v.pathInput); err != nil {
			return err
		}
		v.pathInput = ""
	}

	if v.handle.HasSelection() && ctx.Button(labelRemove) {
		v.removeSelected()
	}

	r := v.cfg.Ranges
	if v.handle.HasSelection() {
		if ctx.Header(labelPosition) {
			ctx.SliderVec3("Pos ", &v.snapshot.Position, r.Position.Min, r.Position.Max)
		}
		if ctx.Header(labelRotation) {
			ctx.SliderVec3("Rot ", &v.snapshot.Rotation, r.Rotation.Min, r.Rotation.Max)
		}
		if ctx.Header(labelScale) {
			ctx.SliderVec3("Scale ", &v.snapshot.Scale, r.Scale.Min, r.Scale.Max)
		}
	}
	if v.scn.Len() > 0 {
		ctx.ColorEdit(labelLightColor, &v.snapshot.LightColor)
	}
	ctx.Slider(labelCameraSpeed, &v.snapshot.CameraSpeed, r.CameraSpeed.Min, r.CameraSpeed.Max)

	if v.status != "" {
		ctx.Text(v.status)
	}
	return nil
}
