package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/camera"
	"model-viewer/internal/scene"
)

// Stage draws the scene's models through the free camera.
type Stage struct {
	scn      *scene.Scene
	cam      *camera.Camera
	lighting *Lighting
	view     rl.Camera3D

	GridVisible bool
}

// NewStage returns a stage with the grid visible.
func NewStage(scn *scene.Scene, cam *camera.Camera, lighting *Lighting) *Stage {
	s := &Stage{
		scn:         scn,
		cam:         cam,
		lighting:    lighting,
		GridVisible: true,
	}
	s.view.Up = rl.NewVector3(0, 1, 0)
	s.view.Projection = rl.CameraPerspective
	return s
}

// Update copies camera placement and scene light into the raylib camera and shader uniforms.
func (s *Stage) Update() {
	p, t := s.cam.Position, s.cam.Target()
	s.view.Position = rl.NewVector3(p[0], p[1], p[2])
	s.view.Target = rl.NewVector3(t[0], t[1], t[2])
	s.view.Fovy = s.cam.Fovy
	if s.lighting != nil {
		s.lighting.ViewPos = p
		s.lighting.Color = s.scn.LightColor()
	}
}

// Draw renders grid, models and a marker on the selected model. Call between
// the frame's clear and the overlay.
func (s *Stage) Draw() {
	rl.BeginMode3D(s.view)
	if s.GridVisible {
		drawEditorGrid()
	}
	if s.lighting != nil {
		s.lighting.Apply()
	}
	for _, m := range s.scn.Models() {
		if a, ok := m.Asset().(*Asset); ok {
			a.Draw(m.Transform())
		}
	}
	if m, ok := s.scn.Selected(); ok {
		p := m.Transform().Position
		drawAxes(rl.NewVector3(p[0], p[1], p[2]), markerLength, false)
	}
	rl.EndMode3D()
}

// Unload releases the lighting shader. Scene assets must already be unloaded.
func (s *Stage) Unload() {
	if s.lighting != nil {
		s.lighting.Unload()
	}
}
