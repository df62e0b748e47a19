package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/primitives"
	"model-viewer/internal/scene"
)

const (
	sphereRings     = 16
	sphereSlices    = 16
	cylinderSlices  = 16
	planeResolution = 1
)

// modelExts are the file formats raylib's LoadModel understands.
var modelExts = map[string]bool{
	".obj":  true,
	".gltf": true,
	".glb":  true,
	".iqm":  true,
	".vox":  true,
	".m3d":  true,
}

// Asset is a GPU-resident model. base is applied before the model transform: it
// centers and sizes generated primitives and is the identity for loaded files.
type Asset struct {
	name   string
	model  rl.Model
	base   rl.Matrix
	loaded bool
}

// Name is the descriptor's display name; empty for model files.
func (a *Asset) Name() string { return a.name }

// Unload frees the meshes and material maps. Shaders are shared and left alone.
func (a *Asset) Unload() {
	if !a.loaded {
		return
	}
	rl.UnloadModel(a.model)
	a.loaded = false
}

// Draw renders the asset with t applied. Must be called inside BeginMode3D.
func (a *Asset) Draw(t scene.Transform) {
	if !a.loaded {
		return
	}
	a.model.Transform = rl.MatrixMultiply(a.base, modelMatrix(t))
	rl.DrawModel(a.model, rl.NewVector3(0, 0, 0), 1, rl.White)
}

// modelMatrix builds scale, then XYZ rotation (degrees), then translation.
func modelMatrix(t scene.Transform) rl.Matrix {
	scale := rl.MatrixScale(t.Scale[0], t.Scale[1], t.Scale[2])
	rot := rl.MatrixRotateXYZ(rl.NewVector3(
		t.Rotation[0]*rl.Deg2rad,
		t.Rotation[1]*rl.Deg2rad,
		t.Rotation[2]*rl.Deg2rad,
	))
	trans := rl.MatrixTranslate(t.Position[0], t.Position[1], t.Position[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

// Loader turns paths into Assets: YAML primitive descriptors become generated
// meshes, anything else goes through raylib's model importers. Every material
// gets the lit shader. Loading needs a live window.
type Loader struct {
	lighting *Lighting
}

// NewLoader returns a loader that shades with lighting. lighting may be nil.
func NewLoader(lighting *Lighting) *Loader {
	return &Loader{lighting: lighting}
}

// Load implements scene.Loader.
func (l *Loader) Load(path string) (scene.Asset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if primitives.IsDescriptor(path) {
		def, err := primitives.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return l.primitive(def), nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !modelExts[ext] {
		return nil, fmt.Errorf("unsupported model format %q", ext)
	}
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		rl.UnloadModel(m)
		return nil, fmt.Errorf("%s: no drawable meshes", filepath.Base(path))
	}
	l.shade(m, nil)
	return &Asset{model: m, base: rl.MatrixIdentity(), loaded: true}, nil
}

func (l *Loader) primitive(def primitives.Def) *Asset {
	var mesh rl.Mesh
	offset := [3]float32{}
	switch def.Type {
	case "sphere":
		// Radius 0.5 so the unit sphere matches the unit cube.
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case "cylinder":
		// raylib cylinders sit on Y=0; shift down half the height to center them.
		mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		offset[1] = -0.5
	case "plane":
		mesh = rl.GenMeshPlane(1, 1, planeResolution, planeResolution)
	default:
		mesh = rl.GenMeshCube(1, 1, 1)
	}
	m := rl.LoadModelFromMesh(mesh)
	c := def.RGBA()
	l.shade(m, &rl.Color{R: c[0], G: c[1], B: c[2], A: c[3]})

	base := rl.MatrixMultiply(
		rl.MatrixTranslate(offset[0], offset[1], offset[2]),
		rl.MatrixScale(def.Size[0], def.Size[1], def.Size[2]),
	)
	return &Asset{name: def.Name, model: m, base: base, loaded: true}
}

// shade puts the lit shader on every material and optionally overrides the albedo tint.
func (l *Loader) shade(m rl.Model, albedo *rl.Color) {
	mats := m.GetMaterials()
	for i := range mats {
		mtl := &mats[i]
		if l.lighting.Valid() {
			mtl.Shader = l.lighting.Shader()
		}
		if albedo == nil {
			continue
		}
		if mp := mtl.GetMap(rl.MapAlbedo); mp != nil {
			mp.Color = *albedo
		}
	}
}
