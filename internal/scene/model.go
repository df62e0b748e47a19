package scene

// Transform is a model's placement: position in world units, rotation as XYZ Euler
// angles in degrees, and per-axis scale.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// IdentityTransform places a model at the origin, unrotated, at unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Transformable is the capability the selection bridge needs from any scene object.
type Transformable interface {
	Transform() Transform
	SetTransform(Transform)
}

// Asset is the renderer-owned payload of a model (meshes, materials). The scene only
// stores it and releases it.
type Asset interface {
	Unload()
}

// Named is implemented by assets that carry their own display name
// (e.g. a primitive descriptor with a name field).
type Named interface {
	Name() string
}

// Loader turns a path into an Asset. Implementations return an error for missing
// or unparseable files and must not panic.
type Loader interface {
	Load(path string) (Asset, error)
}

// Model is one entry in the scene's model list.
type Model struct {
	name      string
	path      string
	transform Transform
	asset     Asset
}

// Name returns the display name shown in the model combo.
func (m *Model) Name() string { return m.name }

// Path returns the file the model was loaded from.
func (m *Model) Path() string { return m.path }

// Asset returns the renderer payload.
func (m *Model) Asset() Asset { return m.asset }

// Transform returns a copy of the model's transform.
func (m *Model) Transform() Transform { return m.transform }

// SetTransform replaces the model's transform.
func (m *Model) SetTransform(t Transform) { m.transform = t }
