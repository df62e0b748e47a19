package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is wrapped in a LoadError when LoadModel is called with a blank path.
var ErrEmptyPath = errors.New("empty path")

// ErrStaleHandle is returned when a handle no longer identifies a model.
var ErrStaleHandle = errors.New("stale selection handle")

// LoadError reports a model that could not be loaded. The scene is left unchanged.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Handle identifies a model by index plus the list version it was issued for.
// The zero Handle means "no selection".
type Handle struct {
	index   int
	version uint64
	ok      bool
}

// HasSelection reports whether the handle was issued for a model. It does not
// check that the model still exists; use Scene.Valid for that.
func (h Handle) HasSelection() bool { return h.ok }

// Index returns the model index, or -1 for the zero handle.
func (h Handle) Index() int {
	if !h.ok {
		return -1
	}
	return h.index
}

// Scene owns the ordered model list, the current selection and the global light.
// The list version is bumped whenever an index may start pointing at a different
// model (removal, clear), so handles issued earlier stop resolving.
type Scene struct {
	loader   Loader
	models   []*Model
	version  uint64
	selected Handle
	light    [4]float32
}

// New returns an empty scene that loads models through loader. Light starts white.
func New(loader Loader) *Scene {
	return &Scene{
		loader: loader,
		light:  [4]float32{1, 1, 1, 1},
	}
}

// Len returns the number of models.
func (s *Scene) Len() int { return len(s.models) }

// Version returns the current list version.
func (s *Scene) Version() uint64 { return s.version }

// ModelNames returns the display names in list order.
func (s *Scene) ModelNames() []string {
	out := make([]string, len(s.models))
	for i, m := range s.models {
		out[i] = m.name
	}
	return out
}

// Models returns a copy of the model list in draw order.
func (s *Scene) Models() []*Model {
	out := make([]*Model, len(s.models))
	copy(out, s.models)
	return out
}

// Valid reports whether h still identifies a model in the current list.
func (s *Scene) Valid(h Handle) bool {
	return h.ok && h.version == s.version && h.index >= 0 && h.index < len(s.models)
}

// HandleAt returns a handle for index i, or the zero handle when i is out of range.
func (s *Scene) HandleAt(i int) Handle {
	if i < 0 || i >= len(s.models) {
		return Handle{}
	}
	return Handle{index: i, version: s.version, ok: true}
}

// SelectModel makes model i the selection. Out-of-range indices are ignored.
func (s *Scene) SelectModel(i int) {
	if h := s.HandleAt(i); h.ok {
		s.selected = h
	}
}

// IsModelSelected reports whether the current selection resolves to a model.
func (s *Scene) IsModelSelected() bool {
	return s.Valid(s.selected)
}

// Selection returns the current selection handle, or the zero handle when the
// stored one went stale.
func (s *Scene) Selection() Handle {
	if !s.Valid(s.selected) {
		return Handle{}
	}
	return s.selected
}

// Selected returns the selected model.
func (s *Scene) Selected() (*Model, bool) {
	return s.model(s.selected)
}

// Resolve dereferences h, rechecking version and bounds every time.
func (s *Scene) Resolve(h Handle) (Transformable, bool) {
	m, ok := s.model(h)
	if !ok {
		return nil, false
	}
	return m, true
}

func (s *Scene) model(h Handle) (*Model, bool) {
	if !s.Valid(h) {
		return nil, false
	}
	return s.models[h.index], true
}

// LoadModel loads path and appends it to the list with an identity transform.
// On failure it returns a *LoadError and leaves list and selection untouched.
// Appending keeps existing indices valid, so the version does not change.
func (s *Scene) LoadModel(path string) (Handle, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Handle{}, &LoadError{Path: path, Err: ErrEmptyPath}
	}
	if s.loader == nil {
		return Handle{}, &LoadError{Path: path, Err: errors.New("no loader configured")}
	}
	asset, err := s.loader.Load(path)
	if err != nil {
		return Handle{}, &LoadError{Path: path, Err: err}
	}
	s.models = append(s.models, &Model{
		name:      displayName(path, asset),
		path:      path,
		transform: IdentityTransform(),
		asset:     asset,
	})
	return s.HandleAt(len(s.models) - 1), nil
}

// Reload loads path again and swaps the asset of every model loaded from it,
// keeping names, transforms and selection. Paths match after filepath.Clean, so
// "a.obj" and "./a.obj" name the same file. It returns how many models changed.
func (s *Scene) Reload(path string) (int, error) {
	var targets []*Model
	for _, m := range s.models {
		if SamePath(m.path, path) {
			targets = append(targets, m)
		}
	}
	if len(targets) == 0 {
		return 0, nil
	}
	fresh := make([]Asset, 0, len(targets))
	for _, m := range targets {
		asset, err := s.loader.Load(m.path)
		if err != nil {
			for _, a := range fresh {
				a.Unload()
			}
			return 0, &LoadError{Path: path, Err: err}
		}
		fresh = append(fresh, asset)
	}
	for i, m := range targets {
		if m.asset != nil {
			m.asset.Unload()
		}
		m.asset = fresh[i]
	}
	return len(targets), nil
}

// RemoveModel unloads and removes the model identified by h and bumps the version.
// If another model was selected, the selection follows it to its new index.
func (s *Scene) RemoveModel(h Handle) error {
	m, ok := s.model(h)
	if !ok {
		return ErrStaleHandle
	}
	if m.asset != nil {
		m.asset.Unload()
	}
	sel := s.Selection()
	s.models = append(s.models[:h.index], s.models[h.index+1:]...)
	s.version++

	switch {
	case !sel.ok || sel.index == h.index:
		s.selected = Handle{}
	case sel.index > h.index:
		s.selected = s.HandleAt(sel.index - 1)
	default:
		s.selected = s.HandleAt(sel.index)
	}
	return nil
}

// LightColor returns the global light color, RGBA in 0..1.
func (s *Scene) LightColor() [4]float32 { return s.light }

// SetLightColor sets the global light color.
func (s *Scene) SetLightColor(c [4]float32) { s.light = c }

// Close unloads every asset and empties the list. Safe to call more than once.
func (s *Scene) Close() {
	for _, m := range s.models {
		if m.asset != nil {
			m.asset.Unload()
			m.asset = nil
		}
	}
	if len(s.models) > 0 {
		s.version++
	}
	s.models = nil
	s.selected = Handle{}
}

// SamePath reports whether a and b name the same file once cleaned.
func SamePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

func displayName(path string, asset Asset) string {
	if n, ok := asset.(Named); ok && strings.TrimSpace(n.Name()) != "" {
		return strings.TrimSpace(n.Name())
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
