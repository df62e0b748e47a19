package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAsset struct {
	name     string
	unloaded int
}

func (a *stubAsset) Unload()      { a.unloaded++ }
func (a *stubAsset) Name() string { return a.name }

var errNotFound = errors.New("no such file")

// mapLoader serves assets for known paths and fails for everything else.
type mapLoader struct {
	names  map[string]string
	loads  int
	failOn map[string]bool
	issued []*stubAsset
}

func (l *mapLoader) Load(path string) (Asset, error) {
	l.loads++
	name, ok := l.names[path]
	if !ok || l.failOn[path] {
		return nil, errNotFound
	}
	a := &stubAsset{name: name}
	l.issued = append(l.issued, a)
	return a, nil
}

func newTestScene(t *testing.T) (*Scene, *mapLoader) {
	t.Helper()
	l := &mapLoader{
		names: map[string]string{
			"models/cube.yaml":   "cube",
			"models/sphere.yaml": "sphere",
			"models/teapot.obj":  "",
		},
		failOn: map[string]bool{},
	}
	return New(l), l
}

func TestLoadModelAppends(t *testing.T) {
	s, _ := newTestScene(t)
	h, err := s.LoadModel("models/cube.yaml")
	require.NoError(t, err)
	assert.Equal(t, 0, h.Index())
	h, err = s.LoadModel("models/teapot.obj")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Index())

	assert.Equal(t, []string{"cube", "teapot"}, s.ModelNames())
	assert.Equal(t, IdentityTransform(), s.Models()[1].Transform())
	assert.False(t, s.IsModelSelected())
}

func TestLoadErrorLeavesSceneUnchanged(t *testing.T) {
	s, _ := newTestScene(t)
	_, err := s.LoadModel("models/cube.yaml")
	require.NoError(t, err)
	_, err = s.LoadModel("models/sphere.yaml")
	require.NoError(t, err)
	s.SelectModel(1)
	before := s.Selection()
	version := s.Version()

	_, err = s.LoadModel("/bad/path")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "/bad/path", le.Path)
	assert.ErrorIs(t, err, errNotFound)

	assert.Equal(t, []string{"cube", "sphere"}, s.ModelNames())
	assert.Equal(t, before, s.Selection())
	assert.Equal(t, version, s.Version())
}

func TestLoadEmptyPath(t *testing.T) {
	s, l := newTestScene(t)
	_, err := s.LoadModel("   ")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Zero(t, l.loads)
}

func TestSelectOutOfRangeIsNoop(t *testing.T) {
	s, _ := newTestScene(t)
	_, _ = s.LoadModel("models/cube.yaml")
	s.SelectModel(0)
	s.SelectModel(5)
	s.SelectModel(-1)
	assert.Equal(t, 0, s.Selection().Index())
}

func TestResolveRejectsStaleHandle(t *testing.T) {
	s, _ := newTestScene(t)
	_, _ = s.LoadModel("models/cube.yaml")
	_, _ = s.LoadModel("models/sphere.yaml")
	h := s.HandleAt(1)
	_, ok := s.Resolve(h)
	require.True(t, ok)

	require.NoError(t, s.RemoveModel(s.HandleAt(0)))
	_, ok = s.Resolve(h)
	assert.False(t, ok, "index 1 is out of range and version changed")

	// same index, new version: still stale
	_, _ = s.LoadModel("models/cube.yaml")
	_, ok = s.Resolve(h)
	assert.False(t, ok)
	assert.Equal(t, ErrStaleHandle, s.RemoveModel(h))
}

func TestRemoveKeepsOtherSelection(t *testing.T) {
	s, l := newTestScene(t)
	_, _ = s.LoadModel("models/cube.yaml")
	_, _ = s.LoadModel("models/sphere.yaml")
	_, _ = s.LoadModel("models/teapot.obj")
	s.SelectModel(2)

	require.NoError(t, s.RemoveModel(s.HandleAt(0)))
	assert.Equal(t, 1, l.issued[0].unloaded)
	m, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "teapot", m.Name())
	assert.Equal(t, 1, s.Selection().Index())

	require.NoError(t, s.RemoveModel(s.Selection()))
	assert.False(t, s.IsModelSelected())
	assert.Equal(t, []string{"sphere"}, s.ModelNames())
}

func TestReloadSwapsAssetKeepsTransform(t *testing.T) {
	s, l := newTestScene(t)
	h, _ := s.LoadModel("models/cube.yaml")
	obj, _ := s.Resolve(h)
	moved := Transform{Position: [3]float32{1, 2, 3}, Scale: [3]float32{2, 2, 2}}
	obj.SetTransform(moved)

	n, err := s.Reload("models/cube.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, l.issued[0].unloaded)
	assert.Same(t, l.issued[1], s.Models()[0].Asset())
	assert.Equal(t, moved, s.Models()[0].Transform())
	assert.True(t, s.Valid(h))

	n, err = s.Reload("models/other.yaml")
	require.NoError(t, err)
	assert.Zero(t, n)

	l.failOn["models/cube.yaml"] = true
	_, err = s.Reload("models/cube.yaml")
	var le *LoadError
	assert.ErrorAs(t, err, &le)
	assert.Same(t, l.issued[1], s.Models()[0].Asset())
}

func TestCloseDropsSelection(t *testing.T) {
	s, _ := newTestScene(t)
	_, _ = s.LoadModel("models/cube.yaml")
	s.SelectModel(0)
	s.Close()
	assert.False(t, s.IsModelSelected())
	assert.Equal(t, -1, s.Selection().Index())
}

func TestReloadMatchesCleanedPaths(t *testing.T) {
	s, l := newTestScene(t)
	l.names["./models/cube.yaml"] = "cube"
	_, err := s.LoadModel("models/cube.yaml")
	require.NoError(t, err)
	_, err = s.LoadModel("./models/cube.yaml")
	require.NoError(t, err)

	n, err := s.Reload("models/cube.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, l.loads)
	assert.Same(t, l.issued[2], s.Models()[0].Asset())
	assert.Same(t, l.issued[3], s.Models()[1].Asset())
	assert.True(t, SamePath("./a/../b.obj", "b.obj"))
}

func TestCloseIsIdempotent(t *testing.T) {
	s, l := newTestScene(t)
	_, _ = s.LoadModel("models/cube.yaml")
	s.Close()
	s.Close()
	assert.Equal(t, 1, l.issued[0].unloaded)
	assert.Zero(t, s.Len())
}

func TestLightColor(t *testing.T) {
	s, _ := newTestScene(t)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, s.LightColor())
	s.SetLightColor([4]float32{0.5, 0.25, 0, 1})
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 1}, s.LightColor())
}
