package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingToolkit struct {
	begins, ends int
	calls        []string
	pressed      map[string]bool
}

func (k *countingToolkit) BeginFrame() { k.begins++ }
func (k *countingToolkit) EndFrame()   { k.ends++ }

func (k *countingToolkit) Combo(label string, _ []string, _ *int) bool {
	k.calls = append(k.calls, "combo:"+label)
	return false
}

func (k *countingToolkit) TextField(label string, _ *string) bool {
	k.calls = append(k.calls, "text:"+label)
	return false
}

func (k *countingToolkit) Button(label string) bool {
	k.calls = append(k.calls, "button:"+label)
	return k.pressed[label]
}

func (k *countingToolkit) Header(label string) bool {
	k.calls = append(k.calls, "header:"+label)
	return true
}

func (k *countingToolkit) Slider(label string, v *float32, _, _ float32) bool {
	k.calls = append(k.calls, "slider:"+label)
	if k.pressed[label] {
		*v = 1
		return true
	}
	return false
}

func (k *countingToolkit) ColorEdit(label string, _ *[4]float32) bool {
	k.calls = append(k.calls, "color:"+label)
	return false
}

func (k *countingToolkit) Text(text string)           { k.calls = append(k.calls, "label:"+text) }
func (k *countingToolkit) WantsKeyboardCapture() bool { return false }
func (k *countingToolkit) WantsMouseCapture() bool    { return false }
func (k *countingToolkit) Shutdown()                  {}

func TestFrameEndsOnError(t *testing.T) {
	tk := &countingToolkit{}
	boom := errors.New("load failed")
	err := Frame(tk, func(ctx *Context) error {
		ctx.Button("Load Model")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tk.begins)
	assert.Equal(t, 1, tk.ends)
}

func TestFrameEndsOnPanic(t *testing.T) {
	tk := &countingToolkit{}
	assert.Panics(t, func() {
		_ = Frame(tk, func(*Context) error { panic("widget bug") })
	})
	assert.Equal(t, 1, tk.ends)
}

func TestLeakedContextIsInert(t *testing.T) {
	tk := &countingToolkit{pressed: map[string]bool{"Go": true}}
	var leaked *Context
	require.NoError(t, Frame(tk, func(ctx *Context) error {
		leaked = ctx
		assert.True(t, ctx.Button("Go"))
		return nil
	}))
	assert.False(t, leaked.Open())
	assert.False(t, leaked.Button("Go"))
	leaked.Text("late")
	assert.Equal(t, []string{"button:Go"}, tk.calls)
}

func TestComboSkipsEmptyList(t *testing.T) {
	tk := &countingToolkit{}
	_ = Frame(tk, func(ctx *Context) error {
		i := 0
		assert.False(t, ctx.Combo("Model", nil, &i))
		return nil
	})
	assert.Empty(t, tk.calls)
}

func TestSliderVec3(t *testing.T) {
	tk := &countingToolkit{pressed: map[string]bool{"PosY": true}}
	var v [3]float32
	_ = Frame(tk, func(ctx *Context) error {
		assert.True(t, ctx.SliderVec3("Pos", &v, -1, 1))
		return nil
	})
	assert.Equal(t, []string{"slider:PosX", "slider:PosY", "slider:PosZ"}, tk.calls)
	assert.Equal(t, [3]float32{0, 1, 0}, v)
}

func TestFrameNilToolkit(t *testing.T) {
	assert.ErrorIs(t, Frame(nil, func(*Context) error { return nil }), ErrFrameClosed)
}
