package primitives

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// Types lists the primitive kinds a descriptor may name.
var Types = []string{"cube", "sphere", "cylinder", "plane"}

// DefaultColor is the albedo used when a descriptor has no (or an invalid) color.
var DefaultColor = [4]uint8{128, 128, 128, 255}

// Def is a primitive model descriptor, e.g. models/crate.yaml:
//
//	type: cube
//	name: crate
//	size: [1, 2, 1]
//	color: "#a0522d"
//
// Size is the mesh extent before the model transform is applied; zero axes mean 1.
type Def struct {
	Type  string     `yaml:"type"`
	Name  string     `yaml:"name,omitempty"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// IsDescriptor reports whether path has a descriptor extension (.yaml or .yml).
func IsDescriptor(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse decodes and validates a descriptor.
func Parse(data []byte) (Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("primitive: %w", err)
	}
	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
	if !known(d.Type) {
		return Def{}, fmt.Errorf("primitive: unknown type %q (use %s)", d.Type, strings.Join(Types, ", "))
	}
	for i, v := range d.Size {
		if v < 0 {
			return Def{}, fmt.Errorf("primitive: size[%d] is negative", i)
		}
		if v == 0 {
			d.Size[i] = 1
		}
	}
	return d, nil
}

// LoadFile reads and parses the descriptor at path.
func LoadFile(path string) (Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Def{}, err
	}
	return Parse(data)
}

// RGBA returns the descriptor color, or DefaultColor when unset or unparseable.
func (d Def) RGBA() [4]uint8 {
	if c, ok := ParseHexColor(d.Color); ok {
		return c
	}
	return DefaultColor
}

func known(t string) bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

// ParseHexColor parses #RGB or #RRGGBB (alpha 255). Returns false on any other input.
func ParseHexColor(s string) ([4]uint8, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return [4]uint8{}, false
	}
	hex := s[1:]
	var out [4]uint8
	out[3] = 255
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			v, ok := hexNibble(hex[i])
			if !ok {
				return [4]uint8{}, false
			}
			out[i] = v * 17
		}
	case 6:
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return [4]uint8{}, false
			}
			out[i] = hi<<4 | lo
		}
	default:
		return [4]uint8{}, false
	}
	return out, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToRGBA8 converts a 0..1 RGBA color to bytes, clamping out-of-range channels.
func ToRGBA8(c [4]float32) [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		v = math32.Max(0, math32.Min(1, v))
		out[i] = uint8(v*255 + 0.5)
	}
	return out
}
